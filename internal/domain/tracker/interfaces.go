package tracker

import (
	"context"
	"time"

	"github.com/ganot/punchcard/internal/domain/project"
)

// ProjectRepository provides project lookup for tracking and recovery.
type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
}

// IntervalRepository provides persistence for a project's interval log.
// Every method addresses one project's log table by its derived identifier.
type IntervalRepository interface {
	// Start inserts a new open interval, failing with
	// repository.ErrOpenInterval if the table already has one. The check and
	// the insert happen in a single transaction.
	Start(ctx context.Context, tableName string, start time.Time) (*Interval, error)
	// Open returns the highest-id open interval, or repository.ErrNotFound.
	Open(ctx context.Context, tableName string) (*Interval, error)
	// Close fills end_time, duration and cumulative_time on an open interval.
	// Fails with repository.ErrNotFound if the row is missing or already closed.
	Close(ctx context.Context, tableName string, id int64, end time.Time, duration, cumulative string) error
	// ClosedDurations returns the duration strings of closed intervals with
	// ids smaller than beforeID, in id order.
	ClosedDurations(ctx context.Context, tableName string, beforeID int64) ([]string, error)
}
