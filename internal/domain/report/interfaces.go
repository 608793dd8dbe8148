package report

import (
	"context"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/domain/tracker"
)

// ProjectRepository provides project listing and lookup for aggregation.
type ProjectRepository interface {
	GetByID(ctx context.Context, id int64) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
}

// IntervalRepository provides read access to a project's interval log.
type IntervalRepository interface {
	// List returns all intervals in insertion (id) order.
	List(ctx context.Context, tableName string) ([]tracker.Interval, error)
	// Durations returns the duration strings of all closed intervals.
	Durations(ctx context.Context, tableName string) ([]string, error)
}
