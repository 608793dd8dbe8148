package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ganot/punchcard/internal/domain/tracker"
	"github.com/ganot/punchcard/internal/repository"
	"github.com/ganot/punchcard/internal/timefmt"
)

// IntervalRepository implements tracker.IntervalRepository and
// report.IntervalRepository for SQLite.
// Timestamps and durations are stored as text in the fixed wall-clock and
// clock formats.
type IntervalRepository struct {
	db *DB
}

// NewIntervalRepository creates a new IntervalRepository
func NewIntervalRepository(db *DB) *IntervalRepository {
	return &IntervalRepository{db: db}
}

// Start inserts a new open interval. The open-interval check and the insert
// run in one transaction so two writers cannot both open an interval in the
// same log.
func (r *IntervalRepository) Start(ctx context.Context, tableName string, start time.Time) (*tracker.Interval, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE end_time IS NULL`, quoteIdent(tableName))
	var open int
	if err := tx.QueryRowContext(ctx, countQuery).Scan(&open); err != nil {
		return nil, fmt.Errorf("failed to check open intervals: %w", err)
	}
	if open > 0 {
		return nil, repository.ErrOpenInterval
	}

	startText := start.Format(timefmt.TimestampLayout)
	insertQuery := fmt.Sprintf(`INSERT INTO %s (start_time) VALUES (?)`, quoteIdent(tableName))
	result, err := tx.ExecContext(ctx, insertQuery, startText)
	if err != nil {
		return nil, fmt.Errorf("failed to insert interval: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get interval id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	startTime, err := parseTimestamp(startText)
	if err != nil {
		return nil, err
	}
	return &tracker.Interval{ID: id, StartTime: startTime}, nil
}

// Open returns the highest-id interval with no end time
func (r *IntervalRepository) Open(ctx context.Context, tableName string) (*tracker.Interval, error) {
	query := fmt.Sprintf(
		`SELECT id, start_time FROM %s WHERE end_time IS NULL ORDER BY id DESC LIMIT 1`,
		quoteIdent(tableName))

	var id int64
	var startText string
	err := r.db.QueryRowContext(ctx, query).Scan(&id, &startText)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get open interval: %w", err)
	}

	startTime, err := parseTimestamp(startText)
	if err != nil {
		return nil, err
	}
	return &tracker.Interval{ID: id, StartTime: startTime}, nil
}

// Close fills end_time, duration and cumulative_time on an open interval.
// The end_time IS NULL guard makes the update a compare-and-swap: a row that
// was closed concurrently reports repository.ErrNotFound and stays unchanged.
func (r *IntervalRepository) Close(ctx context.Context, tableName string, id int64, end time.Time, duration, cumulative string) error {
	query := fmt.Sprintf(
		`UPDATE %s SET end_time = ?, duration = ?, cumulative_time = ? WHERE id = ? AND end_time IS NULL`,
		quoteIdent(tableName))

	result, err := r.db.ExecContext(ctx, query, end.Format(timefmt.TimestampLayout), duration, cumulative, id)
	if err != nil {
		return fmt.Errorf("failed to close interval: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// ClosedDurations returns durations of closed intervals with ids below
// beforeID, in id order
func (r *IntervalRepository) ClosedDurations(ctx context.Context, tableName string, beforeID int64) ([]string, error) {
	query := fmt.Sprintf(
		`SELECT duration FROM %s WHERE id < ? AND duration IS NOT NULL ORDER BY id ASC`,
		quoteIdent(tableName))
	return r.durations(ctx, query, beforeID)
}

// Durations returns all closed-interval durations in id order
func (r *IntervalRepository) Durations(ctx context.Context, tableName string) ([]string, error) {
	query := fmt.Sprintf(
		`SELECT duration FROM %s WHERE duration IS NOT NULL ORDER BY id ASC`,
		quoteIdent(tableName))
	return r.durations(ctx, query)
}

func (r *IntervalRepository) durations(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query durations: %w", err)
	}
	defer rows.Close()

	var durations []string
	for rows.Next() {
		var duration string
		if err := rows.Scan(&duration); err != nil {
			return nil, fmt.Errorf("failed to scan duration: %w", err)
		}
		durations = append(durations, duration)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating durations: %w", err)
	}

	return durations, nil
}

// List returns all intervals in insertion (id) order
func (r *IntervalRepository) List(ctx context.Context, tableName string) ([]tracker.Interval, error) {
	query := fmt.Sprintf(
		`SELECT id, start_time, end_time, duration, cumulative_time FROM %s ORDER BY id ASC`,
		quoteIdent(tableName))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list intervals: %w", err)
	}
	defer rows.Close()

	var intervals []tracker.Interval
	for rows.Next() {
		var iv tracker.Interval
		var startText string
		var endText, duration, cumulative sql.NullString
		if err := rows.Scan(&iv.ID, &startText, &endText, &duration, &cumulative); err != nil {
			return nil, fmt.Errorf("failed to scan interval: %w", err)
		}

		iv.StartTime, err = parseTimestamp(startText)
		if err != nil {
			return nil, err
		}
		if endText.Valid {
			endTime, err := parseTimestamp(endText.String)
			if err != nil {
				return nil, err
			}
			iv.EndTime = &endTime
		}
		iv.Duration = duration.String
		iv.Cumulative = cumulative.String

		intervals = append(intervals, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating intervals: %w", err)
	}

	return intervals, nil
}

func parseTimestamp(text string) (time.Time, error) {
	ts, err := time.ParseInLocation(timefmt.TimestampLayout, text, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse timestamp %q: %w", text, err)
	}
	return ts, nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
