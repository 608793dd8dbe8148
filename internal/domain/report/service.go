package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/domain/tracker"
	"github.com/ganot/punchcard/internal/repository"
	"github.com/ganot/punchcard/internal/timefmt"
)

// Service computes per-project and global totals and assembles the records
// view for presentation and export.
type Service struct {
	projects  ProjectRepository
	intervals IntervalRepository
	logger    *slog.Logger
}

// NewService creates a new report service.
func NewService(projects ProjectRepository, intervals IntervalRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{projects: projects, intervals: intervals, logger: logger}
}

// TotalSeconds sums closed-interval durations for one project, or across all
// projects when projectID is nil. Malformed or absent durations contribute
// zero.
func (s *Service) TotalSeconds(ctx context.Context, projectID *int64) (int64, error) {
	if projectID != nil {
		proj, err := s.getProject(ctx, *projectID)
		if err != nil {
			return 0, err
		}
		durations, err := s.intervals.Durations(ctx, proj.TableName)
		if err != nil {
			return 0, fmt.Errorf("loading durations: %w", err)
		}
		return timefmt.Sum(s.logger, durations), nil
	}

	projects, err := s.projects.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing projects: %w", err)
	}
	var total int64
	for _, proj := range projects {
		durations, err := s.intervals.Durations(ctx, proj.TableName)
		if err != nil {
			return 0, fmt.Errorf("loading durations for %q: %w", proj.Title, err)
		}
		total += timefmt.Sum(s.logger, durations)
	}
	return total, nil
}

// Records assembles the records view, filtered to one project when projectID
// is given. Projects appear in listing order, each project's intervals in
// insertion order; a project with no intervals still contributes one
// placeholder row so it stays visible in the report.
func (s *Service) Records(ctx context.Context, projectID *int64) ([]Row, error) {
	var projects []project.Project
	if projectID != nil {
		proj, err := s.getProject(ctx, *projectID)
		if err != nil {
			return nil, err
		}
		projects = []project.Project{*proj}
	} else {
		list, err := s.projects.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing projects: %w", err)
		}
		projects = list
	}

	var rows []Row
	for _, proj := range projects {
		projectRows, err := s.projectRows(ctx, proj)
		if err != nil {
			return nil, err
		}
		rows = append(rows, projectRows...)
	}
	return rows, nil
}

// Table renders rows into the header + data shape handed to export sinks.
func (s *Service) Table(rows []Row) Table {
	data := make([][]string, 0, len(rows))
	for _, row := range rows {
		data = append(data, []string{
			strconv.FormatInt(row.ProjectID, 10),
			row.Title,
			row.Details,
			row.StartTime,
			row.EndTime,
			row.Duration,
			row.Cumulative,
		})
	}
	return Table{Header: Header(), Rows: data}
}

func (s *Service) projectRows(ctx context.Context, proj project.Project) ([]Row, error) {
	intervals, err := s.intervals.List(ctx, proj.TableName)
	if err != nil {
		return nil, fmt.Errorf("loading intervals for %q: %w", proj.Title, err)
	}

	if len(intervals) == 0 {
		return []Row{{
			ProjectID:  proj.ID,
			Title:      proj.Title,
			Details:    proj.Details,
			StartTime:  NotAvailable,
			EndTime:    NotAvailable,
			Duration:   NotAvailable,
			Cumulative: NotAvailable,
		}}, nil
	}

	rows := make([]Row, 0, len(intervals))
	for _, iv := range intervals {
		rows = append(rows, intervalRow(proj, iv))
	}
	return rows, nil
}

func intervalRow(proj project.Project, iv tracker.Interval) Row {
	row := Row{
		ProjectID:  proj.ID,
		Title:      proj.Title,
		Details:    proj.Details,
		StartTime:  iv.StartTime.Format(timefmt.TimestampLayout),
		EndTime:    InProgress,
		Duration:   NotAvailable,
		Cumulative: NotAvailable,
	}
	if iv.EndTime != nil {
		row.EndTime = iv.EndTime.Format(timefmt.TimestampLayout)
	}
	if iv.Duration != "" {
		row.Duration = iv.Duration
	}
	if iv.Cumulative != "" {
		row.Cumulative = iv.Cumulative
	}
	return row
}

func (s *Service) getProject(ctx context.Context, id int64) (*project.Project, error) {
	proj, err := s.projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}
