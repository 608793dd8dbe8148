package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/repository"
	"github.com/ganot/punchcard/internal/timefmt"
)

// Service enforces the single-open-interval invariant per project and owns
// the process-wide running-project slot: at most one project across the
// whole store may be tracked at a time. The slot is explicit state, built at
// startup via Recover and mutated only through Start and Stop.
type Service struct {
	projects  ProjectRepository
	intervals IntervalRepository
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.Mutex
	running *project.Project
}

// NewService creates a new tracker service.
func NewService(projects ProjectRepository, intervals IntervalRepository, logger *slog.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		projects:  projects,
		intervals: intervals,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens a new interval for the project. Fails with ErrAlreadyRunning
// if the project already has an open interval, or ErrAnotherProjectRunning
// if a different project occupies the running-project slot. On failure the
// store is left unchanged.
func (s *Service) Start(ctx context.Context, projectID int64) (*Interval, error) {
	proj, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running != nil {
		if s.running.ID == proj.ID {
			return nil, ErrAlreadyRunning
		}
		return nil, ErrAnotherProjectRunning
	}

	start := s.now().Truncate(time.Second)
	iv, err := s.intervals.Start(ctx, proj.TableName, start)
	if err != nil {
		if errors.Is(err, repository.ErrOpenInterval) {
			return nil, ErrAlreadyRunning
		}
		return nil, fmt.Errorf("starting interval: %w", err)
	}

	s.running = proj
	s.logger.Info("tracking started", "project", proj.Title, "interval", iv.ID, "start", start.Format(timefmt.TimestampLayout))
	return iv, nil
}

// Stop closes the project's open interval, computing its duration and the
// running cumulative total of all closed durations before it. Fails with
// ErrNotRunning when no open interval exists; the store is left unchanged.
func (s *Service) Stop(ctx context.Context, projectID int64) (*Interval, error) {
	proj, err := s.getProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	open, err := s.intervals.Open(ctx, proj.TableName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotRunning
		}
		return nil, fmt.Errorf("finding open interval: %w", err)
	}

	end := s.now().Truncate(time.Second)
	if end.Before(open.StartTime) {
		end = open.StartTime
	}
	durationSeconds := int64(end.Sub(open.StartTime) / time.Second)
	duration := timefmt.FormatClock(durationSeconds)

	prior, err := s.intervals.ClosedDurations(ctx, proj.TableName, open.ID)
	if err != nil {
		return nil, fmt.Errorf("loading prior durations: %w", err)
	}
	cumulative := timefmt.FormatClock(timefmt.Sum(s.logger, prior) + durationSeconds)

	if err := s.intervals.Close(ctx, proj.TableName, open.ID, end, duration, cumulative); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotRunning
		}
		return nil, fmt.Errorf("closing interval: %w", err)
	}

	if s.running != nil && s.running.ID == proj.ID {
		s.running = nil
	}

	s.logger.Info("tracking stopped", "project", proj.Title, "interval", open.ID, "duration", duration)
	return &Interval{
		ID:         open.ID,
		StartTime:  open.StartTime,
		EndTime:    &end,
		Duration:   duration,
		Cumulative: cumulative,
	}, nil
}

// Recover scans all projects for an open interval and restores the
// running-project slot from the first one found, in project listing order.
// Returns nil when no timer was left open. More than one open interval
// across projects means the store was mutated outside single-writer
// discipline; that is logged as an inconsistency and the first project is
// still recovered so startup can proceed.
func (s *Service) Recover(ctx context.Context) (*project.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	var found []project.Project
	for _, proj := range projects {
		if _, err := s.intervals.Open(ctx, proj.TableName); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("scanning %q for open intervals: %w", proj.Title, err)
		}
		found = append(found, proj)
	}

	if len(found) == 0 {
		return nil, nil
	}
	if len(found) > 1 {
		titles := make([]string, len(found))
		for i, proj := range found {
			titles[i] = proj.Title
		}
		s.logger.Warn("multiple open intervals detected, recovering the first", "projects", titles)
	}

	first := found[0]
	s.mu.Lock()
	s.running = &first
	s.mu.Unlock()
	return &first, nil
}

// Running returns the project occupying the running-project slot, or nil.
func (s *Service) Running() *project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running == nil {
		return nil
	}
	proj := *s.running
	return &proj
}

// Status returns the running project and its open interval, or nils when
// the slot is free.
func (s *Service) Status(ctx context.Context) (*project.Project, *Interval, error) {
	proj := s.Running()
	if proj == nil {
		return nil, nil, nil
	}
	open, err := s.intervals.Open(ctx, proj.TableName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Slot is stale; the interval was closed out from under us.
			s.mu.Lock()
			s.running = nil
			s.mu.Unlock()
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("finding open interval: %w", err)
	}
	return proj, open, nil
}

func (s *Service) getProject(ctx context.Context, projectID int64) (*project.Project, error) {
	proj, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}
