package mocks

import (
	"context"
	"time"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/domain/tracker"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for project.Repository and the project lookup
// interfaces of the tracker and report packages.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) GetByTitle(ctx context.Context, title string) (*project.Project, error) {
	args := m.Called(ctx, title)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListAvailable(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// IntervalRepository is a mock for tracker.IntervalRepository and
// report.IntervalRepository.
type IntervalRepository struct {
	mock.Mock
}

func (m *IntervalRepository) Start(ctx context.Context, tableName string, start time.Time) (*tracker.Interval, error) {
	args := m.Called(ctx, tableName, start)
	if iv, ok := args.Get(0).(*tracker.Interval); ok {
		return iv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IntervalRepository) Open(ctx context.Context, tableName string) (*tracker.Interval, error) {
	args := m.Called(ctx, tableName)
	if iv, ok := args.Get(0).(*tracker.Interval); ok {
		return iv, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IntervalRepository) Close(ctx context.Context, tableName string, id int64, end time.Time, duration, cumulative string) error {
	args := m.Called(ctx, tableName, id, end, duration, cumulative)
	return args.Error(0)
}

func (m *IntervalRepository) ClosedDurations(ctx context.Context, tableName string, beforeID int64) ([]string, error) {
	args := m.Called(ctx, tableName, beforeID)
	if list, ok := args.Get(0).([]string); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IntervalRepository) Durations(ctx context.Context, tableName string) ([]string, error) {
	args := m.Called(ctx, tableName)
	if list, ok := args.Get(0).([]string); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IntervalRepository) List(ctx context.Context, tableName string) ([]tracker.Interval, error) {
	args := m.Called(ctx, tableName)
	if list, ok := args.Get(0).([]tracker.Interval); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
