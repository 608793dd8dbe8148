package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ganot/punchcard/internal/repository"
)

// Service handles project registry operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	Title   string
	Details string
}

// Create registers a new project and its empty log table as one atomic unit.
// The title must be unique; so must the table identifier derived from it.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrInvalidInput
	}

	proj := &Project{
		Title:     title,
		Details:   strings.TrimSpace(req.Details),
		TableName: TableName(title),
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateTitle
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "id", proj.ID, "title", proj.Title, "table", proj.TableName)
	return proj, nil
}

// GetByTitle fetches a project by its title.
func (s *Service) GetByTitle(ctx context.Context, title string) (*Project, error) {
	proj, err := s.repo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// GetByID fetches a project by its registry id.
func (s *Service) GetByID(ctx context.Context, id int64) (*Project, error) {
	proj, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns all projects ordered by title.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx)
}

// ListAvailable returns projects with no open interval, i.e. projects that
// are not currently being tracked.
func (s *Service) ListAvailable(ctx context.Context) ([]Project, error) {
	return s.repo.ListAvailable(ctx)
}
