package project

import "context"

// Repository provides persistence for the project registry.
type Repository interface {
	Create(ctx context.Context, proj *Project) error
	GetByID(ctx context.Context, id int64) (*Project, error)
	GetByTitle(ctx context.Context, title string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	ListAvailable(ctx context.Context) ([]Project, error)
}
