package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/repository"
)

// ProjectRepository implements project.Repository for SQLite
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create registers a project and creates its empty log table in one
// transaction. A title collision, or a table-identifier collision from two
// titles sanitizing identically, rolls the whole unit back with
// repository.ErrDuplicate.
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO projects_master (title, details, table_name) VALUES (?, ?, ?)`,
		proj.Title, proj.Details, proj.TableName,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to register project: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get project id: %w", err)
	}

	logTable := fmt.Sprintf(`
		CREATE TABLE %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			start_time TEXT NOT NULL,
			end_time TEXT,
			duration TEXT,
			cumulative_time TEXT
		)
	`, quoteIdent(proj.TableName))

	if _, err := tx.ExecContext(ctx, logTable); err != nil {
		return fmt.Errorf("failed to create log table: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	proj.ID = id
	return nil
}

// GetByID retrieves a project by registry id
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*project.Project, error) {
	return r.get(ctx, `SELECT id, title, details, table_name FROM projects_master WHERE id = ?`, id)
}

// GetByTitle retrieves a project by title
func (r *ProjectRepository) GetByTitle(ctx context.Context, title string) (*project.Project, error) {
	return r.get(ctx, `SELECT id, title, details, table_name FROM projects_master WHERE title = ?`, title)
}

func (r *ProjectRepository) get(ctx context.Context, query string, arg any) (*project.Project, error) {
	var proj project.Project
	var details sql.NullString
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&proj.ID,
		&proj.Title,
		&details,
		&proj.TableName,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	proj.Details = details.String

	return &proj, nil
}

// List returns all projects ordered by title ascending
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, details, table_name FROM projects_master ORDER BY title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []project.Project
	for rows.Next() {
		var proj project.Project
		var details sql.NullString
		if err := rows.Scan(&proj.ID, &proj.Title, &details, &proj.TableName); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		proj.Details = details.String
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

// ListAvailable returns projects whose log table has no open interval
func (r *ProjectRepository) ListAvailable(ctx context.Context) ([]project.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var available []project.Project
	for _, proj := range projects {
		query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE end_time IS NULL`, quoteIdent(proj.TableName))
		var open int
		if err := r.db.QueryRowContext(ctx, query).Scan(&open); err != nil {
			return nil, fmt.Errorf("failed to count open intervals for %q: %w", proj.Title, err)
		}
		if open == 0 {
			available = append(available, proj)
		}
	}

	return available, nil
}
