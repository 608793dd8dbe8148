package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/repository"
	"github.com/stretchr/testify/require"
)

func newProject(title, details string) *project.Project {
	return &project.Project{
		Title:     title,
		Details:   details,
		TableName: project.TableName(title),
	}
}

func TestProjectRepository_CreateGet(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	proj := newProject("Alpha", "first project")
	require.NoError(t, repo.Create(ctx, proj))
	require.NotZero(t, proj.ID)

	byTitle, err := repo.GetByTitle(ctx, "Alpha")
	require.NoError(t, err)
	require.Equal(t, proj.ID, byTitle.ID)
	require.Equal(t, "first project", byTitle.Details)
	require.Equal(t, "project_Alpha", byTitle.TableName)

	byID, err := repo.GetByID(ctx, proj.ID)
	require.NoError(t, err)
	require.Equal(t, "Alpha", byID.Title)

	// The log table exists and starts empty.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM "project_Alpha"`).Scan(&count))
	require.Equal(t, 0, count)
}

func TestProjectRepository_GetMissing(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	_, err := repo.GetByTitle(ctx, "nope")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(ctx, 42)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_DuplicateTitle(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	require.NoError(t, repo.Create(ctx, newProject("Alpha", "")))

	err := repo.Create(ctx, newProject("Alpha", "again"))
	require.ErrorIs(t, err, repository.ErrDuplicate)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "failed create must not change the registry")
}

// Two distinct titles that sanitize to the same table identifier are rejected
// rather than silently merged into one log table.
func TestProjectRepository_TableNameCollision(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	first := newProject("Alpha!", "")
	second := newProject("Alpha?", "")
	require.Equal(t, first.TableName, second.TableName)

	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, second)
	require.ErrorIs(t, err, repository.ErrDuplicate)

	// The failed create left no registry row behind.
	_, err = repo.GetByTitle(ctx, "Alpha?")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepository_ListOrder(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)

	for _, title := range []string{"Charlie", "Alpha", "Bravo"} {
		require.NoError(t, repo.Create(ctx, newProject(title, "")))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "Alpha", list[0].Title)
	require.Equal(t, "Bravo", list[1].Title)
	require.Equal(t, "Charlie", list[2].Title)
}

func TestProjectRepository_ListAvailable(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewProjectRepository(db)
	intervals := NewIntervalRepository(db)

	tracked := newProject("Tracked", "")
	idle := newProject("Idle", "")
	require.NoError(t, repo.Create(ctx, tracked))
	require.NoError(t, repo.Create(ctx, idle))

	_, err := intervals.Start(ctx, tracked.TableName, time.Now())
	require.NoError(t, err)

	available, err := repo.ListAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, available, 1)
	require.Equal(t, "Idle", available[0].Title)
}
