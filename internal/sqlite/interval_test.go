package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/punchcard/internal/domain/project"
	"github.com/ganot/punchcard/internal/repository"
	"github.com/stretchr/testify/require"
)

func setupLog(t *testing.T, db *DB, title string) string {
	t.Helper()
	proj := newProject(title, "")
	require.NoError(t, NewProjectRepository(db).Create(context.Background(), proj))
	return proj.TableName
}

func TestIntervalRepository_StartOpen(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewIntervalRepository(db)
	table := setupLog(t, db, "Alpha")

	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	iv, err := repo.Start(ctx, table, start)
	require.NoError(t, err)
	require.Equal(t, int64(1), iv.ID)
	require.Equal(t, start, iv.StartTime)
	require.True(t, iv.Open())

	open, err := repo.Open(ctx, table)
	require.NoError(t, err)
	require.Equal(t, iv.ID, open.ID)
	require.Equal(t, start, open.StartTime)
}

func TestIntervalRepository_StartRejectsSecondOpen(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewIntervalRepository(db)
	table := setupLog(t, db, "Alpha")

	_, err := repo.Start(ctx, table, time.Now())
	require.NoError(t, err)

	_, err = repo.Start(ctx, table, time.Now())
	require.ErrorIs(t, err, repository.ErrOpenInterval)

	// The failed start inserted nothing.
	intervals, err := repo.List(ctx, table)
	require.NoError(t, err)
	require.Len(t, intervals, 1)
}

func TestIntervalRepository_Close(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewIntervalRepository(db)
	table := setupLog(t, db, "Alpha")

	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	iv, err := repo.Start(ctx, table, start)
	require.NoError(t, err)

	end := start.Add(125 * time.Second)
	require.NoError(t, repo.Close(ctx, table, iv.ID, end, "00:02:05", "00:02:05"))

	intervals, err := repo.List(ctx, table)
	require.NoError(t, err)
	require.Len(t, intervals, 1)
	closed := intervals[0]
	require.NotNil(t, closed.EndTime)
	require.Equal(t, end, *closed.EndTime)
	require.Equal(t, "00:02:05", closed.Duration)
	require.Equal(t, "00:02:05", closed.Cumulative)

	// Closing again is a no-op failure; the row keeps its first values.
	err = repo.Close(ctx, table, iv.ID, end.Add(time.Hour), "01:02:05", "01:02:05")
	require.ErrorIs(t, err, repository.ErrNotFound)

	intervals, err = repo.List(ctx, table)
	require.NoError(t, err)
	require.Equal(t, "00:02:05", intervals[0].Duration)
}

func TestIntervalRepository_OpenPicksHighestID(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewIntervalRepository(db)
	table := setupLog(t, db, "Alpha")

	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	first, err := repo.Start(ctx, table, start)
	require.NoError(t, err)
	require.NoError(t, repo.Close(ctx, table, first.ID, start.Add(time.Minute), "00:01:00", "00:01:00"))

	second, err := repo.Start(ctx, table, start.Add(2*time.Minute))
	require.NoError(t, err)

	open, err := repo.Open(ctx, table)
	require.NoError(t, err)
	require.Equal(t, second.ID, open.ID)
}

func TestIntervalRepository_OpenMissing(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewIntervalRepository(db)
	table := setupLog(t, db, "Alpha")

	_, err := repo.Open(ctx, table)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestIntervalRepository_Durations(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewIntervalRepository(db)
	table := setupLog(t, db, "Alpha")

	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	for i, dur := range []string{"00:01:00", "00:02:00", "00:03:00"} {
		iv, err := repo.Start(ctx, table, start.Add(time.Duration(i)*time.Hour))
		require.NoError(t, err)
		end := iv.StartTime.Add(time.Minute)
		require.NoError(t, repo.Close(ctx, table, iv.ID, end, dur, dur))
	}

	// One still-open interval contributes no duration.
	_, err := repo.Start(ctx, table, start.Add(4*time.Hour))
	require.NoError(t, err)

	all, err := repo.Durations(ctx, table)
	require.NoError(t, err)
	require.Equal(t, []string{"00:01:00", "00:02:00", "00:03:00"}, all)

	prior, err := repo.ClosedDurations(ctx, table, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"00:01:00", "00:02:00"}, prior)
}

func TestIntervalRepository_TablesAreIsolated(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewIntervalRepository(db)

	alpha := setupLog(t, db, "Alpha")
	bravo := setupLog(t, db, "Bravo")
	require.NotEqual(t, alpha, bravo)
	require.Equal(t, "project_Alpha", project.TableName("Alpha"))

	_, err := repo.Start(ctx, alpha, time.Now())
	require.NoError(t, err)

	// Bravo's log is unaffected by Alpha's open interval.
	_, err = repo.Open(ctx, bravo)
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Start(ctx, bravo, time.Now())
	require.NoError(t, err)
}
