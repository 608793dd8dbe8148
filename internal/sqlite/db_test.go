package sqlite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// NewTestDB creates a new in-memory SQLite database for testing
func NewTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err, "failed to create test database")

	err = db.RunMigrations()
	require.NoError(t, err, "failed to run migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// TestMigrations verifies that migrations run successfully and are idempotent
func TestMigrations(t *testing.T) {
	db := NewTestDB(t)

	var count int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='projects_master'").Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count, "projects_master not found")

	require.NoError(t, db.RunMigrations(), "migrations should be idempotent")
}

// TestRegistryConstraints verifies title and table_name uniqueness
func TestRegistryConstraints(t *testing.T) {
	db := NewTestDB(t)

	_, err := db.Exec(
		`INSERT INTO projects_master (title, details, table_name) VALUES (?, ?, ?)`,
		"Alpha", "first", "project_Alpha")
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO projects_master (title, details, table_name) VALUES (?, ?, ?)`,
		"Alpha", "again", "project_Alpha2")
	require.Error(t, err, "duplicate title should fail")
	require.True(t, isUniqueViolation(err))

	_, err = db.Exec(
		`INSERT INTO projects_master (title, details, table_name) VALUES (?, ?, ?)`,
		"Alpha Two", "collides", "project_Alpha")
	require.Error(t, err, "duplicate table_name should fail")
	require.True(t, isUniqueViolation(err))
}
