package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the project registry if it doesn't exist. Per-project
// log tables are created on demand when projects are registered.
func (db *DB) RunMigrations() error {
	migration := `
-- Project registry
CREATE TABLE IF NOT EXISTS projects_master (
    id INTEGER PRIMARY KEY,
    title TEXT NOT NULL UNIQUE,
    details TEXT,
    table_name TEXT NOT NULL UNIQUE
);
`

	if _, err := db.Exec(migration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
