package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a unique constraint (title or derived
	// table identifier) is violated
	ErrDuplicate = errors.New("duplicate entry")

	// ErrOpenInterval is returned when an interval insert finds an open
	// interval already present in the log
	ErrOpenInterval = errors.New("open interval exists")
)
