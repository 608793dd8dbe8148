package tracker

import "errors"

var (
	// ErrAlreadyRunning indicates the project already has an open interval.
	ErrAlreadyRunning = errors.New("project is already being tracked")
	// ErrAnotherProjectRunning indicates the running-project slot is occupied
	// by a different project.
	ErrAnotherProjectRunning = errors.New("another project is being tracked")
	// ErrNotRunning indicates the project has no open interval to stop.
	ErrNotRunning = errors.New("project is not being tracked")
)
