package pool

import "errors"

// Sentinel errors for the pool package.
var (
	// ErrAlreadyRunning is returned when Start is called on a running pool.
	ErrAlreadyRunning = errors.New("worker pool is already running")

	// ErrNotRunning is returned when Stop is called on a pool that was
	// never started or has already stopped.
	ErrNotRunning = errors.New("worker pool is not running")
)
