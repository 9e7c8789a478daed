package queue

import "errors"

// Sentinel errors for the queue package.
var (
	// ErrQueueFull is returned by Push when the queue already holds
	// capacity tasks.
	ErrQueueFull = errors.New("task queue is full")

	// ErrQueueClosed is returned by Push after Close.
	ErrQueueClosed = errors.New("task queue is closed")

	// ErrInvalidPriority is returned by a priority queue when the pushed
	// priority is not one of the three defined levels.
	ErrInvalidPriority = errors.New("invalid task priority")
)
