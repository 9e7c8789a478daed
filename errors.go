package eventbus

import "errors"

// Sentinel errors for the event bus. Queue-level failures (ErrQueueFull,
// ErrQueueClosed) surface from the queue package and match with errors.Is.
var (
	// ErrNotInitialized is returned by any operation invoked before a
	// successful Init.
	ErrNotInitialized = errors.New("event bus has not been initialized")

	// ErrAlreadyInitialized is returned by Init on a bus that was already
	// initialized.
	ErrAlreadyInitialized = errors.New("event bus is already initialized")

	// ErrConfiguration is returned by Init for invalid or contradictory
	// configuration values. Returned errors wrap it with detail.
	ErrConfiguration = errors.New("invalid event bus configuration")

	// ErrNotRegistered is returned when publishing or subscribing against
	// an event name absent from the event table.
	ErrNotRegistered = errors.New("event not registered")

	// ErrTaskModelMismatch is returned when a publish variant does not
	// match the configured task model: priority publishing on a FIFO bus,
	// or plain publishing on a priority bus.
	ErrTaskModelMismatch = errors.New("publish variant does not match task model")

	// ErrInvalidName is returned when an event name is empty.
	ErrInvalidName = errors.New("event name cannot be empty")

	// ErrInvalidHandler is returned by Subscribe when the handler is not a
	// usable function.
	ErrInvalidHandler = errors.New("handler must be a non-variadic function returning nothing or error")
)

// errSignatureMismatch marks a delivery whose payload types do not match the
// subscriber's signature. It never escapes the worker: the task is dropped
// with a diagnostic.
var errSignatureMismatch = errors.New("payload does not match handler signature")
