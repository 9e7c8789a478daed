package eventbus

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v6"
)

// ThreadModel selects how the worker pool manages its size.
type ThreadModel int

const (
	// ThreadUndefined is the zero value and is rejected by Validate; a
	// config must choose a model explicitly.
	ThreadUndefined ThreadModel = iota

	// ThreadFixed pins the worker count to ThreadMin for the lifetime of
	// the bus.
	ThreadFixed

	// ThreadDynamic lets the pool grow and shrink within
	// [ThreadMin, ThreadMax] based on load.
	ThreadDynamic
)

// String returns a human-readable model name.
func (m ThreadModel) String() string {
	switch m {
	case ThreadFixed:
		return "fixed"
	case ThreadDynamic:
		return "dynamic"
	default:
		return "undefined"
	}
}

// UnmarshalText parses "fixed" or "dynamic", case-insensitively. It lets
// ThreadModel fields load from the environment.
func (m *ThreadModel) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "fixed":
		*m = ThreadFixed
	case "dynamic":
		*m = ThreadDynamic
	default:
		return fmt.Errorf("%w: unknown thread model %q", ErrConfiguration, text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m ThreadModel) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// TaskModel selects the queue discipline.
type TaskModel int

const (
	// TaskUndefined is the zero value and is rejected by Validate.
	TaskUndefined TaskModel = iota

	// TaskFIFO hands tasks out in insertion order.
	TaskFIFO

	// TaskPriority hands tasks out by the three-level priority, insertion
	// order within a level.
	TaskPriority
)

// String returns a human-readable model name.
func (m TaskModel) String() string {
	switch m {
	case TaskFIFO:
		return "fifo"
	case TaskPriority:
		return "priority"
	default:
		return "undefined"
	}
}

// UnmarshalText parses "fifo" or "priority", case-insensitively.
func (m *TaskModel) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "fifo":
		*m = TaskFIFO
	case "priority":
		*m = TaskPriority
	default:
		return fmt.Errorf("%w: unknown task model %q", ErrConfiguration, text)
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m TaskModel) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Config describes a bus: which queue discipline to use, whether the pool is
// elastic, and the pool and queue bounds.
type Config struct {
	// ThreadModel chooses a fixed or dynamic worker pool.
	ThreadModel ThreadModel `env:"EVENTBUS_THREAD_MODEL"`

	// TaskModel chooses the FIFO or priority queue.
	TaskModel TaskModel `env:"EVENTBUS_TASK_MODEL"`

	// ThreadMin is the minimum worker count; in fixed mode it is also the
	// maximum.
	ThreadMin int `env:"EVENTBUS_THREAD_MIN" envDefault:"1"`

	// ThreadMax bounds a dynamic pool. In fixed mode it does not size the
	// pool but is still validated (>= 1 and >= ThreadMin).
	ThreadMax int `env:"EVENTBUS_THREAD_MAX" envDefault:"1"`

	// TaskMax is the queue capacity.
	TaskMax int `env:"EVENTBUS_TASK_MAX" envDefault:"1024"`
}

// Validate checks the configuration domain. All failures wrap
// ErrConfiguration.
func (c Config) Validate() error {
	if c.ThreadMin < 1 {
		return fmt.Errorf("%w: thread_min must be >= 1, got %d", ErrConfiguration, c.ThreadMin)
	}
	if c.ThreadMax < 1 {
		return fmt.Errorf("%w: thread_max must be >= 1, got %d", ErrConfiguration, c.ThreadMax)
	}
	if c.ThreadMin > c.ThreadMax {
		return fmt.Errorf("%w: thread_min (%d) cannot be greater than thread_max (%d)",
			ErrConfiguration, c.ThreadMin, c.ThreadMax)
	}
	if c.TaskMax < 1 {
		return fmt.Errorf("%w: task_max must be >= 1, got %d", ErrConfiguration, c.TaskMax)
	}
	switch c.ThreadModel {
	case ThreadFixed, ThreadDynamic:
	default:
		return fmt.Errorf("%w: unknown thread model %d", ErrConfiguration, c.ThreadModel)
	}
	switch c.TaskModel {
	case TaskFIFO, TaskPriority:
	default:
		return fmt.Errorf("%w: unknown task model %d", ErrConfiguration, c.TaskModel)
	}
	return nil
}

// ConfigFromEnv builds a Config from EVENTBUS_* environment variables and
// validates it.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
