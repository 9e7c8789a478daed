package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		ThreadModel: ThreadDynamic,
		TaskModel:   TaskFIFO,
		ThreadMin:   2,
		ThreadMax:   4,
		TaskMax:     1024,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid dynamic fifo", func(c *Config) {}, false},
		{"valid fixed priority", func(c *Config) {
			c.ThreadModel = ThreadFixed
			c.TaskModel = TaskPriority
		}, false},
		{"thread_min zero", func(c *Config) { c.ThreadMin = 0 }, true},
		{"thread_max zero", func(c *Config) { c.ThreadMax = 0 }, true},
		{"min greater than max", func(c *Config) { c.ThreadMin = 10; c.ThreadMax = 5 }, true},
		{"task_max zero", func(c *Config) { c.TaskMax = 0 }, true},
		{"undefined thread model", func(c *Config) { c.ThreadModel = ThreadUndefined }, true},
		{"unknown thread model", func(c *Config) { c.ThreadModel = ThreadModel(9) }, true},
		{"undefined task model", func(c *Config) { c.TaskModel = TaskUndefined }, true},
		{"unknown task model", func(c *Config) { c.TaskModel = TaskModel(9) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrConfiguration)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestThreadModel_Strings(t *testing.T) {
	assert.Equal(t, "fixed", ThreadFixed.String())
	assert.Equal(t, "dynamic", ThreadDynamic.String())
	assert.Equal(t, "undefined", ThreadUndefined.String())
	assert.Equal(t, "fifo", TaskFIFO.String())
	assert.Equal(t, "priority", TaskPriority.String())
	assert.Equal(t, "undefined", TaskUndefined.String())
}

func TestThreadModel_UnmarshalText(t *testing.T) {
	var m ThreadModel
	require.NoError(t, m.UnmarshalText([]byte("DYNAMIC")))
	assert.Equal(t, ThreadDynamic, m)
	require.NoError(t, m.UnmarshalText([]byte("fixed")))
	assert.Equal(t, ThreadFixed, m)
	require.ErrorIs(t, m.UnmarshalText([]byte("elastic")), ErrConfiguration)

	var tm TaskModel
	require.NoError(t, tm.UnmarshalText([]byte("Priority")))
	assert.Equal(t, TaskPriority, tm)
	require.ErrorIs(t, tm.UnmarshalText([]byte("lifo")), ErrConfiguration)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("EVENTBUS_THREAD_MODEL", "dynamic")
	t.Setenv("EVENTBUS_TASK_MODEL", "priority")
	t.Setenv("EVENTBUS_THREAD_MIN", "2")
	t.Setenv("EVENTBUS_THREAD_MAX", "8")
	t.Setenv("EVENTBUS_TASK_MAX", "512")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, ThreadDynamic, cfg.ThreadModel)
	assert.Equal(t, TaskPriority, cfg.TaskModel)
	assert.Equal(t, 2, cfg.ThreadMin)
	assert.Equal(t, 8, cfg.ThreadMax)
	assert.Equal(t, 512, cfg.TaskMax)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	t.Setenv("EVENTBUS_THREAD_MODEL", "sideways")
	t.Setenv("EVENTBUS_TASK_MODEL", "fifo")

	_, err := ConfigFromEnv()
	require.ErrorIs(t, err, ErrConfiguration)
}

func TestConfigFromEnv_ValidatesResult(t *testing.T) {
	t.Setenv("EVENTBUS_THREAD_MODEL", "dynamic")
	t.Setenv("EVENTBUS_TASK_MODEL", "fifo")
	t.Setenv("EVENTBUS_THREAD_MIN", "10")
	t.Setenv("EVENTBUS_THREAD_MAX", "5")

	_, err := ConfigFromEnv()
	require.ErrorIs(t, err, ErrConfiguration)
}
