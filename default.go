package eventbus

import "sync"

var (
	defaultBus  *Bus
	defaultOnce sync.Once
)

// Default returns a process-wide Bus, constructed on first use with default
// options. It is a convenience layered on top of the instance API; the
// caller still owns its lifecycle (Init, Shutdown). Programs that need
// options or several buses should use New.
func Default() *Bus {
	defaultOnce.Do(func() {
		defaultBus = New()
	})
	return defaultBus
}
