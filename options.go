package eventbus

import "time"

// PanicHandler is called when a handler panics inside a worker. It receives
// the recovered value and the stack trace at the point of panic.
type PanicHandler func(recovered any, stack []byte)

// Option configures a Bus at construction time.
type Option func(*Bus)

// WithLogger sets the diagnostic logger. The default writes color-tagged
// lines to stderr; use NopLogger to silence the bus.
func WithLogger(l Logger) Option {
	return func(b *Bus) {
		if l != nil {
			b.log = l
		}
	}
}

// WithPanicHandler sets a hook invoked when a handler panics. The panic is
// always recovered and counted regardless; the hook is for reporting.
func WithPanicHandler(h PanicHandler) Option {
	return func(b *Bus) {
		b.panicHandler = h
	}
}

// WithSampleInterval sets how often a dynamic pool samples queue depth and
// idleness when deciding to grow or shrink.
func WithSampleInterval(d time.Duration) Option {
	return func(b *Bus) {
		if d > 0 {
			b.sampleInterval = d
		}
	}
}
