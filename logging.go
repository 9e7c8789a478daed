package eventbus

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Logger is the diagnostic sink for the bus and its pool. Dropped
// deliveries, handler faults and pool sizing decisions go through it; it
// never carries user payloads.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all diagnostics.
func NopLogger() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

// ConsoleLogger writes leveled, color-tagged lines to a single writer. It is
// the default bus logger, pointed at stderr.
type ConsoleLogger struct {
	mu    sync.Mutex
	out   io.Writer
	debug bool
}

var (
	debugTag = color.New(color.FgCyan).Sprint("[debug]")
	infoTag  = color.New(color.FgGreen).Sprint("[info] ")
	warnTag  = color.New(color.FgYellow).Sprint("[warn] ")
	errorTag = color.New(color.FgRed, color.Bold).Sprint("[error]")
)

// NewConsoleLogger creates a logger writing to w. Debug lines are suppressed
// unless EnableDebug is called.
func NewConsoleLogger(w io.Writer) *ConsoleLogger {
	return &ConsoleLogger{out: w}
}

// EnableDebug turns on debug-level output.
func (l *ConsoleLogger) EnableDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = true
}

func (l *ConsoleLogger) printf(tag, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.out, "%s eventbus: %s\n", tag, fmt.Sprintf(format, args...))
}

// Debugf writes a debug line when debug output is enabled.
func (l *ConsoleLogger) Debugf(format string, args ...any) {
	l.mu.Lock()
	enabled := l.debug
	l.mu.Unlock()
	if enabled {
		l.printf(debugTag, format, args...)
	}
}

// Infof writes an info line.
func (l *ConsoleLogger) Infof(format string, args ...any) {
	l.printf(infoTag, format, args...)
}

// Warnf writes a warning line.
func (l *ConsoleLogger) Warnf(format string, args ...any) {
	l.printf(warnTag, format, args...)
}

// Errorf writes an error line.
func (l *ConsoleLogger) Errorf(format string, args ...any) {
	l.printf(errorTag, format, args...)
}

func defaultLogger() Logger {
	return NewConsoleLogger(os.Stderr)
}
