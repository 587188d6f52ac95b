// Package sortlelog centralizes zerolog setup so every subsystem logs
// through a component-tagged logger instead of configuring zerolog itself.
// Logging is a pure side observation here: no call site in internal/engine,
// internal/eval, or internal/pattern branches on whether logging succeeded,
// matching the "no suspension points in the core" rule of spec.md §5.
package sortlelog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(io.Discard)
)

// SetOutput redirects all component loggers to w at the given level. The
// CLI calls this once, from flag values, before running a program; tests
// and library callers that never call it get a discarding logger, so
// internal/engine, internal/eval, and internal/pattern never need a nil
// check.
func SetOutput(w io.Writer, level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// SetVerbose is a convenience for the CLI's --verbose flag: debug-level
// logs to stderr, or silence.
func SetVerbose(verbose bool) {
	if verbose {
		SetOutput(os.Stderr, zerolog.DebugLevel)
		return
	}
	SetOutput(io.Discard, zerolog.Disabled)
}

// Logger is a component-tagged handle onto the shared base logger. It
// resolves the current base on every call rather than at construction
// time, so a package-level `var log = sortlelog.For("engine")` keeps
// working after the CLI reconfigures output with SetVerbose.
type Logger struct {
	component string
}

// For returns a Logger tagged with the given component name.
func For(component string) Logger {
	return Logger{component: component}
}

func (l Logger) with() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", l.component).Logger()
}

// Debug starts a debug-level event. Callers chain fields onto it and
// finish with Msg, exactly as with a raw zerolog.Logger.
func (l Logger) Debug() *zerolog.Event { return l.with().Debug() }

// Info starts an info-level event.
func (l Logger) Info() *zerolog.Event { return l.with().Info() }

// Error starts an error-level event.
func (l Logger) Error() *zerolog.Event { return l.with().Error() }
