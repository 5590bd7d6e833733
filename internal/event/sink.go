// Package event defines the structured-event sink the pipeline emits
// progress and diagnostics through. The sink is an injected
// collaborator passed at construction time; there is deliberately no
// process-global registration.
package event

import (
	"log/slog"
)

// Sink receives structured events from the pipeline. Implementations
// must be safe for concurrent use; the pipeline may be driven from
// multiple analysis goroutines at once.
type Sink interface {
	Emit(name string, attrs ...any)
}

// Nop discards every event. It is the default when no sink is
// injected.
type Nop struct{}

func (Nop) Emit(string, ...any) {}

// Slog forwards events to a slog.Logger at debug level.
type Slog struct {
	Logger *slog.Logger
}

// NewSlog wraps logger in a Sink; a nil logger falls back to
// slog.Default.
func NewSlog(logger *slog.Logger) Slog {
	if logger == nil {
		logger = slog.Default()
	}
	return Slog{Logger: logger}
}

func (s Slog) Emit(name string, attrs ...any) {
	s.Logger.Debug(name, attrs...)
}
