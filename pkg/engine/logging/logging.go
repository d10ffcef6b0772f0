// Package logging sets up the program logger and carries it through
// context.Context so every phase of a run logs through the same instance.
package logging

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w at the given level.
// Timestamps are formatted as "HH:MM:SS.ms".
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// Level returns DebugLevel when verbose is set and InfoLevel otherwise
func Level(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	return log.InfoLevel
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger returns a context carrying l
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger stored in ctx, or log.Default()
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// Phase times one step of a run
type Phase struct {
	logger *log.Logger
	name   string
	start  time.Time
}

// StartPhase logs the start of a phase at debug level
func StartPhase(l *log.Logger, name string) *Phase {
	l.Debug("phase started", "phase", name)
	return &Phase{logger: l, name: name, start: time.Now()}
}

// Done logs msg with the phase name, elapsed time and extra key/value pairs
func (p *Phase) Done(msg string, keyvals ...any) {
	keyvals = append([]any{"phase", p.name, "elapsed", time.Since(p.start).Round(time.Millisecond)}, keyvals...)
	p.logger.Info(msg, keyvals...)
}
