// SPDX-License-Identifier: MIT

package cohomology

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with engine-specific helpers.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that outputs human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}

// WithComplex tags the logger with the size of the complex.
func (l *Logger) WithComplex(cells, dim int) *Logger {
	return &Logger{Logger: l.Logger.With("cells", cells, "dimension", dim)}
}

// LogPrecondition logs a rejected Compute call.
func (l *Logger) LogPrecondition(ctx context.Context, err error) {
	l.WarnContext(ctx, "compute rejected", "error", err)
}

// LogPhase logs the end of an engine phase at Debug.
func (l *Logger) LogPhase(ctx context.Context, phase string, args ...any) {
	l.DebugContext(ctx, phase+" done", args...)
}

// LogCompute logs the outcome of a Compute run.
func (l *Logger) LogCompute(ctx context.Context, s Stats, err error) {
	if err != nil {
		l.ErrorContext(ctx, "compute failed",
			"characteristic", s.Characteristic,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "compute completed",
		"characteristic", s.Characteristic,
		"pairs", s.Pairs,
		"essential", s.Essential,
		"discarded", s.Discarded,
		"columns", s.Columns,
		"duration", s.Duration,
	)
}
