package vecalign

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with vecalign-specific fields.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return newStreamLogger(os.Stderr, level, true)
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return newStreamLogger(os.Stderr, level, false)
}

func newStreamLogger(w io.Writer, level slog.Level, json bool) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return NewLogger(slog.NewJSONHandler(w, opts))
	}
	return NewLogger(slog.NewTextHandler(w, opts))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithTarget adds the target type name to the logger. Checker logs every
// check through a logger scoped this way.
func (l *Logger) WithTarget(target string) *Logger {
	return &Logger{
		Logger: l.Logger.With("target", target),
	}
}

// LogViolation logs a failed alignment or length check. suppressed is the
// number of earlier violations dropped by rate limiting. The target type is
// expected on the logger, see WithTarget.
func (l *Logger) LogViolation(ctx context.Context, err error, suppressed int64) {
	attrs := []any{"error", err}

	var ae *AlignmentError
	if errors.As(err, &ae) {
		attrs = append(attrs,
			"source", ae.Source,
			"address", ae.Address,
			"required", ae.Required,
			"misalignment", ae.Misalignment(),
			"nil", errors.Is(err, ErrNilPointer),
		)
	}

	var le *LengthError
	if errors.As(err, &le) {
		attrs = append(attrs,
			"source", le.Source,
			"bytes", le.Bytes,
			"elem_size", le.ElemSize,
		)
	}

	if suppressed > 0 {
		attrs = append(attrs, "suppressed", suppressed)
	}

	l.ErrorContext(ctx, "alignment check failed", attrs...)
}

// LogCheck logs a passing check at debug level.
func (l *Logger) LogCheck(ctx context.Context, address, required uintptr) {
	l.DebugContext(ctx, "alignment check passed",
		"address", address,
		"required", required,
	)
}
