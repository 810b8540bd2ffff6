package truncprime

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with counting-specific context.
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
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDigits adds a digits field to the logger.
func (l *Logger) WithDigits(digits int) *Logger {
	return &Logger{
		Logger: l.Logger.With("digits", digits),
	}
}

// WithKind adds an index kind field to the logger.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind),
	}
}

// LogGenerate logs a prime generation pass.
func (l *Logger) LogGenerate(ctx context.Context, max uint64, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generation failed",
			"max", max,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "generation completed",
			"max", max,
			"primes", count,
		)
	}
}

// LogGenerateProgress logs sieve progress. Callers pace it through the
// resource controller, so it stays quiet on fast runs.
func (l *Logger) LogGenerateProgress(done, total uint64) {
	l.Debug("generation progress",
		"done", done,
		"total", total,
	)
}

// LogIndexBuild logs a membership index build.
func (l *Logger) LogIndexBuild(ctx context.Context, kind string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"kind", kind,
			"values", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index build completed",
			"kind", kind,
			"values", count,
		)
	}
}

// LogScan logs a truncation scan.
func (l *Logger) LogScan(ctx context.Context, digits int, truncatable uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"digits", digits,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "scan completed",
			"digits", digits,
			"truncatable", truncatable,
		)
	}
}

// LogCount logs a full counting run.
func (l *Logger) LogCount(ctx context.Context, digits int, truncatable, primes uint64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "count failed",
			"digits", digits,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "count completed",
			"digits", digits,
			"truncatable", truncatable,
			"primes", primes,
		)
	}
}
