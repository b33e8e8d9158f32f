package fitgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with fitgo-specific helpers.
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

// LogFit logs a fit operation.
func (l *Logger) LogFit(ctx context.Context, solver string, n int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit failed",
			"solver", solver,
			"samples", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit completed",
			"solver", solver,
			"samples", n,
			"duration", duration,
		)
	}
}

// LogGenerate logs a synthetic dataset generation.
func (l *Logger) LogGenerate(ctx context.Context, n int, slope, intercept, sigma float64) {
	l.DebugContext(ctx, "dataset generated",
		"samples", n,
		"slope", slope,
		"intercept", intercept,
		"noise_sigma", sigma,
	)
}

// LogPublish logs an artifact publish operation.
func (l *Logger) LogPublish(ctx context.Context, run string, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "publish completed with failures",
			"run", run,
			"total", count,
			"failed", failed,
		)
	} else {
		l.InfoContext(ctx, "publish completed",
			"run", run,
			"artifacts", count,
		)
	}
}
