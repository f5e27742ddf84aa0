package matchgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with matchgo-specific context.
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

// LogRank logs a rank operation.
func (l *Logger) LogRank(ctx context.Context, abbrev string, candidates, results int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rank failed",
			"abbrev", abbrev,
			"candidates", candidates,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "rank completed",
			"abbrev", abbrev,
			"candidates", candidates,
			"results", results,
		)
	}
}

// LogRescan logs a provider rescan operation.
func (l *Logger) LogRescan(ctx context.Context, root string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "rescan failed",
			"root", root,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "rescan completed",
			"root", root,
			"count", count,
		)
	}
}
