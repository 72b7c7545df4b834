package vecstat

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/vecstat/relation"
)

// Logger wraps slog.Logger with vecstat-specific context.
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
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithRelation adds the type information of r to the logger.
func (l *Logger) WithRelation(r relation.Untyped) *Logger {
	return &Logger{
		Logger: l.Logger.With("relation", r.TypeInfo().String()),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogStatistic logs the outcome of a statistic computed over n elements.
func (l *Logger) LogStatistic(ctx context.Context, op string, n, dim int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "statistic failed",
			"op", op,
			"count", n,
			"dimension", dim,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "statistic computed",
			"op", op,
			"count", n,
			"dimension", dim,
		)
	}
}

// LogLookup logs a label lookup.
func (l *Logger) LogLookup(ctx context.Context, op string, found int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "lookup failed",
			"op", op,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "lookup completed",
			"op", op,
			"found", found,
		)
	}
}

// LogLoad logs the loading of a dataset from source.
func (l *Logger) LogLoad(ctx context.Context, source string, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"source", source,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "dataset loaded",
			"source", source,
			"count", n,
		)
	}
}
