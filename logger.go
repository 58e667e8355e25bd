package numkit

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/hupe1980/numkit/halfbuf"
)

// Logger wraps slog.Logger with numkit-specific context.
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
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithCompression adds a compression field to the logger.
func (l *Logger) WithCompression(c halfbuf.Compression) *Logger {
	return &Logger{
		Logger: l.Logger.With("compression", c.String()),
	}
}

// LogSummarize logs a summarize operation.
func (l *Logger) LogSummarize(ctx context.Context, count, workers int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "summarize failed",
			"count", count,
			"workers", workers,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "summarize completed",
			"count", count,
			"workers", workers,
			"duration", duration,
		)
	}
}

// LogEncode logs a half-precision encode operation.
func (l *Logger) LogEncode(ctx context.Context, count, bytes int, c halfbuf.Compression, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"count", count,
			"compression", c.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"count", count,
			"bytes", bytes,
			"compression", c.String(),
		)
	}
}

// LogDecode logs a half-precision decode operation.
func (l *Logger) LogDecode(ctx context.Context, bytes, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"bytes", bytes,
			"count", count,
		)
	}
}
