package blockjoin

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/blockjoin/join"
	"github.com/hupe1980/blockjoin/model"
)

// Logger wraps slog.Logger with blockjoin-specific context.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithSegment adds a segment field to the logger.
func (l *Logger) WithSegment(id model.SegmentID) *Logger {
	return &Logger{
		Logger: l.Logger.With("segment", id),
	}
}

// LogSort logs the sort of one segment.
// Use WithSegment to tag the segment.
func (l *Logger) LogSort(ctx context.Context, maxDoc int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "segment sort failed",
			"max_doc", maxDoc,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "segment sort completed",
			"max_doc", maxDoc,
		)
	}
}

// LogTopDocs logs a top-k selection over one segment.
// Use WithSegment to tag the segment.
func (l *Logger) LogTopDocs(ctx context.Context, k, resultsFound int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "top docs failed",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "top docs completed",
			"k", k,
			"results", resultsFound,
		)
	}
}

// LogJoin logs a join scoring pass.
func (l *Logger) LogJoin(ctx context.Context, mode join.ScoreMode, joinValues, hits int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "join scoring failed",
			"mode", mode.String(),
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "join scoring completed",
			"mode", mode.String(),
			"join_values", joinValues,
			"hits", hits,
		)
	}
}
