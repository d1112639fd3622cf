package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// FromContext extracts the logger from context.
// Returns the default logger if no logger is found or ctx is nil.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, defaultLogger)
}

// FromContextOr extracts the logger from context, returning fallback when
// ctx carries none.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	return fallback
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithInvocationID adds the id of the current program run to the logger in context.
func WithInvocationID(ctx context.Context, invocationID string) context.Context {
	logger := FromContext(ctx).With(slog.String("invocation_id", invocationID))
	return WithContext(ctx, logger)
}

// WithAttrs stores in ctx the context logger, or fallback when ctx has none,
// extended with attrs. Loggers derived later from ctx carry the attrs.
func WithAttrs(ctx context.Context, fallback *slog.Logger, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}

	return WithContext(ctx, FromContextOr(ctx, fallback).With(args...))
}

// ForComponent returns the context logger, or fallback when ctx has none,
// tagged with the component name.
func ForComponent(ctx context.Context, fallback *slog.Logger, component string) *slog.Logger {
	return FromContextOr(ctx, fallback).With(slog.String("component", component))
}

// SetDefault sets the default logger used when no logger is in context.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}
