package logging

import (
	"context"

	"go.uber.org/zap"
)

type contextKey string

const commandIDKey contextKey = "command_id"

// WithCommandID returns a copy of ctx carrying id.
func WithCommandID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, commandIDKey, id)
}

// CommandIDFromContext retrieves the command ID, or "" if none is set.
func CommandIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(commandIDKey).(string); ok {
		return id
	}
	return ""
}

// FromContext returns log tagged with the command_id in ctx, if any.
func FromContext(ctx context.Context, log *zap.Logger) *zap.Logger {
	if id := CommandIDFromContext(ctx); id != "" {
		return log.With(zap.String("command_id", id))
	}
	return log
}
