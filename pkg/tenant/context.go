package tenant

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithTenant attaches the resolved gym to ctx.
func WithTenant(ctx context.Context, gym *Gym) context.Context {
	return context.WithValue(ctx, contextKey{}, gym)
}

// FromContext returns the gym resolved for the current request.
// Returns nil, false when the request is tenant-less.
func FromContext(ctx context.Context) (*Gym, bool) {
	gym, ok := ctx.Value(contextKey{}).(*Gym)
	if !ok || gym == nil {
		return nil, false
	}
	return gym, true
}

// IDFromContext returns just the gym id.
func IDFromContext(ctx context.Context) (int64, bool) {
	gym, ok := FromContext(ctx)
	if !ok {
		return 0, false
	}
	return gym.ID, true
}

// LoggerExtractor enriches log records with the gym id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := IDFromContext(ctx); ok {
			return slog.Int64("gym_id", id), true
		}
		return slog.Attr{}, false
	}
}
