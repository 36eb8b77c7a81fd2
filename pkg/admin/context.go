package admin

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithAdmin attaches the authenticated admin to ctx.
func WithAdmin(ctx context.Context, a *Admin) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// FromContext returns the authenticated admin, if any.
func FromContext(ctx context.Context) (*Admin, bool) {
	a, ok := ctx.Value(contextKey{}).(*Admin)
	if !ok || a == nil {
		return nil, false
	}
	return a, true
}

// LoggerExtractor enriches log records with the admin id.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if a, ok := FromContext(ctx); ok {
			return slog.Int64("admin_id", a.ID), true
		}
		return slog.Attr{}, false
	}
}

// ActorFromContext returns the authenticated admin's name for activity logs.
func ActorFromContext(ctx context.Context) (string, bool) {
	a, ok := FromContext(ctx)
	if !ok || a.Name == "" {
		return "", false
	}
	return a.Name, true
}
