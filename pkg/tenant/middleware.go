package tenant

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/gymnexus/pkg/apierr"
)

// ErrorHandler renders resolution failures.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type config struct {
	errorHandler ErrorHandler
	skipPaths    []string
	onResolve    func(r *http.Request, res Resolution)
	logger       *slog.Logger
}

// Option configures the middleware.
type Option func(*config)

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}

// WithSkipPaths sets paths that bypass resolution. A skip path matches itself
// and anything below it, so "/health" skips "/health/live" but not "/healthclub".
func WithSkipPaths(paths ...string) Option {
	return func(c *config) {
		c.skipPaths = append(c.skipPaths, paths...)
	}
}

// WithResolveHook is called after every successful resolution, including
// tenant-less ones.
func WithResolveHook(fn func(r *http.Request, res Resolution)) Option {
	return func(c *config) {
		c.onResolve = fn
	}
}

// WithLogger sets the logger for resolution failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Middleware resolves the tenant of every request and attaches it to the
// request context. Requests without a tenant pass through untouched; routes
// that need one add guard.RequireTenant.
func Middleware(resolver *Resolver, opts ...Option) func(http.Handler) http.Handler {
	cfg := &config{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.errorHandler == nil {
		logger := cfg.logger
		cfg.errorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			logger.ErrorContext(r.Context(), "tenant resolution failed", slog.Any("error", err))
			apierr.Write(w, apierr.ErrAuthentication)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range cfg.skipPaths {
				if underPath(r.URL.Path, skip) {
					next.ServeHTTP(w, r)
					return
				}
			}

			res, err := resolver.Resolve(r)
			if err != nil {
				cfg.errorHandler(w, r, err)
				return
			}
			if cfg.onResolve != nil {
				cfg.onResolve(r, res)
			}
			if res.Gym == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), res.Gym)))
		})
	}
}

func underPath(p, prefix string) bool {
	prefix = strings.TrimSuffix(prefix, "/")
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}
