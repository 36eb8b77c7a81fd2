package guard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/apierr"
	"github.com/dmitrymomot/gymnexus/pkg/feature"
	"github.com/dmitrymomot/gymnexus/pkg/logger"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

// Guard builds per-route checks over the resolved tenant and the calling admin.
// Checks are independent and compose in any order.
type Guard struct {
	admins   admin.Provider
	logger   *slog.Logger
	onReject func(r *http.Request, err *apierr.Error)
}

// Option configures a Guard.
type Option func(*Guard)

// WithLogger sets the logger for rejections and lookup failures.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRejectionHook is called for every rejected request before the error
// response is written.
func WithRejectionHook(fn func(r *http.Request, err *apierr.Error)) Option {
	return func(g *Guard) {
		g.onReject = fn
	}
}

// New creates a Guard. Panics if admins is nil.
func New(admins admin.Provider, opts ...Option) *Guard {
	if admins == nil {
		panic("guard: admin provider cannot be nil")
	}
	g := &Guard{admins: admins, logger: slog.Default()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CheckTenant fails when no gym was resolved or the gym is not active.
func CheckTenant(ctx context.Context) *apierr.Error {
	gym, ok := tenant.FromContext(ctx)
	if !ok {
		return apierr.ErrTenantContextMissing
	}
	if !gym.Active() {
		return apierr.ErrTenantSuspended
	}
	return nil
}

// CheckFeature passes when no gym is attached or the gym is unrestricted;
// otherwise the gym must have name enabled.
func CheckFeature(ctx context.Context, name feature.Name) *apierr.Error {
	gym, ok := tenant.FromContext(ctx)
	if !ok || gym.Features.Enabled(name) {
		return nil
	}
	return apierr.ErrFeatureDisabled
}

// CheckAdmin verifies a loaded admin against the resolved gym, if any.
// An admin without a gym never matches a resolved gym.
func CheckAdmin(ctx context.Context, a *admin.Admin) *apierr.Error {
	if !a.Active() {
		return apierr.ErrUnauthenticated
	}
	if gymID, ok := tenant.IDFromContext(ctx); ok && !a.BelongsTo(gymID) {
		return apierr.ErrCrossTenantAccess
	}
	return nil
}

// CheckSuperAdmin verifies a loaded admin holds the active super admin role.
func CheckSuperAdmin(a *admin.Admin) *apierr.Error {
	if !a.Active() || !a.IsSuperAdmin() {
		return apierr.ErrForbidden
	}
	return nil
}

// RequireTenant rejects requests without an active gym.
func (g *Guard) RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := CheckTenant(r.Context()); err != nil {
			g.reject(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin authenticates the admin named by the X-Admin-ID header and
// attaches it to the request context.
func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, err := g.loadAdmin(r)
		if err == nil {
			err = CheckAdmin(r.Context(), a)
		}
		if err != nil {
			g.reject(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(admin.WithAdmin(r.Context(), a)))
	})
}

// RequireSuperAdmin authenticates a super admin. It does not depend on
// tenant resolution.
func (g *Guard) RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a, err := g.loadAdmin(r)
		if err == nil {
			err = CheckSuperAdmin(a)
		}
		if err != nil {
			g.reject(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(admin.WithAdmin(r.Context(), a)))
	})
}

// RequireFeature rejects requests whose gym has name disabled.
// Panics on an unknown feature name.
func (g *Guard) RequireFeature(name feature.Name) func(http.Handler) http.Handler {
	if !name.Valid() {
		panic("guard: unknown feature " + string(name))
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := CheckFeature(r.Context(), name); err != nil {
				g.reject(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// loadAdmin returns the admin already attached by an earlier check or looks
// it up by header.
func (g *Guard) loadAdmin(r *http.Request) (*admin.Admin, *apierr.Error) {
	id, ok := admin.ParseID(r.Header.Get(admin.HeaderAdminID))
	if !ok {
		return nil, apierr.ErrUnauthenticated
	}
	if a, ok := admin.FromContext(r.Context()); ok && a.ID == id {
		return a, nil
	}

	a, err := g.admins.GetByID(r.Context(), id)
	switch {
	case errors.Is(err, admin.ErrAdminNotFound):
		return nil, apierr.ErrUnauthenticated
	case err != nil:
		g.logger.ErrorContext(r.Context(), "admin lookup failed",
			logger.AdminID(id),
			logger.Error(err),
		)
		return nil, apierr.ErrAuthentication
	case a == nil:
		return nil, apierr.ErrUnauthenticated
	}
	return a, nil
}

func (g *Guard) reject(w http.ResponseWriter, r *http.Request, err *apierr.Error) {
	if err.Status < http.StatusInternalServerError {
		g.logger.WarnContext(r.Context(), "request rejected",
			slog.String("kind", err.Kind),
			slog.String("path", r.URL.Path),
		)
	}
	if g.onReject != nil {
		g.onReject(r, err)
	}
	apierr.Write(w, err)
}
