package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/gymnexus/pkg/audit"
	"github.com/dmitrymomot/gymnexus/pkg/feature"
	"github.com/dmitrymomot/gymnexus/pkg/guard"
	"github.com/dmitrymomot/gymnexus/pkg/hostroute"
	"github.com/dmitrymomot/gymnexus/pkg/membership"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

// GymStore changes gym records.
type GymStore interface {
	UpdateStatus(ctx context.Context, id int64, status tenant.Status) (*tenant.Gym, error)
}

// Sweeper runs one suspension sweep on demand. *membership.Sweeper implements it.
type Sweeper interface {
	Sweep(ctx context.Context) (membership.Result, error)
}

// RouterOptions wires the router's collaborators. Probe handlers are optional;
// everything else is required.
type RouterOptions struct {
	HostRouter    *hostroute.Router
	Resolver      *tenant.Resolver
	TenantOptions []tenant.Option
	Guard         *guard.Guard
	Gyms          GymStore
	Memberships   membership.Lister
	Audit         *audit.Logger
	Sweeper       Sweeper
	Logger        *slog.Logger

	Liveness  http.Handler
	Readiness http.Handler
	Metrics   http.Handler
}

// Router builds the HTTP surface of gymnexus.
//
// Every request first passes the host router (redirect or internal rewrite)
// and then tenant resolution, so routes see the rewritten path and the
// resolved gym. Panics when a required option is missing.
//
//	r := api.Router(api.RouterOptions{
//		HostRouter:  hostroute.New(hosts),
//		Resolver:    resolver,
//		Guard:       guard.New(admins),
//		Gyms:        gyms,
//		Memberships: memberships,
//		Audit:       auditLog,
//		Sweeper:     sweeper,
//	})
func Router(opts RouterOptions) chi.Router {
	switch {
	case opts.HostRouter == nil:
		panic("api: host router is required")
	case opts.Resolver == nil:
		panic("api: tenant resolver is required")
	case opts.Guard == nil:
		panic("api: guard is required")
	case opts.Gyms == nil, opts.Memberships == nil:
		panic("api: gym and membership stores are required")
	case opts.Audit == nil:
		panic("api: audit logger is required")
	case opts.Sweeper == nil:
		panic("api: sweeper is required")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	h := &handlers{
		resolver:    opts.Resolver,
		gyms:        opts.Gyms,
		memberships: opts.Memberships,
		audit:       opts.Audit,
		sweeper:     opts.Sweeper,
		log:         log,
	}
	g := opts.Guard

	tenantOpts := append([]tenant.Option{
		tenant.WithLogger(log),
		tenant.WithSkipPaths("/health", "/metrics", "/api/super-admin"),
	}, opts.TenantOptions...)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		opts.HostRouter.Middleware,
		tenant.Middleware(opts.Resolver, tenantOpts...),
	)

	if opts.Liveness != nil {
		r.Method(http.MethodGet, "/health/live", opts.Liveness)
	}
	if opts.Readiness != nil {
		r.Method(http.MethodGet, "/health/ready", opts.Readiness)
	}
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/super-admin", func(r chi.Router) {
			r.Use(g.RequireSuperAdmin)
			r.Patch("/gyms/{id}/status", h.wrap(h.updateGymStatus))
			r.Post("/suspension-sweep", h.wrap(h.runSweep))
		})

		r.Group(func(r chi.Router) {
			r.Use(g.RequireTenant)
			r.Get("/gym", h.wrap(h.getGym))

			r.Group(func(r chi.Router) {
				r.Use(g.RequireAdmin)
				r.Get("/me", h.wrap(h.getMe))
				r.With(g.RequireFeature(feature.Members)).
					Get("/members/suspended", h.wrap(h.listSuspended))
				r.With(g.RequireFeature(feature.ActivityLogs)).
					Get("/activity-logs", h.wrap(h.listActivity))
			})
		})
	})

	r.Get("/{subdomain}", h.wrap(h.page))
	r.Get("/{subdomain}/*", h.wrap(h.page))

	return r
}
