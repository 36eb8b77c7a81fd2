package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/gymnexus/modules/api"
	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/audit"
	"github.com/dmitrymomot/gymnexus/pkg/guard"
	"github.com/dmitrymomot/gymnexus/pkg/hostname"
	"github.com/dmitrymomot/gymnexus/pkg/hostroute"
	"github.com/dmitrymomot/gymnexus/pkg/httpserver"
	"github.com/dmitrymomot/gymnexus/pkg/membership"
	"github.com/dmitrymomot/gymnexus/pkg/memstore"
	"github.com/dmitrymomot/gymnexus/pkg/metrics"
	"github.com/dmitrymomot/gymnexus/pkg/pg"
	"github.com/dmitrymomot/gymnexus/pkg/redis"
	"github.com/dmitrymomot/gymnexus/pkg/store"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

// gymStore is what both persistence backends provide for gyms.
type gymStore interface {
	tenant.Provider
	api.GymStore
}

type membershipStore interface {
	membership.Store
	membership.Lister
}

// backend is the persistence collaborator chosen at startup.
type backend struct {
	gyms        gymStore
	admins      admin.Provider
	memberships membershipStore
	activity    audit.Storage
	checks      map[string]httpserver.Check
	closers     []func()
}

func (b *backend) Close() {
	for _, c := range b.closers {
		c()
	}
}

// openBackend uses YAML fixtures when FIXTURES_PATH is set and PostgreSQL
// otherwise. migrate applies pending migrations before returning.
func openBackend(ctx context.Context, cfg appConfig, log *slog.Logger, migrate bool) (*backend, error) {
	if cfg.FixturesPath != "" {
		st, err := memstore.Open(cfg.FixturesPath)
		if err != nil {
			return nil, err
		}
		log.InfoContext(ctx, "using in-memory store", slog.String("fixtures", cfg.FixturesPath))
		return &backend{
			gyms:        st.Gyms,
			admins:      st.Admins,
			memberships: st.Memberships,
			activity:    audit.NewMemoryStorage(),
			checks:      map[string]httpserver.Check{},
		}, nil
	}

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		if errors.Is(err, pg.ErrEmptyConnectionString) {
			return nil, fmt.Errorf("set PG_CONN_URL or FIXTURES_PATH: %w", err)
		}
		return nil, err
	}
	if migrate {
		if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return &backend{
		gyms:        store.NewGyms(pool),
		admins:      store.NewAdmins(pool),
		memberships: store.NewMemberships(pool),
		activity:    store.NewActivityLogs(pool),
		checks:      map[string]httpserver.Check{"postgres": pg.Healthcheck(pool)},
		closers:     []func(){pool.Close},
	}, nil
}

// openCache uses Redis when REDIS_URL is set, process memory otherwise.
func openCache(ctx context.Context, cfg appConfig, b *backend, log *slog.Logger) (tenant.Cache, error) {
	if !cfg.Redis.Enabled() {
		return tenant.NewMemoryCache(cfg.TenantCacheSize), nil
	}
	client, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "using redis tenant cache", slog.String("prefix", cfg.Redis.KeyPrefix))
	b.checks["redis"] = redis.Healthcheck(client)
	b.closers = append(b.closers, func() { _ = client.Close() })
	return tenant.NewRedisCache(client, cfg.Redis.KeyPrefix), nil
}

func requestIDExtractor(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

func newAuditLogger(storage audit.Storage) *audit.Logger {
	return audit.NewLogger(storage,
		audit.WithGymIDExtractor(tenant.IDFromContext),
		audit.WithActorExtractor(admin.ActorFromContext),
		audit.WithRequestIDExtractor(func(ctx context.Context) (string, bool) {
			id := middleware.GetReqID(ctx)
			return id, id != ""
		}),
	)
}

// application holds everything serve and sweep need.
type application struct {
	cfg     appConfig
	log     *slog.Logger
	backend *backend
	sweeper *membership.Sweeper
	handler http.Handler
}

func newApplication(ctx context.Context, cfg appConfig, log *slog.Logger, migrate bool) (*application, error) {
	patterns, err := hostname.CompilePatterns(cfg.PreviewHostPatterns)
	if err != nil {
		return nil, fmt.Errorf("PREVIEW_HOST_PATTERNS: %w", err)
	}
	hosts := hostname.NewParser(cfg.RootDomain, hostname.WithPreviewPatterns(patterns...))

	b, err := openBackend(ctx, cfg, log, migrate)
	if err != nil {
		return nil, err
	}
	cache, err := openCache(ctx, cfg, b, log)
	if err != nil {
		b.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	resolver := tenant.NewResolver(hosts, b.gyms,
		tenant.WithCache(cache, cfg.TenantCacheTTL),
		tenant.WithResolverLogger(log),
	)
	auditLog := newAuditLogger(b.activity)

	sweeper, err := membership.NewSweeper(b.memberships, auditLog,
		membership.WithInterval(cfg.SweepInterval),
		membership.WithLogger(log),
		membership.WithSweepHook(m.ObserveSweep),
	)
	if err != nil {
		b.Close()
		return nil, err
	}

	routeOpts := []hostroute.Option{
		hostroute.WithScheme(cfg.PublicScheme),
		hostroute.WithDecisionHook(m.ObserveDecision),
	}
	if len(cfg.ReservedPaths) > 0 {
		routeOpts = append(routeOpts, hostroute.WithReserved(cfg.ReservedPaths...))
	}

	handler := api.Router(api.RouterOptions{
		HostRouter:    hostroute.New(hosts, routeOpts...),
		Resolver:      resolver,
		TenantOptions: []tenant.Option{tenant.WithResolveHook(m.ObserveResolution)},
		Guard:         guard.New(b.admins, guard.WithLogger(log), guard.WithRejectionHook(m.ObserveRejection)),
		Gyms:          b.gyms,
		Memberships:   b.memberships,
		Audit:         auditLog,
		Sweeper:       sweeper,
		Logger:        log,
		Liveness:      httpserver.LivenessHandler(),
		Readiness:     httpserver.ReadinessHandler(log, cfg.ReadinessTimeout, b.checks),
		Metrics:       promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	return &application{cfg: cfg, log: log, backend: b, sweeper: sweeper, handler: handler}, nil
}

func (a *application) Close() {
	a.backend.Close()
}
