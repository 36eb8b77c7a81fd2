package main

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/httpserver"
	"github.com/dmitrymomot/gymnexus/pkg/logger"
	"github.com/dmitrymomot/gymnexus/pkg/pg"
	"github.com/dmitrymomot/gymnexus/pkg/redis"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

type appConfig struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	Name       string `env:"APP_NAME" envDefault:"gymnexus"`
	RootDomain string `env:"ROOT_DOMAIN,required"`

	PreviewHostPatterns []string `env:"PREVIEW_HOST_PATTERNS" envSeparator:"," envDefault:"\\.vercel\\.app$"`
	ReservedPaths       []string `env:"RESERVED_PATHS" envSeparator:","`
	PublicScheme        string   `env:"PUBLIC_SCHEME" envDefault:"http"`

	SweepEnabled  bool          `env:"SUSPENSION_SWEEP_ENABLED" envDefault:"true"`
	SweepInterval time.Duration `env:"SUSPENSION_SWEEP_INTERVAL" envDefault:"1h"`

	TenantCacheTTL   time.Duration `env:"TENANT_CACHE_TTL" envDefault:"1m"`
	TenantCacheSize  int           `env:"TENANT_CACHE_SIZE" envDefault:"1000"`
	ReadinessTimeout time.Duration `env:"READINESS_TIMEOUT" envDefault:"2s"`

	FixturesPath string `env:"FIXTURES_PATH"`

	HTTP  httpserver.Config
	PG    pg.Config
	Redis redis.Config
}

// logConfig is loaded separately so commands that never touch tenants
// (migrate) do not require ROOT_DOMAIN.
type logConfig struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Name string `env:"APP_NAME" envDefault:"gymnexus"`
}

func newLogger(env, name string) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(env, name),
		logger.WithContextExtractors(
			tenant.LoggerExtractor(),
			admin.LoggerExtractor(),
			requestIDExtractor,
		),
	)
}
