package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gymnexus/pkg/config"
	"github.com/dmitrymomot/gymnexus/pkg/logger"
)

func TestAppConfig_Defaults(t *testing.T) {
	config.ResetCache()
	t.Setenv("ROOT_DOMAIN", "gym.app")
	t.Setenv("RESERVED_PATHS", "pricing,blog")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "gym.app", cfg.RootDomain)
	assert.Equal(t, []string{`\.vercel\.app$`}, cfg.PreviewHostPatterns)
	assert.Equal(t, []string{"pricing", "blog"}, cfg.ReservedPaths)
	assert.Equal(t, time.Hour, cfg.SweepInterval)
	assert.Equal(t, time.Minute, cfg.TenantCacheTTL)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "gymnexus:tenant:", cfg.Redis.KeyPrefix)
	assert.False(t, cfg.PG.Enabled())
}

func TestNewApplication_Fixtures(t *testing.T) {
	cfg := appConfig{
		Env:                 "test",
		Name:                "gymnexus",
		RootDomain:          "gym.app:3000",
		PreviewHostPatterns: []string{`\.vercel\.app$`},
		ReservedPaths:       []string{"pricing"},
		PublicScheme:        "https",
		SweepInterval:       time.Hour,
		TenantCacheTTL:      time.Minute,
		TenantCacheSize:     10,
		ReadinessTimeout:    time.Second,
		FixturesPath:        "../../pkg/memstore/testdata/fixtures.yaml",
	}

	app, err := newApplication(t.Context(), cfg, logger.Discard(), false)
	require.NoError(t, err)
	defer app.Close()

	get := func(url string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		app.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
		return rec
	}

	rec := get("http://gym.app:3000/acme")
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://acme.gym.app:3000/", rec.Header().Get("Location"))

	rec = get("http://gym.app:3000/pricing")
	assert.Equal(t, http.StatusNotFound, rec.Code, "extra reserved segment is not redirected")

	rec = get("http://acme.gym.app:3000/api/gym")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"subdomain":"acme"`)

	rec = get("http://gym.app:3000/health/ready")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())

	rec = get("http://gym.app:3000/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `gymnexus_tenant_resolutions_total{source="subdomain"} 1`)
	assert.Contains(t, string(body), `gymnexus_host_routing_total{action="redirect"} 1`)

	res, err := app.sweeper.Sweep(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Reactivated)
}

func TestNewApplication_RequiresStore(t *testing.T) {
	_, err := newApplication(t.Context(), appConfig{RootDomain: "gym.app"}, logger.Discard(), false)
	assert.Error(t, err)
}
