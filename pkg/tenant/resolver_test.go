package tenant_test

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gymnexus/pkg/hostname"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	hosts := hostname.NewParser("gym.app")

	t.Run("resolves by host subdomain", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetBySubdomain", mock.Anything, "acme").Return(newGym(1, "acme"), nil).Once()

		req := httptest.NewRequest("GET", "http://acme.gym.app/api/gym", nil)
		res, err := tenant.NewResolver(hosts, p).Resolve(req)

		require.NoError(t, err)
		require.NotNil(t, res.Gym)
		assert.Equal(t, int64(1), res.Gym.ID)
		assert.Equal(t, tenant.SourceSubdomain, res.Source)
		p.AssertExpectations(t)
	})

	t.Run("subdomain hit skips later methods", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetBySubdomain", mock.Anything, "acme").Return(newGym(1, "acme"), nil).Once()

		req := httptest.NewRequest("GET", "http://acme.gym.app/api/gym?gymId=9", nil)
		req.Header.Set(tenant.HeaderGymID, "7")
		_, err := tenant.NewResolver(hosts, p).Resolve(req)

		require.NoError(t, err)
		p.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("falls back to id header", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetBySubdomain", mock.Anything, "ghost").Return(nil, tenant.ErrTenantNotFound).Once()
		p.On("GetByID", mock.Anything, int64(7)).Return(newGym(7, "seven"), nil).Once()

		req := httptest.NewRequest("GET", "http://ghost.gym.app/api/gym?gymId=9", nil)
		req.Header.Set(tenant.HeaderGymID, "7")
		res, err := tenant.NewResolver(hosts, p).Resolve(req)

		require.NoError(t, err)
		assert.Equal(t, int64(7), res.Gym.ID)
		assert.Equal(t, tenant.SourceHeaderID, res.Source)
		p.AssertExpectations(t)
	})

	t.Run("falls back to id query parameter", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetByID", mock.Anything, int64(7)).Return(nil, tenant.ErrTenantNotFound).Once()
		p.On("GetByID", mock.Anything, int64(9)).Return(newGym(9, "nine"), nil).Once()

		req := httptest.NewRequest("GET", "http://gym.app/api/gym?gymId=9", nil)
		req.Header.Set(tenant.HeaderGymID, "7")
		res, err := tenant.NewResolver(hosts, p).Resolve(req)

		require.NoError(t, err)
		assert.Equal(t, int64(9), res.Gym.ID)
		assert.Equal(t, tenant.SourceQueryID, res.Source)
		p.AssertExpectations(t)
	})

	t.Run("ignores malformed ids", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		req := httptest.NewRequest("GET", "http://gym.app/api/gym?gymId=-3", nil)
		req.Header.Set(tenant.HeaderGymID, "abc")
		res, err := tenant.NewResolver(hosts, p).Resolve(req)

		require.NoError(t, err)
		assert.Nil(t, res.Gym)
		assert.Equal(t, tenant.SourceNone, res.Source)
		p.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("origin second pass for cross-origin calls", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetBySubdomain", mock.Anything, "acme").Return(newGym(1, "acme"), nil).Once()

		req := httptest.NewRequest("GET", "http://gym.app/api/gym", nil)
		req.Header.Set("Origin", "https://acme.gym.app")
		res, err := tenant.NewResolver(hosts, p).Resolve(req)

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.Gym.ID)
		assert.Equal(t, tenant.SourceOrigin, res.Source)
		p.AssertExpectations(t)
	})

	t.Run("origin repeating the same key is not retried", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetBySubdomain", mock.Anything, "ghost").Return(nil, tenant.ErrTenantNotFound).Once()

		req := httptest.NewRequest("GET", "http://ghost.gym.app/api/gym", nil)
		req.Header.Set("Origin", "https://ghost.gym.app")
		res, err := tenant.NewResolver(hosts, p).Resolve(req)

		require.NoError(t, err)
		assert.Nil(t, res.Gym)
		p.AssertNumberOfCalls(t, "GetBySubdomain", 1)
	})

	t.Run("tenant absent is not an error", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		req := httptest.NewRequest("GET", "http://www.gym.app/", nil)
		res, err := tenant.NewResolver(hosts, p).Resolve(req)

		require.NoError(t, err)
		assert.Nil(t, res.Gym)
		assert.Equal(t, tenant.SourceNone, res.Source)
	})

	t.Run("persistence failure is surfaced", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetBySubdomain", mock.Anything, "acme").Return(nil, errors.New("connection refused")).Once()

		req := httptest.NewRequest("GET", "http://acme.gym.app/api/gym", nil)
		_, err := tenant.NewResolver(hosts, p).Resolve(req)

		assert.ErrorIs(t, err, tenant.ErrLookupFailed)
	})
}

func TestResolver_Cache(t *testing.T) {
	t.Parallel()

	hosts := hostname.NewParser("gym.app")

	t.Run("second lookup served from cache under both keys", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetBySubdomain", mock.Anything, "acme").Return(newGym(1, "acme"), nil).Once()

		cache := tenant.NewMemoryCache(10)
		r := tenant.NewResolver(hosts, p, tenant.WithCache(cache, time.Minute))

		first, err := r.BySubdomain(t.Context(), "acme")
		require.NoError(t, err)
		second, err := r.BySubdomain(t.Context(), "acme")
		require.NoError(t, err)
		byID, err := r.ByID(t.Context(), 1)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.NotSame(t, first, second)
		assert.Equal(t, first, byID)
		p.AssertExpectations(t)
	})

	t.Run("mixed case stored subdomain is cached", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetBySubdomain", mock.Anything, "acme").Return(newGym(1, "Acme"), nil).Once()

		r := tenant.NewResolver(hosts, p, tenant.WithCache(tenant.NewMemoryCache(10), time.Minute))
		for range 3 {
			g, err := r.BySubdomain(t.Context(), "acme")
			require.NoError(t, err)
			assert.Equal(t, int64(1), g.ID)
		}
		p.AssertExpectations(t)
	})

	t.Run("invalidate forces reload", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		suspended := newGym(1, "acme")
		suspended.Status = tenant.StatusSuspended
		p.On("GetBySubdomain", mock.Anything, "acme").Return(newGym(1, "acme"), nil).Once()
		p.On("GetBySubdomain", mock.Anything, "acme").Return(suspended, nil).Once()

		r := tenant.NewResolver(hosts, p, tenant.WithCache(tenant.NewMemoryCache(10), time.Minute))

		g, err := r.BySubdomain(t.Context(), "acme")
		require.NoError(t, err)
		assert.True(t, g.Active())

		require.NoError(t, r.Invalidate(t.Context(), g))

		g, err = r.BySubdomain(t.Context(), "acme")
		require.NoError(t, err)
		assert.False(t, g.Active())
		p.AssertExpectations(t)
	})

	t.Run("zero ttl disables caching", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetByID", mock.Anything, int64(1)).Return(newGym(1, "acme"), nil).Twice()

		r := tenant.NewResolver(hosts, p, tenant.WithCache(tenant.NewMemoryCache(10), 0))
		_, err := r.ByID(t.Context(), 1)
		require.NoError(t, err)
		_, err = r.ByID(t.Context(), 1)
		require.NoError(t, err)

		p.AssertExpectations(t)
	})

	t.Run("mutating a result does not leak into the cache", func(t *testing.T) {
		t.Parallel()

		p := new(mockProvider)
		p.On("GetByID", mock.Anything, int64(1)).Return(newGym(1, "acme"), nil).Once()

		r := tenant.NewResolver(hosts, p, tenant.WithCache(tenant.NewMemoryCache(10), time.Minute))
		g, err := r.ByID(t.Context(), 1)
		require.NoError(t, err)
		g.Name = "changed"
		g.Features[0] = "trainers"

		again, err := r.ByID(t.Context(), 1)
		require.NoError(t, err)
		assert.Equal(t, "acme fitness", again.Name)
		assert.Equal(t, newGym(1, "acme").Features, again.Features)
	})
}
