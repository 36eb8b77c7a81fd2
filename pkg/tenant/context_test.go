package tenant_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

func TestContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		gym := newGym(5, "acme")
		ctx := tenant.WithTenant(context.Background(), gym)

		got, ok := tenant.FromContext(ctx)
		assert.True(t, ok)
		assert.Same(t, gym, got)

		id, ok := tenant.IDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(5), id)
	})

	t.Run("missing and nil gyms", func(t *testing.T) {
		t.Parallel()

		_, ok := tenant.FromContext(context.Background())
		assert.False(t, ok)

		_, ok = tenant.FromContext(tenant.WithTenant(context.Background(), nil))
		assert.False(t, ok)
	})

	t.Run("logger extractor", func(t *testing.T) {
		t.Parallel()

		extract := tenant.LoggerExtractor()

		_, ok := extract(context.Background())
		assert.False(t, ok)

		attr, ok := extract(tenant.WithTenant(context.Background(), newGym(5, "acme")))
		assert.True(t, ok)
		assert.Equal(t, slog.Int64("gym_id", 5), attr)
	})
}
