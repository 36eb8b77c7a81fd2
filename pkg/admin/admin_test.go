package admin_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gymnexus/pkg/admin"
)

func gymID(id int64) *int64 { return &id }

func TestAdmin(t *testing.T) {
	t.Parallel()

	regular := &admin.Admin{ID: 1, GymID: gymID(10), Role: admin.RoleAdmin, Status: admin.StatusActive}
	super := &admin.Admin{ID: 2, Role: admin.RoleSuperAdmin, Status: admin.StatusActive}
	inactive := &admin.Admin{ID: 3, GymID: gymID(10), Role: admin.RoleAdmin, Status: admin.StatusInactive}

	assert.True(t, regular.Active())
	assert.False(t, inactive.Active())
	assert.False(t, (*admin.Admin)(nil).Active())

	assert.False(t, regular.IsSuperAdmin())
	assert.True(t, super.IsSuperAdmin())

	assert.True(t, regular.BelongsTo(10))
	assert.False(t, regular.BelongsTo(11))
	assert.False(t, super.BelongsTo(11))
	assert.False(t, (&admin.Admin{ID: 4, Role: admin.RoleAdmin, Status: admin.StatusActive}).BelongsTo(10))
}

func TestParseID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int64
		ok   bool
	}{
		{"42", 42, true},
		{" 7 ", 7, true},
		{"", 0, false},
		{"0", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
	}
	for _, tt := range tests {
		id, ok := admin.ParseID(tt.raw)
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, id, tt.raw)
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	a := &admin.Admin{ID: 9}
	ctx := admin.WithAdmin(context.Background(), a)

	got, ok := admin.FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, a, got)

	_, ok = admin.FromContext(context.Background())
	assert.False(t, ok)

	attr, ok := admin.LoggerExtractor()(ctx)
	assert.True(t, ok)
	assert.Equal(t, slog.Int64("admin_id", 9), attr)
}

func TestActorFromContext(t *testing.T) {
	t.Parallel()

	name, ok := admin.ActorFromContext(admin.WithAdmin(context.Background(), &admin.Admin{ID: 3, Name: "Root"}))
	assert.True(t, ok)
	assert.Equal(t, "Root", name)

	_, ok = admin.ActorFromContext(admin.WithAdmin(context.Background(), &admin.Admin{ID: 4}))
	assert.False(t, ok)

	_, ok = admin.ActorFromContext(context.Background())
	assert.False(t, ok)
}
