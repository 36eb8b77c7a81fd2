package store_test

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/audit"
	"github.com/dmitrymomot/gymnexus/pkg/feature"
	"github.com/dmitrymomot/gymnexus/pkg/membership"
	"github.com/dmitrymomot/gymnexus/pkg/pg"
	"github.com/dmitrymomot/gymnexus/pkg/store"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

// connect returns a migrated pool, or skips when TEST_PG_CONN_URL is unset.
func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_PG_CONN_URL")
	if url == "" {
		t.Skip("TEST_PG_CONN_URL not set")
	}

	ctx := context.Background()
	cfg := pg.Config{
		ConnectionString: url,
		MaxOpenConns:     4,
		RetryAttempts:    1,
		MigrationsTable:  "schema_migrations",
	}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, cfg, slog.Default()))
	return pool
}

func uniqueSubdomain() string {
	return "t" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func createGym(t *testing.T, gyms *store.Gyms, features feature.Set) *tenant.Gym {
	t.Helper()
	gym := &tenant.Gym{Subdomain: uniqueSubdomain(), Name: "Test Gym", Features: features}
	require.NoError(t, gyms.Create(context.Background(), gym))
	return gym
}

func TestGyms(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()
	gyms := store.NewGyms(pool)

	gym := createGym(t, gyms, feature.Of(feature.Members))

	bySub, err := gyms.GetBySubdomain(ctx, strings.ToUpper(gym.Subdomain))
	require.NoError(t, err)
	assert.Equal(t, gym.ID, bySub.ID)
	assert.Equal(t, feature.Of(feature.Members), bySub.Features)
	assert.Equal(t, tenant.StatusActive, bySub.Status)

	unrestricted := createGym(t, gyms, feature.Unrestricted())
	byID, err := gyms.GetByID(ctx, unrestricted.ID)
	require.NoError(t, err)
	assert.True(t, byID.Features.IsUnrestricted())

	updated, err := gyms.UpdateStatus(ctx, gym.ID, tenant.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusSuspended, updated.Status)

	_, err = gyms.GetBySubdomain(ctx, "missing-"+uniqueSubdomain())
	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)

	_, err = gyms.GetByID(ctx, -1)
	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)

	dup := &tenant.Gym{Subdomain: gym.Subdomain, Name: "Copy"}
	assert.ErrorIs(t, gyms.Create(ctx, dup), store.ErrSubdomainTaken)
}

func TestGyms_UnknownStoredFeature(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()
	gyms := store.NewGyms(pool)

	gym := createGym(t, gyms, feature.Of(feature.Members))
	_, err := pool.Exec(ctx, `UPDATE gyms SET features = array_append(features, 'pos') WHERE id = $1`, gym.ID)
	require.NoError(t, err)

	loaded, err := gyms.GetBySubdomain(ctx, gym.Subdomain)
	require.NoError(t, err)
	assert.True(t, loaded.Features.Enabled(feature.Members))
	assert.False(t, loaded.Features.Enabled(feature.Reports))
	assert.Contains(t, loaded.Features.Strings(), "pos")
}

func TestAdmins(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()
	gym := createGym(t, store.NewGyms(pool), nil)
	admins := store.NewAdmins(pool)

	a := &admin.Admin{GymID: &gym.ID, Name: "Ann", Email: uniqueSubdomain() + "@example.com"}
	require.NoError(t, admins.Create(ctx, a))

	got, err := admins.GetByID(ctx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, got.GymID)
	assert.Equal(t, gym.ID, *got.GymID)
	assert.Equal(t, admin.RoleAdmin, got.Role)
	assert.True(t, got.Active())

	super := &admin.Admin{Name: "Root", Email: uniqueSubdomain() + "@example.com", Role: admin.RoleSuperAdmin}
	require.NoError(t, admins.Create(ctx, super))
	got, err = admins.GetByID(ctx, super.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GymID)
	assert.True(t, got.IsSuperAdmin())

	_, err = admins.GetByID(ctx, -1)
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}

func TestMemberships_Reactivation(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()
	gym := createGym(t, store.NewGyms(pool), nil)
	ms := store.NewMemberships(pool)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	expired := &membership.Membership{GymID: gym.ID, MemberName: "Ann", Suspended: true, SuspensionReason: "travel", SuspensionEndDate: &past}
	pending := &membership.Membership{GymID: gym.ID, MemberName: "Bob", Suspended: true, SuspensionEndDate: &future}
	require.NoError(t, ms.Create(ctx, expired))
	require.NoError(t, ms.Create(ctx, pending))

	list, err := ms.ListExpiredSuspensions(ctx, time.Now())
	require.NoError(t, err)
	var ids []int64
	for _, m := range list {
		ids = append(ids, m.ID)
	}
	assert.Contains(t, ids, expired.ID)
	assert.NotContains(t, ids, pending.ID)

	changed, err := ms.Reactivate(ctx, expired.ID)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = ms.Reactivate(ctx, expired.ID)
	require.NoError(t, err)
	assert.False(t, changed, "second reactivation is a no-op")

	suspended, err := ms.ListSuspended(ctx, gym.ID)
	require.NoError(t, err)
	require.Len(t, suspended, 1)
	assert.Equal(t, pending.ID, suspended[0].ID)
}

func TestActivityLogs(t *testing.T) {
	pool := connect(t)
	ctx := context.Background()
	gym := createGym(t, store.NewGyms(pool), nil)
	logs := store.NewActivityLogs(pool)
	log := audit.NewLogger(logs)

	require.NoError(t, log.Log(ctx, audit.ActionMemberActivated,
		audit.WithGymID(gym.ID),
		audit.WithResource("membership", "1"),
		audit.WithDetail("status", "Active"),
	))
	require.NoError(t, log.Log(ctx, audit.ActionGymStatusChanged,
		audit.WithGymID(gym.ID),
		audit.WithActor("Root"),
	))

	events, err := logs.Query(ctx, audit.Criteria{GymID: gym.ID})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionGymStatusChanged, events[0].Action)
	assert.Equal(t, "Root", events[0].ActorName)

	events, err = logs.Query(ctx, audit.Criteria{GymID: gym.ID, Action: audit.ActionMemberActivated, Limit: 1})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, audit.SystemActor, events[0].ActorName)
	assert.Equal(t, "Active", events[0].Details["status"])
	_, err = uuid.Parse(events[0].ID)
	assert.NoError(t, err)
}
