package memstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/feature"
	"github.com/dmitrymomot/gymnexus/pkg/memstore"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

func open(t *testing.T) *memstore.Store {
	t.Helper()
	s, err := memstore.Open("testdata/fixtures.yaml")
	require.NoError(t, err)
	return s
}

func TestOpen_Fixtures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := open(t)

	acme, err := s.Gyms.GetBySubdomain(ctx, "ACME")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acme.ID)
	assert.Equal(t, "#d32f2f", acme.PrimaryColor)
	assert.Equal(t, feature.Of(feature.Members, feature.Classes), acme.Features)
	assert.True(t, acme.Active())

	legacy, err := s.Gyms.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.True(t, legacy.Features.IsUnrestricted())

	closed, err := s.Gyms.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusSuspended, closed.Status)

	root, err := s.Admins.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.True(t, root.IsSuperAdmin())
	assert.Nil(t, root.GymID)

	ann, err := s.Admins.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, ann.GymID)
	assert.Equal(t, int64(1), *ann.GymID)
	assert.Equal(t, admin.RoleAdmin, ann.Role)
}

func TestGyms(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := open(t)

	_, err := s.Gyms.GetBySubdomain(ctx, "nope")
	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)
	_, err = s.Gyms.GetByID(ctx, 99)
	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)

	gym, err := s.Gyms.GetByID(ctx, 1)
	require.NoError(t, err)
	gym.Name = "mutated"
	again, _ := s.Gyms.GetByID(ctx, 1)
	assert.Equal(t, "Acme Fitness", again.Name)

	updated, err := s.Gyms.UpdateStatus(ctx, 1, tenant.StatusSuspended)
	require.NoError(t, err)
	assert.Equal(t, tenant.StatusSuspended, updated.Status)
	_, err = s.Gyms.UpdateStatus(ctx, 99, tenant.StatusSuspended)
	assert.ErrorIs(t, err, tenant.ErrTenantNotFound)

	assert.ErrorIs(t, s.Gyms.Add(&tenant.Gym{ID: 10, Subdomain: "Acme"}), memstore.ErrInvalidFixtures)
}

func TestAdmins_NotFound(t *testing.T) {
	t.Parallel()

	_, err := open(t).Admins.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}

func TestMemberships(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := open(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	expired, err := s.Memberships.ListExpiredSuspensions(ctx, now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, int64(1), expired[0].ID)

	changed, err := s.Memberships.Reactivate(ctx, 1)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.Memberships.Reactivate(ctx, 1)
	require.NoError(t, err)
	assert.False(t, changed)

	m, ok := s.Memberships.Get(1)
	require.True(t, ok)
	assert.False(t, m.Suspended)
	assert.Empty(t, m.SuspensionReason)
	assert.Nil(t, m.SuspensionEndDate)

	suspended, err := s.Memberships.ListSuspended(ctx, 1)
	require.NoError(t, err)
	require.Len(t, suspended, 1)
	assert.Equal(t, int64(2), suspended[0].ID)
}

func TestNew_UnknownFeatureKept(t *testing.T) {
	t.Parallel()

	f, err := memstore.Parse([]byte("gyms:\n  - {id: 1, subdomain: a, features: [members, teleport]}\n"))
	require.NoError(t, err)
	s, err := memstore.New(f)
	require.NoError(t, err)

	gym, err := s.Gyms.GetBySubdomain(context.Background(), "a")
	require.NoError(t, err)
	assert.True(t, gym.Features.Enabled(feature.Members))
	assert.False(t, gym.Features.Enabled(feature.Reports))
	assert.Equal(t, []string{"members", "teleport"}, gym.Features.Strings())
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := memstore.Parse([]byte("gyms: [unclosed"))
	assert.ErrorIs(t, err, memstore.ErrInvalidFixtures)

	f, err := memstore.Parse([]byte("gyms:\n  - {id: 1, subdomain: a}\n  - {id: 1, subdomain: b}\n"))
	require.NoError(t, err)
	_, err = memstore.New(f)
	assert.ErrorIs(t, err, memstore.ErrInvalidFixtures)

	f, err = memstore.Parse([]byte("admins:\n  - {id: 1, name: Ann, email: ann@acme.test}\n"))
	require.NoError(t, err)
	_, err = memstore.New(f)
	assert.ErrorIs(t, err, memstore.ErrInvalidFixtures)

	f, err = memstore.Parse([]byte("admins:\n  - {id: 1, gym_id: 1, name: Ann, email: ann@acme.test, role: owner}\n"))
	require.NoError(t, err)
	_, err = memstore.New(f)
	assert.ErrorIs(t, err, memstore.ErrInvalidFixtures)

	_, err = memstore.Open("testdata/missing.yaml")
	assert.ErrorIs(t, err, memstore.ErrFixturesNotReadable)
}
