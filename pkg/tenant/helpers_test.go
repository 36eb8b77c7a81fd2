package tenant_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/gymnexus/pkg/feature"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) GetBySubdomain(ctx context.Context, subdomain string) (*tenant.Gym, error) {
	args := m.Called(ctx, subdomain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Gym), args.Error(1)
}

func (m *mockProvider) GetByID(ctx context.Context, id int64) (*tenant.Gym, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tenant.Gym), args.Error(1)
}

func newGym(id int64, subdomain string) *tenant.Gym {
	return &tenant.Gym{
		ID:        id,
		Subdomain: subdomain,
		Name:      subdomain + " fitness",
		Status:    tenant.StatusActive,
		Features:  feature.Of(feature.Members),
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
