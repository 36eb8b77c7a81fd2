package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrymomot/gymnexus/pkg/feature"
	"github.com/dmitrymomot/gymnexus/pkg/pg"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

const gymColumns = `id, subdomain, name, logo_url, primary_color, secondary_color, status, features, created_at`

// Gyms reads and updates gym records.
type Gyms struct {
	db DB
}

// NewGyms creates a gym store.
func NewGyms(db DB) *Gyms {
	return &Gyms{db: db}
}

// GetBySubdomain implements tenant.Provider. Matching is case-insensitive.
func (s *Gyms) GetBySubdomain(ctx context.Context, subdomain string) (*tenant.Gym, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+gymColumns+` FROM gyms WHERE lower(subdomain) = lower($1)`,
		subdomain,
	)
	gym, err := scanGym(row)
	if err != nil {
		return nil, fmt.Errorf("get gym by subdomain: %w", err)
	}
	return gym, nil
}

// GetByID implements tenant.Provider.
func (s *Gyms) GetByID(ctx context.Context, id int64) (*tenant.Gym, error) {
	row := s.db.QueryRow(ctx, `SELECT `+gymColumns+` FROM gyms WHERE id = $1`, id)
	gym, err := scanGym(row)
	if err != nil {
		return nil, fmt.Errorf("get gym by id: %w", err)
	}
	return gym, nil
}

// UpdateStatus sets the gym status and returns the updated record.
func (s *Gyms) UpdateStatus(ctx context.Context, id int64, status tenant.Status) (*tenant.Gym, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE gyms SET status = $2, updated_at = now() WHERE id = $1 RETURNING `+gymColumns,
		id, string(status),
	)
	gym, err := scanGym(row)
	if err != nil {
		return nil, fmt.Errorf("update gym status: %w", err)
	}
	return gym, nil
}

// Create inserts gym and fills in its id and creation time.
func (s *Gyms) Create(ctx context.Context, gym *tenant.Gym) error {
	status := gym.Status
	if status == "" {
		status = tenant.StatusActive
	}
	err := s.db.QueryRow(ctx,
		`INSERT INTO gyms (subdomain, name, logo_url, primary_color, secondary_color, status, features)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		strings.ToLower(gym.Subdomain), gym.Name, gym.LogoURL, gym.PrimaryColor, gym.SecondaryColor,
		string(status), gym.Features.Strings(),
	).Scan(&gym.ID, &gym.CreatedAt)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return fmt.Errorf("create gym %q: %w", gym.Subdomain, ErrSubdomainTaken)
		}
		return fmt.Errorf("create gym: %w", err)
	}
	gym.Status = status
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGym(row rowScanner) (*tenant.Gym, error) {
	var (
		gym      tenant.Gym
		status   string
		features []string
	)
	err := row.Scan(
		&gym.ID,
		&gym.Subdomain,
		&gym.Name,
		&gym.LogoURL,
		&gym.PrimaryColor,
		&gym.SecondaryColor,
		&status,
		&features,
		&gym.CreatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, tenant.ErrTenantNotFound
		}
		return nil, err
	}

	gym.Status = tenant.Status(status)
	gym.Features = feature.FromStored(features)
	return &gym, nil
}
