package store

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/pg"
)

// Admins reads dashboard administrators.
type Admins struct {
	db DB
}

// NewAdmins creates an admin store.
func NewAdmins(db DB) *Admins {
	return &Admins{db: db}
}

// GetByID implements admin.Provider.
func (s *Admins) GetByID(ctx context.Context, id int64) (*admin.Admin, error) {
	var (
		a      admin.Admin
		role   string
		status string
	)
	err := s.db.QueryRow(ctx,
		`SELECT id, gym_id, name, email, role, status FROM admins WHERE id = $1`, id,
	).Scan(&a.ID, &a.GymID, &a.Name, &a.Email, &role, &status)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	a.Role = admin.Role(role)
	a.Status = admin.Status(status)
	return &a, nil
}

// Create inserts a and fills in its id.
func (s *Admins) Create(ctx context.Context, a *admin.Admin) error {
	if a.Status == "" {
		a.Status = admin.StatusActive
	}
	if a.Role == "" {
		a.Role = admin.RoleAdmin
	}
	err := s.db.QueryRow(ctx,
		`INSERT INTO admins (gym_id, name, email, role, status) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		a.GymID, a.Name, a.Email, string(a.Role), string(a.Status),
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
