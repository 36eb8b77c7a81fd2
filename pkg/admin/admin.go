package admin

import (
	"context"
	"strconv"
	"strings"
)

// HeaderAdminID carries the numeric id of the calling admin.
const HeaderAdminID = "X-Admin-ID"

// Role is an admin's authority level.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// Status is an admin account state. Anything other than StatusActive blocks access.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Admin is a dashboard user. Regular admins belong to one gym;
// super admins have no gym.
type Admin struct {
	ID     int64  `json:"id"`
	GymID  *int64 `json:"gym_id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Status Status `json:"status"`
}

// Active reports whether the account may authenticate.
func (a *Admin) Active() bool {
	return a != nil && a.Status == StatusActive
}

// IsSuperAdmin reports whether a holds the super admin role.
func (a *Admin) IsSuperAdmin() bool {
	return a != nil && a.Role == RoleSuperAdmin
}

// BelongsTo reports whether a is assigned to gymID. Admins without a gym
// belong to none, super admins included.
func (a *Admin) BelongsTo(gymID int64) bool {
	return a != nil && a.GymID != nil && *a.GymID == gymID
}

// Provider loads admins from the persistence layer.
type Provider interface {
	// GetByID returns ErrAdminNotFound when no admin matches.
	GetByID(ctx context.Context, id int64) (*Admin, error)
}

// ParseID parses an admin id header value. Only positive integers are valid.
func ParseID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
