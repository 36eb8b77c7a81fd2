package tenant

import (
	"context"
	"slices"
	"time"

	"github.com/dmitrymomot/gymnexus/pkg/feature"
)

// Status is the lifecycle state of a gym.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusActive || s == StatusSuspended
}

// Gym is the tenant record: everything a request needs to know about the
// gym it is scoped to.
type Gym struct {
	ID             int64       `json:"id"`
	Subdomain      string      `json:"subdomain"`
	Name           string      `json:"name"`
	LogoURL        string      `json:"logo_url,omitempty"`
	PrimaryColor   string      `json:"primary_color,omitempty"`
	SecondaryColor string      `json:"secondary_color,omitempty"`
	Status         Status      `json:"status"`
	Features       feature.Set `json:"features"`
	CreatedAt      time.Time   `json:"created_at"`
}

// Active reports whether the gym may serve requests.
func (g *Gym) Active() bool {
	return g != nil && g.Status == StatusActive
}

// Clone returns a deep copy so request contexts never share tenant state.
func (g *Gym) Clone() *Gym {
	if g == nil {
		return nil
	}
	cp := *g
	if g.Features != nil {
		cp.Features = slices.Clone(g.Features)
	}
	return &cp
}

// Provider loads gyms from the persistence layer.
// Both methods return ErrTenantNotFound when no gym matches.
type Provider interface {
	GetBySubdomain(ctx context.Context, subdomain string) (*Gym, error)
	GetByID(ctx context.Context, id int64) (*Gym, error)
}
