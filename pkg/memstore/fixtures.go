package memstore

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/feature"
	"github.com/dmitrymomot/gymnexus/pkg/membership"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

// Fixtures is the YAML seed format for development and tests.
//
//	gyms:
//	  - id: 1
//	    subdomain: acme
//	    name: Acme Fitness
//	    features: [members, classes]  # omit for unrestricted
//	admins:
//	  - {id: 1, gym_id: 1, name: Ann, email: ann@acme.test}
//	  - {id: 2, name: Root, email: root@gym.test, role: super_admin}
//	memberships:
//	  - id: 1
//	    gym_id: 1
//	    member_name: Bob
//	    suspended: true
//	    suspension_end_date: 2024-01-31T00:00:00Z
type Fixtures struct {
	Gyms        []GymFixture        `yaml:"gyms"`
	Admins      []AdminFixture      `yaml:"admins"`
	Memberships []MembershipFixture `yaml:"memberships"`
}

type GymFixture struct {
	ID             int64     `yaml:"id"`
	Subdomain      string    `yaml:"subdomain"`
	Name           string    `yaml:"name"`
	LogoURL        string    `yaml:"logo_url"`
	PrimaryColor   string    `yaml:"primary_color"`
	SecondaryColor string    `yaml:"secondary_color"`
	Status         string    `yaml:"status"`
	Features       []string  `yaml:"features"`
	CreatedAt      time.Time `yaml:"created_at"`
}

type AdminFixture struct {
	ID     int64  `yaml:"id"`
	GymID  *int64 `yaml:"gym_id"`
	Name   string `yaml:"name"`
	Email  string `yaml:"email"`
	Role   string `yaml:"role"`
	Status string `yaml:"status"`
}

type MembershipFixture struct {
	ID                int64      `yaml:"id"`
	GymID             int64      `yaml:"gym_id"`
	MemberName        string     `yaml:"member_name"`
	Suspended         bool       `yaml:"suspended"`
	SuspensionReason  string     `yaml:"suspension_reason"`
	SuspensionEndDate *time.Time `yaml:"suspension_end_date"`
}

// LoadFile reads and parses a fixtures file.
func LoadFile(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFixturesNotReadable, err)
	}
	return Parse(data)
}

// Parse decodes fixtures from YAML.
func Parse(data []byte) (*Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Join(ErrInvalidFixtures, err)
	}
	return &f, nil
}

func (g GymFixture) gym() (*tenant.Gym, error) {
	status := tenant.Status(g.Status)
	if status == "" {
		status = tenant.StatusActive
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown status %q", g.Status)
	}
	if g.Subdomain == "" {
		return nil, errors.New("subdomain is required")
	}
	return &tenant.Gym{
		ID:             g.ID,
		Subdomain:      g.Subdomain,
		Name:           g.Name,
		LogoURL:        g.LogoURL,
		PrimaryColor:   g.PrimaryColor,
		SecondaryColor: g.SecondaryColor,
		Status:         status,
		Features:       feature.FromStored(g.Features),
		CreatedAt:      g.CreatedAt,
	}, nil
}

func (a AdminFixture) admin() (*admin.Admin, error) {
	role := admin.Role(a.Role)
	if role == "" {
		role = admin.RoleAdmin
	}
	if role != admin.RoleAdmin && role != admin.RoleSuperAdmin {
		return nil, fmt.Errorf("unknown role %q", a.Role)
	}
	if role == admin.RoleAdmin && a.GymID == nil {
		return nil, errors.New("gym_id is required for role admin")
	}
	status := admin.Status(a.Status)
	if status == "" {
		status = admin.StatusActive
	}
	return &admin.Admin{
		ID:     a.ID,
		GymID:  a.GymID,
		Name:   a.Name,
		Email:  a.Email,
		Role:   role,
		Status: status,
	}, nil
}

func (m MembershipFixture) membership() membership.Membership {
	return membership.Membership{
		ID:                m.ID,
		GymID:             m.GymID,
		MemberName:        m.MemberName,
		Suspended:         m.Suspended,
		SuspensionReason:  m.SuspensionReason,
		SuspensionEndDate: m.SuspensionEndDate,
	}
}
