package api

import (
	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/membership"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

// gymView is the public gym configuration. Features is null for gyms
// without feature gating.
type gymView struct {
	ID             int64         `json:"id"`
	Subdomain      string        `json:"subdomain"`
	Name           string        `json:"name"`
	LogoURL        string        `json:"logo_url,omitempty"`
	PrimaryColor   string        `json:"primary_color,omitempty"`
	SecondaryColor string        `json:"secondary_color,omitempty"`
	Status         tenant.Status `json:"status"`
	Features       []string      `json:"features"`
}

func newGymView(g *tenant.Gym) gymView {
	return gymView{
		ID:             g.ID,
		Subdomain:      g.Subdomain,
		Name:           g.Name,
		LogoURL:        g.LogoURL,
		PrimaryColor:   g.PrimaryColor,
		SecondaryColor: g.SecondaryColor,
		Status:         g.Status,
		Features:       g.Features.Strings(),
	}
}

type adminView struct {
	ID    int64      `json:"id"`
	GymID *int64     `json:"gym_id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  admin.Role `json:"role"`
}

func newAdminView(a *admin.Admin) adminView {
	return adminView{ID: a.ID, GymID: a.GymID, Name: a.Name, Email: a.Email, Role: a.Role}
}

type membershipsView struct {
	Memberships []membership.Membership `json:"memberships"`
}

type pageView struct {
	Gym  gymView `json:"gym"`
	Path string  `json:"path"`
}

type statusRequest struct {
	Status tenant.Status `json:"status"`
}
