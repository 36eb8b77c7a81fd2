package memstore

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/membership"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

// Store bundles the in-memory collaborators seeded from one Fixtures value.
type Store struct {
	Gyms        *Gyms
	Admins      *Admins
	Memberships *Memberships
}

// New builds a Store from fixtures. Ids must be unique per collection.
func New(f *Fixtures) (*Store, error) {
	s := &Store{
		Gyms:        &Gyms{byID: map[int64]*tenant.Gym{}},
		Admins:      &Admins{byID: map[int64]*admin.Admin{}},
		Memberships: &Memberships{byID: map[int64]*membership.Membership{}},
	}
	if f == nil {
		return s, nil
	}

	for _, gf := range f.Gyms {
		gym, err := gf.gym()
		if err != nil {
			return nil, fmt.Errorf("%w: gym %d: %w", ErrInvalidFixtures, gf.ID, err)
		}
		if err := s.Gyms.Add(gym); err != nil {
			return nil, err
		}
	}
	for _, af := range f.Admins {
		a, err := af.admin()
		if err != nil {
			return nil, fmt.Errorf("%w: admin %d: %w", ErrInvalidFixtures, af.ID, err)
		}
		if err := s.Admins.Add(a); err != nil {
			return nil, err
		}
	}
	for _, mf := range f.Memberships {
		if err := s.Memberships.Add(mf.membership()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Open loads a fixtures file into a new Store.
func Open(path string) (*Store, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return New(f)
}

// Gyms is an in-memory tenant.Provider.
type Gyms struct {
	mu   sync.RWMutex
	byID map[int64]*tenant.Gym
}

// Add stores a copy of gym.
func (s *Gyms) Add(gym *tenant.Gym) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[gym.ID]; ok || gym.ID <= 0 {
		return fmt.Errorf("%w: duplicate or invalid gym id %d", ErrInvalidFixtures, gym.ID)
	}
	for _, g := range s.byID {
		if strings.EqualFold(g.Subdomain, gym.Subdomain) {
			return fmt.Errorf("%w: duplicate subdomain %q", ErrInvalidFixtures, gym.Subdomain)
		}
	}
	s.byID[gym.ID] = gym.Clone()
	return nil
}

func (s *Gyms) GetBySubdomain(_ context.Context, subdomain string) (*tenant.Gym, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.byID {
		if strings.EqualFold(g.Subdomain, subdomain) {
			return g.Clone(), nil
		}
	}
	return nil, tenant.ErrTenantNotFound
}

func (s *Gyms) GetByID(_ context.Context, id int64) (*tenant.Gym, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.byID[id]
	if !ok {
		return nil, tenant.ErrTenantNotFound
	}
	return g.Clone(), nil
}

// UpdateStatus sets the gym status and returns the updated record.
func (s *Gyms) UpdateStatus(_ context.Context, id int64, status tenant.Status) (*tenant.Gym, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.byID[id]
	if !ok {
		return nil, tenant.ErrTenantNotFound
	}
	g.Status = status
	return g.Clone(), nil
}

// Admins is an in-memory admin.Provider.
type Admins struct {
	mu   sync.RWMutex
	byID map[int64]*admin.Admin
}

// Add stores a copy of a.
func (s *Admins) Add(a *admin.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[a.ID]; ok || a.ID <= 0 {
		return fmt.Errorf("%w: duplicate or invalid admin id %d", ErrInvalidFixtures, a.ID)
	}
	cp := *a
	s.byID[a.ID] = &cp
	return nil
}

func (s *Admins) GetByID(_ context.Context, id int64) (*admin.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.byID[id]
	if !ok {
		return nil, admin.ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

// Memberships is an in-memory membership.Store and membership.Lister.
type Memberships struct {
	mu   sync.Mutex
	byID map[int64]*membership.Membership
}

// Add stores m.
func (s *Memberships) Add(m membership.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[m.ID]; ok || m.ID <= 0 {
		return fmt.Errorf("%w: duplicate or invalid membership id %d", ErrInvalidFixtures, m.ID)
	}
	s.byID[m.ID] = &m
	return nil
}

func (s *Memberships) ListExpiredSuspensions(_ context.Context, now time.Time) ([]membership.Membership, error) {
	return s.collect(func(m *membership.Membership) bool { return m.Expired(now) }), nil
}

func (s *Memberships) Reactivate(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.byID[id]
	if !ok || !m.Suspended {
		return false, nil
	}
	m.Suspended = false
	m.SuspensionReason = ""
	m.SuspensionEndDate = nil
	return true, nil
}

func (s *Memberships) ListSuspended(_ context.Context, gymID int64) ([]membership.Membership, error) {
	return s.collect(func(m *membership.Membership) bool { return m.GymID == gymID && m.Suspended }), nil
}

// Get returns a membership by id.
func (s *Memberships) Get(id int64) (membership.Membership, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.byID[id]
	if !ok {
		return membership.Membership{}, false
	}
	return *m, true
}

func (s *Memberships) collect(match func(*membership.Membership) bool) []membership.Membership {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]membership.Membership, 0)
	for _, id := range slices.Sorted(maps.Keys(s.byID)) {
		if m := s.byID[id]; match(m) {
			out = append(out, *m)
		}
	}
	return out
}
