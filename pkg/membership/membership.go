package membership

import (
	"context"
	"time"
)

// Membership is the suspension window of one gym member.
type Membership struct {
	ID                int64      `json:"id"`
	GymID             int64      `json:"gym_id"`
	MemberName        string     `json:"member_name"`
	Suspended         bool       `json:"suspended"`
	SuspensionReason  string     `json:"suspension_reason,omitempty"`
	SuspensionEndDate *time.Time `json:"suspension_end_date,omitempty"`
}

// Expired reports whether m is suspended with an end date at or before now.
// Suspensions without an end date never expire on their own.
func (m *Membership) Expired(now time.Time) bool {
	return m.Suspended && m.SuspensionEndDate != nil && !m.SuspensionEndDate.After(now)
}

// Store is the persistence contract used by the sweep.
type Store interface {
	// ListExpiredSuspensions returns memberships with suspended = true and
	// suspension_end_date <= now, across all gyms.
	ListExpiredSuspensions(ctx context.Context, now time.Time) ([]Membership, error)

	// Reactivate clears the suspended flag, reason and end date, but only
	// while the membership is still suspended. It reports whether a record
	// changed.
	Reactivate(ctx context.Context, id int64) (bool, error)
}

// Lister reads the memberships of one gym.
type Lister interface {
	ListSuspended(ctx context.Context, gymID int64) ([]Membership, error)
}
