package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/gymnexus/pkg/membership"
)

const membershipColumns = `id, gym_id, member_name, suspended, COALESCE(suspension_reason, ''), suspension_end_date`

// Memberships persists member suspension windows.
type Memberships struct {
	db DB
}

// NewMemberships creates a membership store.
func NewMemberships(db DB) *Memberships {
	return &Memberships{db: db}
}

// ListExpiredSuspensions implements membership.Store.
func (s *Memberships) ListExpiredSuspensions(ctx context.Context, now time.Time) ([]membership.Membership, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+membershipColumns+` FROM memberships
		 WHERE suspended AND suspension_end_date IS NOT NULL AND suspension_end_date <= $1
		 ORDER BY id`,
		now,
	)
	if err != nil {
		return nil, fmt.Errorf("list expired suspensions: %w", err)
	}
	return collectMemberships(rows)
}

// Reactivate implements membership.Store. The update only matches rows that
// are still suspended.
func (s *Memberships) Reactivate(ctx context.Context, id int64) (bool, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE memberships
		 SET suspended = false, suspension_reason = NULL, suspension_end_date = NULL, updated_at = now()
		 WHERE id = $1 AND suspended`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("reactivate membership %d: %w", id, err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListSuspended implements membership.Lister.
func (s *Memberships) ListSuspended(ctx context.Context, gymID int64) ([]membership.Membership, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE gym_id = $1 AND suspended ORDER BY id`,
		gymID,
	)
	if err != nil {
		return nil, fmt.Errorf("list suspended memberships: %w", err)
	}
	return collectMemberships(rows)
}

// Create inserts m and fills in its id.
func (s *Memberships) Create(ctx context.Context, m *membership.Membership) error {
	var reason *string
	if m.SuspensionReason != "" {
		reason = &m.SuspensionReason
	}
	err := s.db.QueryRow(ctx,
		`INSERT INTO memberships (gym_id, member_name, suspended, suspension_reason, suspension_end_date)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		m.GymID, m.MemberName, m.Suspended, reason, m.SuspensionEndDate,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("create membership: %w", err)
	}
	return nil
}

func collectMemberships(rows pgx.Rows) ([]membership.Membership, error) {
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (membership.Membership, error) {
		var m membership.Membership
		err := row.Scan(&m.ID, &m.GymID, &m.MemberName, &m.Suspended, &m.SuspensionReason, &m.SuspensionEndDate)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan memberships: %w", err)
	}
	return out, nil
}
