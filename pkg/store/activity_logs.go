package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/gymnexus/pkg/audit"
)

// ActivityLogs implements audit.Storage on the activity_logs table.
type ActivityLogs struct {
	db DB
}

// NewActivityLogs creates an activity log store.
func NewActivityLogs(db DB) *ActivityLogs {
	return &ActivityLogs{db: db}
}

// Store appends one event.
func (s *ActivityLogs) Store(ctx context.Context, e audit.Event) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO activity_logs (id, gym_id, admin_name, action, resource, resource_id, details, request_id, created_at)
		 VALUES ($1::uuid, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, nullableID(e.GymID), e.ActorName, e.Action, e.Resource, e.ResourceID, e.Details, e.RequestID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("store activity log: %w", err)
	}
	return nil
}

// Query returns matching events, newest first.
func (s *ActivityLogs) Query(ctx context.Context, c audit.Criteria) ([]audit.Event, error) {
	var (
		where []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		where = append(where, strings.Replace(cond, "?", "$"+strconv.Itoa(len(args)), 1))
	}
	if c.GymID != 0 {
		add("gym_id = ?", c.GymID)
	}
	if c.Action != "" {
		add("action = ?", c.Action)
	}
	if c.ResourceID != "" {
		add("resource_id = ?", c.ResourceID)
	}

	q := `SELECT id::text, COALESCE(gym_id, 0), admin_name, action, resource, resource_id, details, request_id, created_at
	      FROM activity_logs`
	if len(where) > 0 {
		q += " WHERE " + strings.Join(where, " AND ")
	}
	q += " ORDER BY created_at DESC, id"
	if c.Limit > 0 {
		args = append(args, c.Limit)
		q += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := s.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query activity logs: %w", err)
	}
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (audit.Event, error) {
		var e audit.Event
		err := row.Scan(&e.ID, &e.GymID, &e.ActorName, &e.Action, &e.Resource, &e.ResourceID, &e.Details, &e.RequestID, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan activity logs: %w", err)
	}
	return events, nil
}
