package membership

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/gymnexus/pkg/audit"
	"github.com/dmitrymomot/gymnexus/pkg/logger"
)

// ReactivationReason is recorded on every automatic reactivation.
const ReactivationReason = "Auto-reactivation (Suspension period ended)"

// AuditLogger records activity log entries. *audit.Logger implements it.
type AuditLogger interface {
	Log(ctx context.Context, action string, opts ...audit.EventOption) error
}

// Result summarizes one sweep.
type Result struct {
	Checked     int `json:"checked"`
	Reactivated int `json:"reactivated"`
	Failed      int `json:"failed"`
}

// Sweeper reactivates memberships whose suspension window has elapsed.
type Sweeper struct {
	store    Store
	audit    AuditLogger
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
	onSweep  func(Result, error)
}

// NewSweeper creates a sweeper.
func NewSweeper(store Store, auditLog AuditLogger, opts ...SweeperOption) (*Sweeper, error) {
	if store == nil {
		return nil, ErrStoreNil
	}
	if auditLog == nil {
		return nil, ErrAuditLoggerNil
	}

	options := &sweeperOptions{
		interval: DefaultSweepInterval,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Sweeper{
		store:    store,
		audit:    auditLog,
		interval: options.interval,
		logger:   options.logger,
		now:      options.now,
		onSweep:  options.onSweep,
	}, nil
}

// Run sweeps once immediately, then on every interval until ctx is done.
// Sweep errors are logged and never stop the loop.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "suspension sweep started",
		logger.Component("sweeper"),
		slog.Duration("interval", s.interval))

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("suspension sweep shutting down")
			return ctx.Err()
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Sweeper) runOnce(ctx context.Context) {
	if _, err := s.Sweep(ctx); err != nil {
		s.logger.ErrorContext(ctx, "suspension sweep failed", logger.Error(err))
	}
}

// Sweep reactivates every membership whose suspension has expired. A failure
// on one record is logged and counted; the rest are still processed.
// Only listing failures and cancellation are returned as errors.
func (s *Sweeper) Sweep(ctx context.Context) (res Result, err error) {
	began := time.Now()
	defer func() {
		if s.onSweep != nil {
			s.onSweep(res, err)
		}
	}()

	expired, err := s.store.ListExpiredSuspensions(ctx, s.now())
	if err != nil {
		return res, fmt.Errorf("list expired suspensions: %w", err)
	}
	res.Checked = len(expired)

	for _, m := range expired {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		changed, err := s.store.Reactivate(ctx, m.ID)
		if err != nil {
			res.Failed++
			s.logger.ErrorContext(ctx, "failed to reactivate membership",
				logger.MembershipID(m.ID),
				logger.GymID(m.GymID),
				logger.Error(err))
			continue
		}
		if !changed {
			// reactivated elsewhere since the list was read
			continue
		}
		res.Reactivated++

		if err := s.audit.Log(ctx, audit.ActionMemberActivated,
			audit.WithGymID(m.GymID),
			audit.WithActor(audit.SystemActor),
			audit.WithResource("membership", strconv.FormatInt(m.ID, 10)),
			audit.WithDetail("name", m.MemberName),
			audit.WithDetail("status", "Active"),
			audit.WithDetail("reason", ReactivationReason),
		); err != nil {
			s.logger.ErrorContext(ctx, "failed to record membership reactivation",
				logger.MembershipID(m.ID),
				logger.Error(err))
		}
	}

	s.logger.InfoContext(ctx, "suspension sweep finished",
		slog.Int("checked", res.Checked),
		slog.Int("reactivated", res.Reactivated),
		slog.Int("failed", res.Failed),
		logger.Duration(time.Since(began)))

	return res, nil
}
