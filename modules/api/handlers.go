package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/gymnexus/pkg/admin"
	"github.com/dmitrymomot/gymnexus/pkg/apierr"
	"github.com/dmitrymomot/gymnexus/pkg/audit"
	"github.com/dmitrymomot/gymnexus/pkg/logger"
	"github.com/dmitrymomot/gymnexus/pkg/membership"
	"github.com/dmitrymomot/gymnexus/pkg/tenant"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

type handlers struct {
	resolver    *tenant.Resolver
	gyms        GymStore
	memberships membership.Lister
	audit       *audit.Logger
	sweeper     Sweeper
	log         *slog.Logger
}

// getGym returns the public configuration of the resolved gym.
func (h *handlers) getGym(r *http.Request) response {
	gym, _ := tenant.FromContext(r.Context())
	return ok(newGymView(gym))
}

func (h *handlers) getMe(r *http.Request) response {
	a, _ := admin.FromContext(r.Context())
	return ok(newAdminView(a))
}

func (h *handlers) listSuspended(r *http.Request) response {
	gym, _ := tenant.FromContext(r.Context())

	list, err := h.memberships.ListSuspended(r.Context(), gym.ID)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to list suspended memberships", logger.Error(err))
		return fail(apierr.ErrInternal)
	}
	if list == nil {
		list = []membership.Membership{}
	}
	return ok(membershipsView{Memberships: list})
}

// listActivity returns the gym's activity log, newest first.
// Query: action (exact match), limit (1..200, default 50).
func (h *handlers) listActivity(r *http.Request) response {
	gym, _ := tenant.FromContext(r.Context())

	limit := defaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxActivityLimit {
			return fail(apierr.ErrBadRequest.WithMessage("limit must be between 1 and 200"))
		}
		limit = n
	}

	events, err := h.audit.Find(r.Context(), audit.Criteria{
		GymID:  gym.ID,
		Action: r.URL.Query().Get("action"),
		Limit:  limit,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to query activity logs", logger.Error(err))
		return fail(apierr.ErrInternal)
	}
	if events == nil {
		events = []audit.Event{}
	}
	return ok(map[string]any{"activity_logs": events})
}

// updateGymStatus suspends or reactivates a gym. The cached tenant is
// dropped so the next request sees the new status.
func (h *handlers) updateGymStatus(r *http.Request) response {
	ctx := r.Context()

	id, valid := admin.ParseID(chi.URLParam(r, "id"))
	if !valid {
		return fail(apierr.ErrBadRequest.WithMessage("invalid gym id"))
	}

	var req statusRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<10)).Decode(&req); err != nil || !req.Status.Valid() {
		return fail(apierr.ErrBadRequest.WithMessage(`status must be "active" or "suspended"`))
	}

	gym, err := h.gyms.UpdateStatus(ctx, id, req.Status)
	switch {
	case errors.Is(err, tenant.ErrTenantNotFound):
		return fail(apierr.ErrNotFound.WithMessage("gym not found"))
	case err != nil:
		h.log.ErrorContext(ctx, "failed to update gym status", logger.GymID(id), logger.Error(err))
		return fail(apierr.ErrInternal)
	}

	if err := h.resolver.Invalidate(ctx, gym); err != nil {
		h.log.WarnContext(ctx, "failed to invalidate cached gym", logger.GymID(id), logger.Error(err))
	}

	if err := h.audit.Log(ctx, audit.ActionGymStatusChanged,
		audit.WithGymID(gym.ID),
		audit.WithResource("gym", strconv.FormatInt(gym.ID, 10)),
		audit.WithDetail("subdomain", gym.Subdomain),
		audit.WithDetail("status", string(gym.Status)),
	); err != nil {
		h.log.ErrorContext(ctx, "failed to record gym status change", logger.GymID(id), logger.Error(err))
	}

	return ok(newGymView(gym))
}

func (h *handlers) runSweep(r *http.Request) response {
	res, err := h.sweeper.Sweep(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "manual suspension sweep failed", logger.Error(err))
		return fail(apierr.ErrInternal)
	}
	return ok(res)
}

// page is the target of the internal subdomain rewrite: /{subdomain}/rest.
func (h *handlers) page(r *http.Request) response {
	key := chi.URLParam(r, "subdomain")

	gym, err := h.resolver.BySubdomain(r.Context(), key)
	if err != nil {
		h.log.ErrorContext(r.Context(), "failed to load gym page", logger.Subdomain(key), logger.Error(err))
		return fail(apierr.ErrInternal)
	}
	if gym == nil {
		return fail(apierr.ErrNotFound.WithMessage("gym not found"))
	}

	return ok(pageView{Gym: newGymView(gym), Path: "/" + chi.URLParam(r, "*")})
}
