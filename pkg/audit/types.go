package audit

import (
	"fmt"
	"time"
)

// Actions recorded in the activity log.
const (
	ActionMemberActivated  = "MEMBER_ACTIVATED"
	ActionGymStatusChanged = "GYM_STATUS_CHANGED"
)

// SystemActor attributes events raised by background jobs.
const SystemActor = "System"

// Event is a single activity log entry.
type Event struct {
	ID         string         `json:"id"`
	GymID      int64          `json:"gym_id,omitempty"` // 0 for platform-wide events
	ActorName  string         `json:"admin_name"`
	Action     string         `json:"action"`
	Resource   string         `json:"resource,omitempty"`
	ResourceID string         `json:"resource_id,omitempty"`
	Details    map[string]any `json:"details,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Validate checks required fields.
func (e *Event) Validate() error {
	if e.Action == "" {
		return fmt.Errorf("%w: action is required", ErrEventValidation)
	}
	if e.ActorName == "" {
		return fmt.Errorf("%w: actor is required", ErrEventValidation)
	}
	return nil
}

// EventOption sets fields on an Event before it is stored.
type EventOption func(*Event)

// Criteria filters stored events. Zero values match everything.
type Criteria struct {
	GymID      int64
	Action     string
	ResourceID string
	Limit      int
}

// Match reports whether e satisfies c, ignoring Limit.
func (c Criteria) Match(e Event) bool {
	if c.GymID != 0 && e.GymID != c.GymID {
		return false
	}
	if c.Action != "" && e.Action != c.Action {
		return false
	}
	if c.ResourceID != "" && e.ResourceID != c.ResourceID {
		return false
	}
	return true
}
