package audit

// WithResource sets the resource type and ID.
func WithResource(resource, id string) EventOption {
	return func(e *Event) {
		e.Resource = resource
		e.ResourceID = id
	}
}

// WithDetail adds a key to the free-form details payload.
func WithDetail(key string, value any) EventOption {
	return func(e *Event) {
		if e.Details == nil {
			e.Details = make(map[string]any)
		}
		e.Details[key] = value
	}
}

// WithGymID overrides the gym taken from context.
func WithGymID(id int64) EventOption {
	return func(e *Event) {
		e.GymID = id
	}
}

// WithActor overrides the actor taken from context.
func WithActor(name string) EventOption {
	return func(e *Event) {
		e.ActorName = name
	}
}
