package audit

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Storage persists activity log entries.
type Storage interface {
	Store(ctx context.Context, event Event) error
	Query(ctx context.Context, criteria Criteria) ([]Event, error)
}

// Logger builds events from context and options and hands them to Storage.
type Logger struct {
	storage            Storage
	gymIDExtractor     func(context.Context) (int64, bool)
	actorExtractor     func(context.Context) (string, bool)
	requestIDExtractor func(context.Context) (string, bool)
	now                func() time.Time
}

// NewLogger creates an audit logger. Panics if storage is nil.
func NewLogger(storage Storage, opts ...Option) *Logger {
	if storage == nil {
		panic("audit: storage cannot be nil")
	}

	l := &Logger{
		storage: storage,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Log records action. Context extractors run first; opts override them.
// Events without an actor are attributed to SystemActor.
func (l *Logger) Log(ctx context.Context, action string, opts ...EventOption) error {
	event := l.eventFromContext(ctx)
	event.ID = uuid.New().String()
	event.Action = action
	event.CreatedAt = l.now().UTC()

	for _, opt := range opts {
		opt(&event)
	}
	if event.ActorName == "" {
		event.ActorName = SystemActor
	}

	if err := event.Validate(); err != nil {
		return err
	}
	if err := l.storage.Store(ctx, event); err != nil {
		return errors.Join(ErrStorageFailed, err)
	}
	return nil
}

// Find returns stored events matching criteria, newest first.
func (l *Logger) Find(ctx context.Context, criteria Criteria) ([]Event, error) {
	return l.storage.Query(ctx, criteria)
}

func (l *Logger) eventFromContext(ctx context.Context) Event {
	event := Event{}

	if l.gymIDExtractor != nil {
		if id, ok := l.gymIDExtractor(ctx); ok {
			event.GymID = id
		}
	}

	if l.actorExtractor != nil {
		if name, ok := l.actorExtractor(ctx); ok {
			event.ActorName = name
		}
	}

	if l.requestIDExtractor != nil {
		if id, ok := l.requestIDExtractor(ctx); ok {
			event.RequestID = id
		}
	}

	return event
}
