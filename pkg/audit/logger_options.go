package audit

import (
	"context"
	"time"
)

// Option configures Logger behavior during initialization.
type Option func(*Logger)

// Context extractors populate events from the request context.
// A false result leaves the corresponding field empty.

func WithGymIDExtractor(fn func(context.Context) (int64, bool)) Option {
	return func(l *Logger) {
		l.gymIDExtractor = fn
	}
}

func WithActorExtractor(fn func(context.Context) (string, bool)) Option {
	return func(l *Logger) {
		l.actorExtractor = fn
	}
}

func WithRequestIDExtractor(fn func(context.Context) (string, bool)) Option {
	return func(l *Logger) {
		l.requestIDExtractor = fn
	}
}

// WithClock replaces time.Now for event timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		if now != nil {
			l.now = now
		}
	}
}
