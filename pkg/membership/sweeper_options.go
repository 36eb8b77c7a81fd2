package membership

import (
	"log/slog"
	"time"
)

// DefaultSweepInterval is the pause between sweeps.
const DefaultSweepInterval = time.Hour

// SweeperOption is a functional option for configuring a Sweeper.
type SweeperOption func(*sweeperOptions)

type sweeperOptions struct {
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time
	onSweep  func(Result, error)
}

// WithInterval sets how often Run sweeps.
func WithInterval(d time.Duration) SweeperOption {
	return func(o *sweeperOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithLogger sets the sweeper logger.
func WithLogger(logger *slog.Logger) SweeperOption {
	return func(o *sweeperOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithClock replaces time.Now when selecting expired suspensions.
func WithClock(now func() time.Time) SweeperOption {
	return func(o *sweeperOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithSweepHook is called after every sweep with its outcome.
func WithSweepHook(fn func(Result, error)) SweeperOption {
	return func(o *sweeperOptions) {
		o.onSweep = fn
	}
}
