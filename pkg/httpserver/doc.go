// Package httpserver runs the gymnexus HTTP listener with graceful shutdown
// and serves liveness and readiness probes.
//
//	srv := httpserver.New(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run blocks until ctx is cancelled, then drains in-flight requests for at
// most Config.ShutdownTimeout. Signal handling belongs to the caller
// (signal.NotifyContext in cmd/gymnexus).
//
// LivenessHandler always reports "alive". ReadinessHandler runs named
// dependency checks (PostgreSQL, Redis) and reports 503 if any fails.
package httpserver
