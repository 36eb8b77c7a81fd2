package redis

import "errors"

var (
	// ErrMissingURL means REDIS_URL is unset; the tenant cache then stays in memory.
	ErrMissingURL = errors.New("redis: connection url is not set")
	ErrInvalidURL = errors.New("redis: invalid connection url")
	ErrNotReady   = errors.New("redis: server not reachable")
	ErrUnhealthy  = errors.New("redis: readiness check failed")
)
