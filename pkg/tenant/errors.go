package tenant

import "errors"

var (
	// ErrTenantNotFound is returned by providers when no gym matches.
	ErrTenantNotFound = errors.New("tenant not found")

	// ErrLookupFailed wraps persistence failures during resolution.
	ErrLookupFailed = errors.New("tenant lookup failed")
)
