package audit

import "errors"

var (
	// ErrEventValidation indicates event validation failed
	ErrEventValidation = errors.New("event validation failed")

	// ErrStorageFailed indicates the storage backend rejected the event
	ErrStorageFailed = errors.New("audit storage failed")
)
