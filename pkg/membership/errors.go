package membership

import "errors"

var (
	ErrStoreNil       = errors.New("membership store cannot be nil")
	ErrAuditLoggerNil = errors.New("audit logger cannot be nil")
)
