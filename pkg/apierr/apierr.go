package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Error is an API error with a fixed HTTP status and a stable kind.
type Error struct {
	Status  int    // HTTP status code
	Kind    string // Machine-readable kind, rendered as "error"
	Message string // Human-readable message
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Kind + ": " + e.Message
}

// Is matches errors of the same kind so callers can use errors.Is with the
// package-level values even when the message was customised.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// WithMessage returns a copy of e carrying a different message.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// Guard failures.
var (
	ErrTenantContextMissing = &Error{Status: http.StatusBadRequest, Kind: "TenantContextMissing", Message: "gym context is required for this request"}
	ErrTenantSuspended      = &Error{Status: http.StatusForbidden, Kind: "TenantSuspended", Message: "this gym is suspended"}
	ErrUnauthenticated      = &Error{Status: http.StatusUnauthorized, Kind: "Unauthenticated", Message: "admin authentication is required"}
	ErrCrossTenantAccess    = &Error{Status: http.StatusForbidden, Kind: "CrossTenantAccess", Message: "admin does not belong to this gym"}
	ErrForbidden            = &Error{Status: http.StatusForbidden, Kind: "Forbidden", Message: "super admin access is required"}
	ErrFeatureDisabled      = &Error{Status: http.StatusForbidden, Kind: "FeatureDisabled", Message: "this feature is not enabled for the gym"}
	ErrAuthentication       = &Error{Status: http.StatusInternalServerError, Kind: "AuthenticationError", Message: "failed to authenticate request"}
)

// Generic API failures.
var (
	ErrBadRequest = &Error{Status: http.StatusBadRequest, Kind: "BadRequest", Message: "malformed request"}
	ErrNotFound   = &Error{Status: http.StatusNotFound, Kind: "NotFound", Message: "resource not found"}
	ErrInternal   = &Error{Status: http.StatusInternalServerError, Kind: "InternalError", Message: "internal server error"}
)

// Body is the JSON shape of every error response.
type Body struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Write renders err as JSON. Errors that are not *Error render as ErrInternal
// so internal details never reach the client.
func Write(w http.ResponseWriter, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = ErrInternal
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(apiErr.Status)
	_ = json.NewEncoder(w).Encode(Body{Error: apiErr.Kind, Message: apiErr.Message})
}

// StatusOf returns the HTTP status for err, 500 for unknown errors.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}
