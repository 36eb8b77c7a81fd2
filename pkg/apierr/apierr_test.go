package apierr_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gymnexus/pkg/apierr"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"tenant missing", apierr.ErrTenantContextMissing, http.StatusBadRequest, "TenantContextMissing"},
		{"tenant suspended", apierr.ErrTenantSuspended, http.StatusForbidden, "TenantSuspended"},
		{"unauthenticated", apierr.ErrUnauthenticated, http.StatusUnauthorized, "Unauthenticated"},
		{"cross tenant", apierr.ErrCrossTenantAccess, http.StatusForbidden, "CrossTenantAccess"},
		{"forbidden", apierr.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"feature disabled", apierr.ErrFeatureDisabled, http.StatusForbidden, "FeatureDisabled"},
		{"authentication failure", apierr.ErrAuthentication, http.StatusInternalServerError, "AuthenticationError"},
		{"wrapped api error", fmt.Errorf("guard: %w", apierr.ErrNotFound), http.StatusNotFound, "NotFound"},
		{"plain error", errors.New("db is down"), http.StatusInternalServerError, "InternalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			apierr.Write(w, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var body apierr.Body
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body.Error)
			assert.NotEmpty(t, body.Message)
			assert.NotContains(t, body.Message, "db is down")
		})
	}
}

func TestError_Is(t *testing.T) {
	t.Parallel()

	custom := apierr.ErrForbidden.WithMessage("admin is inactive")
	assert.ErrorIs(t, custom, apierr.ErrForbidden)
	assert.NotErrorIs(t, custom, apierr.ErrUnauthenticated)
	assert.Equal(t, "admin is inactive", custom.Message)
	assert.Equal(t, "super admin access is required", apierr.ErrForbidden.Message)
	assert.Equal(t, http.StatusForbidden, apierr.StatusOf(custom))
	assert.Equal(t, http.StatusInternalServerError, apierr.StatusOf(errors.New("x")))
}
