package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campushq/backoffice/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", apperrors.NewResourceNotFoundError("banner not found"), http.StatusNotFound, "RES_001"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, "AUTHZ_001"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "AUTH_001"},
		{"account disabled", apperrors.ErrAccountDisabled, http.StatusUnauthorized, "AUTH_005"},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized, "AUTH_003"},
		{"hidden faculty", apperrors.ErrFacultyHidden, http.StatusConflict, "RES_003"},
		{"validation", apperrors.NewValidationError("name too long"), http.StatusBadRequest, "VAL_001"},
		{"document limit", apperrors.ErrDocumentLimitExceeded, http.StatusBadRequest, "VAL_001"},
		{"document index", apperrors.ErrDocumentIndexOutOfRange, http.StatusBadRequest, "VAL_001"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "SRV_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
			assert.Contains(t, w.Body.String(), `"success":false`)
		})
	}
}

func TestHandleAPIErrorKeepsWrappedMessage(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, apperrors.NewResourceNotFoundError("gallery item not found"))

	assert.Contains(t, w.Body.String(), "gallery item not found")
}

func TestHandleBindingError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleBindingError(c, errors.New("missing field"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_002")
}
