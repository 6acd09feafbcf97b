package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubStore allows everything for the Administrator role name and otherwise
// answers from a fixed grant set
type stubStore struct {
	grants map[string]bool // key: pagePath + "|" + action
}

func (s *stubStore) Check(ctx context.Context, roleID int64, roleName, pagePath string, action models.Action) error {
	if roleName == models.AdministratorRole {
		return nil
	}
	if s.grants[pagePath+"|"+string(action)] {
		return nil
	}
	return apperrors.ErrPermissionDenied
}

func permissionTestRouter(store PermissionStore, roleID interface{}, roleName interface{}) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if roleID != nil {
			c.Set(ContextRoleID, roleID)
		}
		if roleName != nil {
			c.Set(ContextRoleName, roleName)
		}
	})
	m := NewPermissionMiddleware(store)
	router.GET("/banners", m.RequirePermission("/banners", models.ActionRead), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestRequirePermissionAdministratorBypass(t *testing.T) {
	router := permissionTestRouter(&stubStore{}, int64(1), models.AdministratorRole)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/banners", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionGrantedFlag(t *testing.T) {
	store := &stubStore{grants: map[string]bool{"/banners|READ": true}}
	router := permissionTestRouter(store, int64(2), "Editor")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/banners", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequirePermissionDenied(t *testing.T) {
	router := permissionTestRouter(&stubStore{}, int64(2), "Editor")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/banners", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTHZ_001")
}

func TestRequirePermissionMissingIdentity(t *testing.T) {
	router := permissionTestRouter(&stubStore{}, nil, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/banners", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequirePermissionBadIdentityType(t *testing.T) {
	router := permissionTestRouter(&stubStore{}, "not-an-int", "Editor")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/banners", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
