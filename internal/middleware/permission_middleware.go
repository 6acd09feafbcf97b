package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campushq/backoffice/internal/app/models"
	"github.com/campushq/backoffice/internal/app/models/dto"
	"github.com/campushq/backoffice/internal/pkg/logger"
)

// PermissionStore answers whether a role may perform an action on a page.
// The permission service satisfies this interface.
type PermissionStore interface {
	Check(ctx context.Context, roleID int64, roleName, pagePath string, action models.Action) error
}

// PermissionMiddleware guards route groups with per-page permission checks
type PermissionMiddleware struct {
	store PermissionStore
}

// NewPermissionMiddleware creates a new PermissionMiddleware
func NewPermissionMiddleware(store PermissionStore) *PermissionMiddleware {
	return &PermissionMiddleware{store: store}
}

// RequirePermission checks the caller's role against the permission row for
// the given page before letting the request through. JWTAuth must run first;
// a request without identity is rejected as unauthenticated.
func (m *PermissionMiddleware) RequirePermission(pagePath string, action models.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID, roleIDExists := c.Get(ContextRoleID)
		roleName, roleNameExists := c.Get(ContextRoleName)
		if !roleIDExists || !roleNameExists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			errorDetail = errorDetail.WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		roleIDInt, okID := roleID.(int64)
		roleNameStr, okName := roleName.(string)
		if !okID || !okName {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
			errorDetail = errorDetail.WithDetails("Invalid role information")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := m.store.Check(c.Request.Context(), roleIDInt, roleNameStr, pagePath, action); err != nil {
			logger.Debug().
				Int64("roleID", roleIDInt).
				Str("page", pagePath).
				Str("action", string(action)).
				Msg("Permission check failed")
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
