package middleware

import (
	"context"

	"go-hms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// PermissionEnforcer checks a role's menu grant for an action (view, create, edit, delete).
type PermissionEnforcer interface {
	Enforce(ctx context.Context, roleID int64, menu, action string) (bool, error)
}

func RequirePermission(enforcer PermissionEnforcer, menu, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := CurrentIdentity(c)
		if err != nil {
			abortWithError(c, err)
			return
		}

		allowed, err := enforcer.Enforce(c.Request.Context(), id.RoleID, menu, action)
		if err != nil {
			abortWithError(c, err)
			return
		}
		if !allowed {
			abortWithError(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
