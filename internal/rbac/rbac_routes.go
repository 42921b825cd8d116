package rbac

import (
	"go-hms/internal/credential"
	"go-hms/internal/middleware"

	"github.com/gin-gonic/gin"
)

const MenuRoles = "Roles"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens credential.TokenVerifier, enforcer middleware.PermissionEnforcer) {
	roles := r.Group("/roles")
	roles.Use(middleware.Authenticate(tokens))
	{
		roles.GET("", middleware.RateLimitByUser(3, 10), handler.ListRoles)
		roles.GET("/:id/permissions", middleware.RateLimitByUser(3, 10), handler.RolePermissions)

		roles.POST("",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RequirePermission(enforcer, MenuRoles, ActionCreate),
			handler.CreateRole,
		)
		roles.PUT("/:id/menus",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(enforcer, MenuRoles, ActionEdit),
			handler.AssignMenus,
		)
		roles.PUT("/:id/features",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(enforcer, MenuRoles, ActionEdit),
			handler.AssignFeatures,
		)
	}

	menus := r.Group("/menus")
	menus.Use(middleware.Authenticate(tokens))
	{
		menus.GET("", middleware.RateLimitByUser(5, 20), handler.MenuTree)
	}
}
