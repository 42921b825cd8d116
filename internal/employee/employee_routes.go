package employee

import (
	"go-hms/internal/credential"
	"go-hms/internal/middleware"

	"github.com/gin-gonic/gin"
)

const menuEmployees = "Employees"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens credential.TokenVerifier, enforcer middleware.PermissionEnforcer) {
	employees := r.Group("/employees")
	employees.Use(middleware.Authenticate(tokens))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(enforcer, menuEmployees, "view"),
			handler.List,
		)
		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(enforcer, menuEmployees, "view"),
			handler.GetByID,
		)
		employees.POST("/:id/branches",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(enforcer, menuEmployees, "edit"),
			handler.AssignBranch,
		)
		employees.DELETE("/:id/branches/:branch_id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(enforcer, menuEmployees, "edit"),
			handler.RemoveBranch,
		)
	}
}
