package user

import (
	"go-hms/internal/credential"
	"go-hms/internal/middleware"

	"github.com/gin-gonic/gin"
)

const menuUsers = "Users"

// RegisterRoutes mounts /users. POST /users is company-scoped registration
// and lives with the registration routes. Changes to other users need the
// caller's role to hold the Users menu grant.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens credential.TokenVerifier, enforcer middleware.PermissionEnforcer) {
	users := r.Group("/users")
	users.Use(middleware.Authenticate(tokens))
	{
		users.GET("", middleware.RateLimitByUser(3, 10), handler.List)
		users.GET("/stats", middleware.RateLimitByUser(1, 5), handler.Stats)
		users.GET("/:id", middleware.RateLimitByUser(3, 10), handler.GetByID)

		users.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RequirePermission(enforcer, menuUsers, "edit"),
			handler.Update,
		)
		users.PATCH("/:id/status",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RequirePermission(enforcer, menuUsers, "edit"),
			handler.UpdateStatus,
		)
		users.PUT("/:id/password",
			middleware.RateLimitByUser(0.1, 2),
			middleware.RequireAdministrator(),
			handler.ResetPassword,
		)
		users.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RequirePermission(enforcer, menuUsers, "delete"),
			handler.Delete,
		)
	}
}
