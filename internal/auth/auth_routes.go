package auth

import (
	"go-hms/internal/credential"
	"go-hms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens credential.TokenVerifier) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/refresh-token", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
	}

	session := r.Group("/auth")
	session.Use(middleware.Authenticate(tokens))
	{
		session.POST("/logout", handler.Logout)
		session.GET("/profile", middleware.RateLimitByUser(2, 5), handler.Profile)
		session.PATCH("/profile", middleware.RateLimitByUser(0.5, 3), handler.UpdateProfile)
		session.POST("/change-password", middleware.RateLimitByUser(0.1, 2), handler.ChangePassword)
		session.GET("/permissions", middleware.RateLimitByUser(2, 5), handler.Permissions)
	}
}
