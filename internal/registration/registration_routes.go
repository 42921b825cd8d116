package registration

import (
	"go-hms/internal/credential"
	"go-hms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens credential.TokenVerifier, rdb redis.Cmdable, logger *zap.Logger) {
	idempotent := middleware.Idempotency(rdb, logger)

	auth := r.Group("/auth")
	{
		auth.POST("/register",
			middleware.RateLimitByIP(0.2, 3),
			idempotent,
			handler.Register,
		)
		auth.POST("/register-complete",
			middleware.RateLimitByIP(0.2, 3),
			idempotent,
			handler.RegisterComplete,
		)
		auth.POST("/register-user",
			middleware.Authenticate(tokens),
			middleware.RequireAdministrator(),
			middleware.RateLimitByUser(0.5, 3),
			idempotent,
			handler.RegisterCompanyUser,
		)
	}

	r.POST("/users",
		middleware.Authenticate(tokens),
		middleware.RequireAdministrator(),
		middleware.RateLimitByUser(0.5, 3),
		idempotent,
		handler.RegisterCompanyUser,
	)
}
