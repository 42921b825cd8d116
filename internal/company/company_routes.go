package company

import (
	"go-hms/internal/credential"
	"go-hms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, tokens credential.TokenVerifier) {
	companies := r.Group("/companies")
	companies.Use(middleware.Authenticate(tokens))
	{
		companies.GET("/me",
			middleware.RateLimitByUser(2, 10),
			handler.GetMe,
		)
		companies.PUT("/me",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RequireAdministrator(),
			handler.UpdateMe,
		)
	}

	branches := r.Group("/branches")
	branches.Use(middleware.Authenticate(tokens))
	{
		branches.GET("", handler.ListBranches)
		branches.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequireAdministrator(),
			handler.CreateBranch,
		)
		branches.PATCH("/:id",
			middleware.RequireAdministrator(),
			handler.UpdateBranch,
		)
		branches.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RequireAdministrator(),
			handler.DeleteBranch,
		)
	}
}
