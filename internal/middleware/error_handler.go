package middleware

import (
	"net/http"

	"go-hms/internal/shared/apperror"
	"go-hms/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error attached with c.Error as the failure envelope.
// It is the only place where an error becomes an HTTP status.
func ErrorHandler(logger *zap.Logger, production bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, body := apperror.ToHTTP(err, production)

		log := contextutil.GetLogger(c.Request.Context(), logger)
		if status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Int("status", status),
				zap.Error(err),
			)
		} else {
			log.Debug("request rejected",
				zap.String("path", c.FullPath()),
				zap.Int("status", status),
				zap.String("code", body.Code),
			)
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, body)
	}
}
