package response

import (
	"go-hms/internal/shared/query"

	"github.com/gin-gonic/gin"
)

type ApiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    any             `json:"data,omitempty"`
	Meta    *query.PageMeta `json:"meta,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, ApiEnvelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Paginated(c *gin.Context, status int, message string, data any, meta query.PageMeta) {
	c.JSON(status, ApiEnvelope{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    &meta,
	})
}
