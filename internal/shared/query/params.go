package query

import (
	"strconv"

	"go-hms/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// ParseID reads a positive integer path parameter.
func ParseID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidField(name)
	}
	return id, nil
}
