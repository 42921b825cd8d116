package employeeerrors

import "go-hms/internal/shared/apperror"

var (
	ErrEmployeeNotFound = apperror.NotFound("Employee not found")

	ErrInvalidEmployeeID = apperror.InvalidField("id")
)
