package rbacerrors

import "go-hms/internal/shared/apperror"

var (
	ErrRoleNotFound = apperror.NotFound("Role not found")

	ErrRoleNameTaken = apperror.Conflict("Role name already exists").WithField("role_name")

	ErrMenuNotFound = apperror.NotFound("Menu not found")

	ErrFeatureNotFound = apperror.NotFound("Feature not found")

	ErrAdministratorRoleLocked = apperror.Validation("The Administrator role always holds full permissions")
)
