package usererrors

import "go-hms/internal/shared/apperror"

var (
	ErrUserNotFound = apperror.NotFound("User not found")

	ErrEmailTaken = apperror.Conflict("Email already exists").WithField("email")

	ErrUsernameTaken = apperror.Conflict("Username already exists").WithField("username")

	ErrSelfRoleChange = apperror.Validation("Cannot change your own role").WithField("role_id")

	ErrSelfStatusChange = apperror.Validation("Cannot change your own status").WithField("status")

	ErrSelfDelete = apperror.Validation("Cannot delete your own account")

	ErrAlreadyDeleted = apperror.Validation("User is already deleted")

	ErrStatusChangeForbidden = apperror.Forbidden("Insufficient permissions to change this user's status")

	ErrDeleteForbidden = apperror.Forbidden("Insufficient permissions to delete this user")

	ErrResetForbidden = apperror.Forbidden("Insufficient permissions to reset this user's password")

	ErrRoleNotFound = apperror.NotFound("Role not found").WithField("role_id")

	ErrNoFieldsToUpdate = apperror.Validation("No valid fields to update")
)
