package autherrors

import (
	"net/http"

	"go-hms/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.Unauthorized("Invalid credentials")

	ErrAccountInactive = apperror.Forbidden("Account is not active")

	ErrNoToken = apperror.Unauthorized("No token provided")

	ErrTokenExpired = apperror.New(apperror.CodeTokenExpired, "Token expired", http.StatusUnauthorized)

	ErrInvalidToken = apperror.New(apperror.CodeInvalidToken, "Invalid token", http.StatusUnauthorized)

	ErrRefreshTokenRequired = apperror.Validation("Refresh token required").WithField("refreshToken")

	ErrUserNotFound = apperror.Unauthorized("User not found")

	ErrWrongCurrentPassword = apperror.Unauthorized("Current password is incorrect").WithField("currentPassword")

	ErrSamePassword = apperror.Validation("New password must be different from current password").WithField("newPassword")

	ErrNoProfileFields = apperror.Validation("No valid fields to update")

	ErrAuthRequired = apperror.ErrUnauthorized
)
