package registrationerrors

import (
	"net/http"

	"go-hms/internal/shared/apperror"
)

var (
	ErrEmailTaken = apperror.Conflict("Email address is already registered").WithField("email")

	ErrUsernameTaken = apperror.Conflict("Username is already taken").WithField("username")

	ErrIdentityUnavailable = apperror.New(apperror.CodeInternalError, "Registered user could not be loaded", http.StatusInternalServerError)
)
