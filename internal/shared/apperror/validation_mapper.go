package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())

	switch e.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return "Please provide a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", name, e.Param())
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", name, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(e.Param(), " ", ", "))
	case "password_strength":
		return "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character"
	case "person_name":
		return name + " must contain only letters and spaces"
	case "phone10":
		return "Phone number must be 10 digits"
	case "username":
		return "Username must contain only letters and numbers"
	case "nefield":
		return "New password must be different from current password"
	default:
		return name + " is invalid"
	}
}

// MapValidationError turns binding failures into a 400 carrying every failing field.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		details := make([]FieldError, 0, len(errs))
		for _, e := range errs {
			details = append(details, FieldError{Field: e.Field(), Message: fieldMessage(e)})
		}

		appErr := Validation(details[0].Message).WithField(details[0].Field)
		appErr.Details = details
		return appErr
	}

	return Wrap(err, CodeValidation, "Invalid request body", http.StatusBadRequest)
}
