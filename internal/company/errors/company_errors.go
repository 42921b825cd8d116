package companyerrors

import "go-hms/internal/shared/apperror"

var (
	ErrCompanyNotFound = apperror.NotFound("Company not found")

	ErrBranchNotFound = apperror.NotFound("Branch not found")

	ErrLastBranch = apperror.Validation("A company must keep at least one active branch")

	ErrInvalidBranchID = apperror.Validation("Invalid branch ID").WithField("id")

	ErrNoFieldsToUpdate = apperror.Validation("No valid fields to update")
)
