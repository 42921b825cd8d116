package apperror

const (
	// Client errors (4xx)
	CodeValidation          = "VALIDATION_ERROR"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeTokenExpired        = "TOKEN_EXPIRED"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeForbidden           = "FORBIDDEN"
	CodeCompanyAccessDenied = "COMPANY_ACCESS_DENIED"
	CodeBranchAccessDenied  = "BRANCH_ACCESS_DENIED"
	CodeRoleAccessDenied    = "ROLE_ACCESS_DENIED"
	CodeNotFound            = "NOT_FOUND"
	CodeConflict            = "CONFLICT"
	CodeDuplicateEntry      = "DUPLICATE_ENTRY"
	CodeTooManyRequests     = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
