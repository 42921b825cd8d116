package apperror

import "net/http"

// ErrorBody is the failure envelope written to clients.
type ErrorBody struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Code    string       `json:"code,omitempty"`
	Field   string       `json:"field,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
	Detail  string       `json:"detail,omitempty"`
}

// ToHTTP maps any error to a status and envelope. Unknown errors become a
// generic 500; their text is only exposed when production is false.
func ToHTTP(err error, production bool) (int, ErrorBody) {
	if appErr, ok := As(err); ok {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		body := ErrorBody{
			Message: appErr.Message,
			Code:    appErr.Code,
			Field:   appErr.Field,
			Errors:  appErr.Details,
		}
		if status >= http.StatusInternalServerError && !production && appErr.Err != nil {
			body.Detail = appErr.Err.Error()
		}
		return status, body
	}

	body := ErrorBody{
		Message: ErrInternal.Message,
		Code:    ErrInternal.Code,
	}
	if !production && err != nil {
		body.Detail = err.Error()
	}
	return http.StatusInternalServerError, body
}
