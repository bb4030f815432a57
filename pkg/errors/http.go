package errors

import "fmt"

// HTTPError is an error carrying the HTTP status and the public message returned to clients.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError builds an HTTPError. Code doubles as the response error_code.
func NewHTTPError(code int, msg string) *HTTPError {
	return &HTTPError{
		Code:       code,
		Message:    msg,
		StatusCode: code,
	}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// ValidationError reports a single invalid request field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
