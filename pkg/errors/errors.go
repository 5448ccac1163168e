package errors

import "fmt"

// HTTPError is an error that carries an HTTP status code for the delivery
// layer. Usecases return domain errors; delivery maps them to HTTPError.
type HTTPError struct {
	Code    int
	Message string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
