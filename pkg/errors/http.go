package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and the message shown to
// the client.
type HTTPError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"code"`
	Message    string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError whose error code mirrors the status code.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Something went wrong")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too many requests")
)

// NewBadRequest returns a 400 HTTPError.
func NewBadRequest(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message)
}

// NewNotFound returns a 404 HTTPError.
func NewNotFound(message string) *HTTPError {
	return NewHTTPError(http.StatusNotFound, message)
}
