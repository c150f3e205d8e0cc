package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that carries the status and code to send to the client.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError creates a 400-class HTTPError.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: http.StatusBadRequest}
}

// NewHTTPErrorWithStatus creates an HTTPError with an explicit status.
func NewHTTPErrorWithStatus(status, code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Status returns the HTTP status, defaulting to 400.
func (e *HTTPError) Status() int {
	if e.StatusCode == 0 {
		return http.StatusBadRequest
	}
	return e.StatusCode
}
