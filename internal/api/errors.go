package api

import (
	"errors"
	"fmt"
)

// ErrUnauthorized is returned when a call fails with 401 and no refresh
// succeeds. Callers should match it with errors.Is and route to login.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx/3xx response other than an unrecovered 401. Message
// is the backend's error field when the body carried one, otherwise a
// generic status-coded message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func newAPIError(status int, message string) *APIError {
	if message == "" {
		message = fmt.Sprintf("HTTP %d", status)
	}
	return &APIError{StatusCode: status, Message: message}
}
