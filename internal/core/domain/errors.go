package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrConflict = errors.New("resource already exists")
var ErrUnauthenticated = errors.New("not authenticated")
var ErrSessionExpired = errors.New("session expired")
var ErrNetwork = errors.New("network unreachable")
var ErrInvalidInput = errors.New("invalid input")

// RequestError carries a non-2xx response that does not map to one of the
// sentinel errors above. Message is the server-provided detail when the
// error payload could be decoded, otherwise a status-derived fallback.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed (%d): %s", e.Status, http.StatusText(e.Status))
}

// NewRequestError builds a RequestError for the given status and message.
func NewRequestError(status int, message string) *RequestError {
	return &RequestError{Status: status, Message: message}
}
