package shaheen

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAuthExpired marks responses rejected with HTTP 401. By the time callers
// observe it the stored token has already been cleared.
var ErrAuthExpired = errors.New("shaheen: authentication expired")

// APIError represents a non-success HTTP response from the API.
type APIError struct {
	StatusCode int
	Body       string
	Message    string
	Errors     map[string][]string // Field-level validation errors on 422.
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Body
	}
	return fmt.Sprintf("shaheen API %d: %s", e.StatusCode, msg)
}

// Unwrap lets errors.Is(err, ErrAuthExpired) detect the centralized 401 path.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrAuthExpired
	}
	return nil
}

// IsValidation reports whether the response was a 422 with field errors.
func (e *APIError) IsValidation() bool {
	return e.StatusCode == http.StatusUnprocessableEntity
}

// ValidationError is raised client-side before a request is issued, for
// example when a rejection is attempted without a reason.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "shaheen: " + e.Message
	}
	return fmt.Sprintf("shaheen: %s: %s", e.Field, e.Message)
}
