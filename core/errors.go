package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries field-level messages meant to be surfaced
// inline next to the offending input; it never propagates as a global
// error banner.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return "invalid input"
	}
	return err.Err.Error()
}

// FieldMap flattens the field errors into a field -> message map.
func (err ValidationError) FieldMap() map[string]string {
	m := make(map[string]string, len(err.Fields))
	for _, fe := range err.Fields {
		m[fe.Field] = fe.Error
	}
	return m
}

// IsValidationError reports whether the cause of err is a *ValidationError.
func IsValidationError(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// APIError is any non-2xx outcome of a request to the remote API:
// transport failures, auth failures (401), not-found (404), server
// errors. It is never retried automatically; callers surface it with
// an explicit recovery action.
type APIError struct {
	StatusCode int
	Message    string
	Err        error // underlying transport error, if any
}

func NewAPIError(status int, msg string) *APIError {
	return &APIError{StatusCode: status, Message: msg}
}

func (e APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

func (e APIError) Unwrap() error { return e.Err }

// IsAPIStatus reports whether the cause of err is an *APIError with the given status code.
func IsAPIStatus(err error, status int) bool {
	if apiErr, ok := errors.Cause(err).(*APIError); ok {
		return apiErr.StatusCode == status
	}
	return false
}

// IsNotFound reports whether the cause of err is a 404 from the API.
func IsNotFound(err error) bool {
	return IsAPIStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether the cause of err is a 401 from the API.
// The server is the authority on token validity; the client only forwards it.
func IsUnauthorized(err error) bool {
	return IsAPIStatus(err, http.StatusUnauthorized)
}
