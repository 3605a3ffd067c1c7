package eatstreet

import (
	"errors"
	"fmt"
)

// APIError represents a structured error reported by the EatStreet API.
// The server returns these for 4xx statuses as a JSON object with integer
// "errorCode" and string "details" fields; both are preserved verbatim.
type APIError struct {
	Code    int    `json:"errorCode"`
	Details string `json:"details"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (code: %d)", e.Details, e.Code)
}

// StatusError represents a non-2xx response that did not carry a structured
// error body.
type StatusError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d", e.StatusCode)
}

// TransportError represents a connection, IO, or URL construction failure.
// It is always distinct from an error reported by the API itself.
type TransportError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAccessTokenRequired = errors.New("developer access token is required")
	ErrUserTokenRequired   = errors.New("user token is required for this operation")
	ErrNoResponseBody      = errors.New("response did not contain any JSON data to parse")
	ErrNilOrder            = errors.New("order is nil")
	ErrNilAddress          = errors.New("address is nil")
	ErrNilCard             = errors.New("credit card is nil")
	ErrMergeTargetNil      = errors.New("merge target must be a non-nil pointer")
)

// IsAPIError reports whether err carries a structured API error.
func IsAPIError(err error) bool {
	apiErr := &APIError{}

	return errors.As(err, &apiErr)
}

// AsAPIError extracts the structured API error from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}

// IsUserTokenRequired reports whether err is the missing-user-token
// precondition failure.
func IsUserTokenRequired(err error) bool {
	return errors.Is(err, ErrUserTokenRequired)
}
