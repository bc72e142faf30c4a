package transport

import (
	"errors"
	"fmt"
)

// NetworkError indicates the request never produced an HTTP response
// (connection failure, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// AuthError indicates a 401. The transport clears the persisted credential
// before returning it, so the session must be treated as unauthenticated.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}
	return e.Message
}

// ValidationError indicates a non-auth, non-conflict 4xx on a mutation.
type ValidationError struct {
	Status  int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%d): %s", e.Status, e.Message)
}

// ConflictError indicates a 409, e.g. registering a taken username.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return "conflict"
	}
	return e.Message
}

// NotFoundError indicates a 404 for a record that no longer exists.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

// ServerError indicates a 5xx. Message carries the server's error text so
// the retry policy can recognize transient database aborts.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}

// IsAuthError reports whether err is an AuthError.
func IsAuthError(err error) bool {
	var target *AuthError
	return errors.As(err, &target)
}

// IsConflictError reports whether err is a ConflictError.
func IsConflictError(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsNotFoundError reports whether err is a NotFoundError.
func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsNetworkError reports whether err is a NetworkError.
func IsNetworkError(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}
