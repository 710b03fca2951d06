package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes by
// the (external) web layer. The core only produces these; how they are
// rendered to users is the caller's concern.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a referenced file, user or department has no record
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input (blank comment, missing upload
	// fields, disallowed file extension)
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates an authorization-gate predicate failed
	UnauthorizedError struct {
		Message string
	}

	// InvalidTransitionError indicates a review action not permitted by the
	// document state machine
	InvalidTransitionError struct {
		Message string
	}

	// ConcurrencyConflictError indicates two revision creations raced on the
	// same chain; the caller is expected to retry once
	ConcurrencyConflictError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string            { return e.Message }
func (e *ValidationError) Error() string          { return e.Message }
func (e *UnauthorizedError) Error() string        { return e.Message }
func (e *InvalidTransitionError) Error() string   { return e.Message }
func (e *ConcurrencyConflictError) Error() string { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int            { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int          { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int        { return http.StatusForbidden }
func (e *InvalidTransitionError) StatusCode() int   { return http.StatusConflict }
func (e *ConcurrencyConflictError) StatusCode() int { return http.StatusConflict }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidTransition   = errors.New("invalid transition")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// Is allows errors.Is() to match the typed errors against their sentinels
func (e *NotFoundError) Is(target error) bool          { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool        { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool      { return target == ErrUnauthorized }
func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }
func (e *ConcurrencyConflictError) Is(target error) bool {
	return target == ErrConcurrencyConflict
}
