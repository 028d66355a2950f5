package domain

import "fmt"

// ValidationError indicates malformed or missing input. Mapped to 400 at
// the HTTP boundary.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError indicates a missing resource. Mapped to 404.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFoundError creates a NotFoundError for the given resource with a
// fixed, client-facing message.
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{Resource: resource, Message: message}
}

// PreconditionFailedError indicates a domain invariant rejected the
// request (e.g. overlapping dates). Mapped to 412.
type PreconditionFailedError struct {
	Message string
}

func (e *PreconditionFailedError) Error() string { return e.Message }

// NewPreconditionFailedError creates a PreconditionFailedError.
func NewPreconditionFailedError(message string) *PreconditionFailedError {
	return &PreconditionFailedError{Message: message}
}

// ConflictError indicates a concurrent-modification conflict. Mapped to 409.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError creates a ConflictError.
func NewConflictError(message string) *ConflictError {
	return &ConflictError{Message: message}
}

// UnavailableError indicates the persistence layer could not be reached.
// Mapped to 500; retries are left to the caller or infrastructure.
type UnavailableError struct {
	Message string
	Err     error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// NewUnavailableError wraps a low-level store failure.
func NewUnavailableError(message string, err error) *UnavailableError {
	return &UnavailableError{Message: message, Err: err}
}
