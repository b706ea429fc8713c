// Package domain holds the error kinds shared by every aggregate of the service.
package domain

import "fmt"

// NotFoundError indicates a local entity is absent (or hidden because it is inactive).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InvalidReferenceError indicates a remote registry has no record for a referenced id.
type InvalidReferenceError struct {
	Message string
}

func (e *InvalidReferenceError) Error() string { return e.Message }

// InactiveReferenceError indicates a remote record exists but is not active.
type InactiveReferenceError struct {
	Message string
}

func (e *InactiveReferenceError) Error() string { return e.Message }

// UserNotActiveError indicates no active role could be resolved for a user.
type UserNotActiveError struct {
	Message string
}

func (e *UserNotActiveError) Error() string { return e.Message }

// ValidationError indicates malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func ErrNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func ErrInvalidReference(format string, args ...any) *InvalidReferenceError {
	return &InvalidReferenceError{Message: fmt.Sprintf(format, args...)}
}

func ErrInactiveReference(format string, args ...any) *InactiveReferenceError {
	return &InactiveReferenceError{Message: fmt.Sprintf(format, args...)}
}

func ErrUserNotActive(format string, args ...any) *UserNotActiveError {
	return &UserNotActiveError{Message: fmt.Sprintf(format, args...)}
}

func ErrValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
