package domain

import (
	"errors"
	"fmt"
)

// ErrorCode represents a domain error code.
type ErrorCode string

const (
	ErrCodeTaskNotFound     ErrorCode = "TASK_NOT_FOUND"
	ErrCodeTaskExists       ErrorCode = "TASK_EXISTS"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeRateLimited      ErrorCode = "RATE_LIMITED"
	ErrCodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents an error in the domain layer with context.
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
	cause   error
}

func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause of an internal error, if any.
func (e *DomainError) Unwrap() error {
	return e.cause
}

// IsCode reports whether err is a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == code
	}
	return false
}

// NewTaskNotFoundError creates a task not found error.
func NewTaskNotFoundError(taskID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTaskNotFound,
		Message: fmt.Sprintf("Task %s not found", taskID),
		Context: map[string]interface{}{"id": taskID},
	}
}

// NewTaskExistsError creates a duplicate task error.
func NewTaskExistsError(taskID string) *DomainError {
	return &DomainError{
		Code:    ErrCodeTaskExists,
		Message: fmt.Sprintf("Task %s already exists", taskID),
		Context: map[string]interface{}{"id": taskID},
	}
}

// NewValidationError creates a validation error.
func NewValidationError(details []string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Context: map[string]interface{}{"details": details},
	}
}

// NewRateLimitedError creates a rate limit error.
func NewRateLimitedError() *DomainError {
	return &DomainError{
		Code:    ErrCodeRateLimited,
		Message: "Too many requests",
		Context: map[string]interface{}{},
	}
}

// NewInternalError creates an internal error. The cause is kept for logging
// and never sent to clients.
func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternalError,
		Message: "An internal error occurred",
		Context: map[string]interface{}{},
		cause:   err,
	}
}
