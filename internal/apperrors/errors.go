package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller could not be authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the authenticated caller is not allowed to perform the
// operation, e.g. a custody mutation by a principal other than the current owner.
var ErrForbidden = errors.New("forbidden")

// ErrProductInactive indicates a mutation was attempted on a deactivated product.
// Deactivation is terminal, so this is not retryable.
var ErrProductInactive = errors.New("product is inactive")

// ErrSequenceConflict indicates two operations raced to claim the same journal
// sequence number. The losing caller may re-read the product and retry.
var ErrSequenceConflict = errors.New("journal sequence conflict")

// ErrCapacityExceeded indicates a string field exceeds its reserved storage capacity.
// Capacity is reserved at creation time; oversized input is rejected, never truncated.
var ErrCapacityExceeded = errors.New("field exceeds reserved capacity")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside a message and a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError with the given code, message and wrapped cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
