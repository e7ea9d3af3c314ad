package apperrors

import "errors"

// Common errors
var (
	// Validation errors
	ErrValidationFailed = errors.New("validation failed")

	// Lookup errors
	ErrNotFound         = errors.New("not found")
	ErrStudentNotFound  = errors.New("student not found")
	ErrResourceNotFound = errors.New("resource not found")
	ErrRewardNotFound   = errors.New("reward not found")

	// Conflict errors
	ErrConflict      = errors.New("conflict")
	ErrAlreadyExists = errors.New("already exists")

	// Reward errors
	ErrInsufficientPoints = errors.New("insufficient points")

	// Embedding provider errors
	ErrProvider = errors.New("embedding provider failed")
)

// CustomError wraps a sentinel error with a contextual message
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new custom error for invalid input with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewNotFoundError creates a new custom error for an absent entity with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewAlreadyExistsError creates a new custom error for duplicate entities with a message
func NewAlreadyExistsError(message string) error {
	return &CustomError{
		Err:     ErrAlreadyExists,
		Message: message,
	}
}

// NewProviderError creates a new custom error for embedding failures with a message
func NewProviderError(message string) error {
	return &CustomError{
		Err:     ErrProvider,
		Message: message,
	}
}
