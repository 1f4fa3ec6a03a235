package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)
	ErrResultNotFound  = fmt.Errorf("%w: result", ErrNotFound)

	// Response validation errors
	ErrIncompleteResponses = errors.New("incomplete responses")
	ErrResponseOutOfRange  = errors.New("response value out of range")
	ErrUnknownQuestion     = errors.New("unknown question id")
	ErrUnknownInstrument   = errors.New("unknown instrument")
	ErrCatalogInvalid      = errors.New("invalid question catalog")
	ErrScaleCoverageBroken = errors.New("scale map does not cover catalog")
)

// Error constructors with context
func NewIncompleteError(instrument string, answered, required int) error {
	return fmt.Errorf("%w: %s requires %d responses, got %d", ErrIncompleteResponses, instrument, required, answered)
}

func NewOutOfRangeError(questionID, value, min, max int) error {
	return fmt.Errorf("%w: question %d value %d outside [%d, %d]", ErrResponseOutOfRange, questionID, value, min, max)
}

func NewUnknownQuestionError(instrument string, questionID int) error {
	return fmt.Errorf("%w: %s has no question %d", ErrUnknownQuestion, instrument, questionID)
}

func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError reports whether the error is a recoverable response
// validation failure (caller should re-prompt rather than crash).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrIncompleteResponses) ||
		errors.Is(err, ErrResponseOutOfRange) ||
		errors.Is(err, ErrUnknownQuestion)
}

// IsCatalogError reports a programming/config defect in the static tables.
func IsCatalogError(err error) bool {
	return errors.Is(err, ErrCatalogInvalid) ||
		errors.Is(err, ErrScaleCoverageBroken)
}
