package service

import (
	"errors"
	"fmt"

	"storyloom/internal/storage"
	"storyloom/internal/validate"
)

var (
	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("not found")
	// ErrNoSnapshotsForVersion is returned when a switch targets a version
	// whose snapshot history is empty.
	ErrNoSnapshotsForVersion = errors.New("version has no snapshots")
)

// Structural conflicts surface unchanged from the store so callers can react
// to each case without importing the storage package.
var (
	ErrLeafProtection    = storage.ErrLeafProtection
	ErrMaxDepthExceeded  = storage.ErrMaxDepthExceeded
	ErrOwnershipMismatch = storage.ErrOwnershipMismatch
	ErrLastVersion       = storage.ErrLastVersion
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// checkInput runs struct-tag validation on a request and converts the first
// failure into a ValidationError.
func checkInput(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrors validate.Errors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return &ValidationError{Field: fieldErrors[0].Field, Message: fieldErrors[0].Message}
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, err)
}

// asNotFound converts a storage miss into the service-level ErrNotFound,
// naming the entity for the caller. Other errors pass through untouched.
func asNotFound(err error, entity, id string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
	}
	return err
}
