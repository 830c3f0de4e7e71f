package content

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by repositories, services and the REST layer.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation failed")
)

// NewValidationError wraps a message so that errors.Is(err, ErrValidation) holds.
func NewValidationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
