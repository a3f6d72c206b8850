package word

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("word not found")
	ErrInvalidID  = errors.New("invalid word id")
	ErrStorage    = errors.New("storage failure")
)

// ValidationError lists the draft fields that violated a required-field rule.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// StorageError wraps a failure of the persistence layer for the named operation.
func StorageError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, op, err)
}
