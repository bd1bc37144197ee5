package drawer

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation indicates required shift details are missing or malformed.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a requested shift does not exist.
	ErrNotFound = errors.New("shift not found")

	// ErrNoOpenShift indicates an operation needs an open shift and there is none.
	ErrNoOpenShift = errors.New("no open shift")

	// ErrShiftAlreadyOpen indicates a shift is already open.
	ErrShiftAlreadyOpen = errors.New("a shift is already open")

	ErrInvalidEntryType    = errors.New("invalid entry type")
	ErrInvalidDenomination = errors.New("denomination must be greater than zero")
	ErrInvalidQuantity     = errors.New("quantity must not be negative")
	ErrUnknownDenomination = errors.New("denomination not in catalog")
	ErrInvalidAmount       = errors.New("amount must not be negative")
)

// FieldError describes one field that failed validation.
type FieldError struct {
	Field string
	Rule  string
}

// ValidationError lists the fields that failed validation.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s is %s", f.Field, f.Rule)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
