package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("backing store unavailable")
)

// LoanErrors
var (
	ErrMissingIdentity  = errors.New("tax id and phone number are mandatory for non-account holders")
	ErrDuplicatePending = errors.New("an active loan application already exists for this tax id")
)

// ValidationError carries every field-level rule failure from a single
// validation pass. Validation never short-circuits, so all simultaneous
// failures are reported together.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}

// DuplicateKeyError reports a uniqueness violation naming the colliding field.
type DuplicateKeyError struct {
	Field string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s already exists", e.Field)
}

// InvalidStateError reports a state-machine transition attempted outside the
// pending status, naming the loan's current status.
type InvalidStateError struct {
	Current string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot verify salary: current status is %s", e.Current)
}
