package types

import (
	"errors"
	"fmt"
)

// ErrValidation is the error kind shared by every contract failure.
var ErrValidation = errors.New("validation failed")

// Field constraint errors.
var (
	ErrInvalidContactID = errors.New("contact ID must be at most 10 characters")
	ErrInvalidFirstName = errors.New("first name must be at most 10 characters")
	ErrInvalidLastName  = errors.New("last name must be at most 10 characters")
	ErrInvalidPhone     = errors.New("phone must be exactly 10 digits")
	ErrInvalidAddress   = errors.New("address must be at most 30 characters")
)

// Directory operation errors.
var (
	ErrNilContact         = errors.New("contact cannot be nil")
	ErrDuplicateContactID = errors.New("contact ID already exists")
	ErrContactNotFound    = errors.New("contact ID not found")
)

// Field names reported in ValidationError.Field.
const (
	FieldContact   = "contact"
	FieldContactID = "contactId"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldPhone     = "phone"
	FieldAddress   = "address"
)

// ValidationError reports which field failed and which constraint it broke.
// Err is one of the constraint sentinels above, possibly wrapped with the
// offending contact ID.
type ValidationError struct {
	Field string
	Err   error
}

func newValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// NotFound returns the lookup failure shared by delete and the update
// operations.
func NotFound(contactID string) *ValidationError {
	return newValidationError(FieldContactID, fmt.Errorf("%w: %s", ErrContactNotFound, contactID))
}

// Duplicate returns the insertion failure for an ID already in a directory.
func Duplicate(contactID string) *ValidationError {
	return newValidationError(FieldContactID, fmt.Errorf("%w: %s", ErrDuplicateContactID, contactID))
}

// NilContact returns the insertion failure for a nil contact.
func NilContact() *ValidationError {
	return newValidationError(FieldContact, ErrNilContact)
}

// Error renders the field and the constraint it broke.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

// Unwrap returns the constraint error so errors.Is matches the sentinel.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports ErrValidation as a match so callers can test the error kind
// without knowing the constraint.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
