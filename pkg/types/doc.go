// Package types defines the Contact entity, the Directory interface, the
// shared field validators, and the standard error types for the contacts
// directory.
//
// Every error returned by the Directory contract is a *ValidationError and
// matches ErrValidation under errors.Is.
package types
