package types

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Field bounds, in characters.
const (
	MaxContactIDLen = 10
	MaxNameLen      = 10
	PhoneLen        = 10
	MaxAddressLen   = 30
)

// phonePattern accepts exactly ten ASCII digits. Other digit systems and
// separators are rejected.
var phonePattern = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, PhoneLen))

// ValidateContactID checks the identifier bound. The ID has no setter, so
// this is only reached from NewContact and from ID generation.
func ValidateContactID(v string) error {
	if utf8.RuneCountInString(v) > MaxContactIDLen {
		return newValidationError(FieldContactID, ErrInvalidContactID)
	}
	return nil
}

// ValidateFirstName and ValidateLastName bound names to MaxNameLen characters.
func ValidateFirstName(v string) error {
	if utf8.RuneCountInString(v) > MaxNameLen {
		return newValidationError(FieldFirstName, ErrInvalidFirstName)
	}
	return nil
}

// ValidateLastName is the last-name counterpart of ValidateFirstName.
func ValidateLastName(v string) error {
	if utf8.RuneCountInString(v) > MaxNameLen {
		return newValidationError(FieldLastName, ErrInvalidLastName)
	}
	return nil
}

// ValidatePhone requires exactly PhoneLen ASCII digits.
func ValidatePhone(v string) error {
	if !phonePattern.MatchString(v) {
		return newValidationError(FieldPhone, ErrInvalidPhone)
	}
	return nil
}

// ValidateAddress bounds the address to MaxAddressLen characters.
func ValidateAddress(v string) error {
	if utf8.RuneCountInString(v) > MaxAddressLen {
		return newValidationError(FieldAddress, ErrInvalidAddress)
	}
	return nil
}
