package types

import "fmt"

// Contact is one directory entry. Fields are unexported so that every change
// goes through a setter; a Contact is valid at every observable point.
// The contact ID is fixed at construction.
type Contact struct {
	contactID string
	firstName string
	lastName  string
	phone     string
	address   string
}

// ContactRecord is a detached, plain-value copy of a Contact.
type ContactRecord struct {
	ContactID string `json:"contact_id" yaml:"contact_id"`
	FirstName string `json:"first_name" yaml:"first_name"`
	LastName  string `json:"last_name" yaml:"last_name"`
	Phone     string `json:"phone" yaml:"phone"`
	Address   string `json:"address" yaml:"address"`
}

// NewContact validates every field and returns a new Contact. The contact ID
// is checked first, then each remaining field through its setter, so
// construction and mutation enforce the same rules. On error no Contact is
// returned.
func NewContact(contactID, firstName, lastName, phone, address string) (*Contact, error) {
	if err := ValidateContactID(contactID); err != nil {
		return nil, err
	}
	c := &Contact{contactID: contactID}
	if err := c.SetFirstName(firstName); err != nil {
		return nil, err
	}
	if err := c.SetLastName(lastName); err != nil {
		return nil, err
	}
	if err := c.SetPhone(phone); err != nil {
		return nil, err
	}
	if err := c.SetAddress(address); err != nil {
		return nil, err
	}
	return c, nil
}

// ContactID returns the identifier fixed at construction.
func (c *Contact) ContactID() string { return c.contactID }

// FirstName returns the current first name.
func (c *Contact) FirstName() string { return c.firstName }

// LastName returns the current last name.
func (c *Contact) LastName() string { return c.lastName }

// Phone returns the current ten-digit phone number.
func (c *Contact) Phone() string { return c.phone }

// Address returns the current address.
func (c *Contact) Address() string { return c.address }

// SetFirstName replaces the first name. Returns a *ValidationError wrapping
// ErrInvalidFirstName if the value is longer than MaxNameLen.
func (c *Contact) SetFirstName(v string) error {
	if err := ValidateFirstName(v); err != nil {
		return err
	}
	c.firstName = v
	return nil
}

// SetLastName replaces the last name. Returns a *ValidationError wrapping
// ErrInvalidLastName if the value is longer than MaxNameLen.
func (c *Contact) SetLastName(v string) error {
	if err := ValidateLastName(v); err != nil {
		return err
	}
	c.lastName = v
	return nil
}

// SetPhone replaces the phone number. The value must be exactly ten ASCII
// digits with no sign, separators or whitespace.
func (c *Contact) SetPhone(v string) error {
	if err := ValidatePhone(v); err != nil {
		return err
	}
	c.phone = v
	return nil
}

// SetAddress replaces the address. Returns a *ValidationError wrapping
// ErrInvalidAddress if the value is longer than MaxAddressLen.
func (c *Contact) SetAddress(v string) error {
	if err := ValidateAddress(v); err != nil {
		return err
	}
	c.address = v
	return nil
}

// Snapshot returns the current field values as a ContactRecord. Changes to
// the record do not affect the Contact.
func (c *Contact) Snapshot() ContactRecord {
	return ContactRecord{
		ContactID: c.contactID,
		FirstName: c.firstName,
		LastName:  c.lastName,
		Phone:     c.phone,
		Address:   c.address,
	}
}

// String omits phone and address.
func (c *Contact) String() string {
	return fmt.Sprintf("Contact{%s %s %s}", c.contactID, c.firstName, c.lastName)
}
