package types

// Directory owns a mapping from contact ID to Contact. Every method other
// than GetContact, Len and List either fully succeeds or returns a
// *ValidationError and leaves the directory unchanged.
type Directory interface {
	// AddContact stores c under its contact ID. The directory keeps the
	// pointer it is given; no copy is made. Returns ErrNilContact for a nil
	// contact and ErrDuplicateContactID if the ID is already present.
	AddContact(c *Contact) error

	// AddNew builds a contact under a freshly generated, unused ID and adds
	// it.
	AddNew(firstName, lastName, phone, address string) (*Contact, error)

	// DeleteContact removes the entry for id.
	// Returns ErrContactNotFound if id is absent.
	DeleteContact(id string) error

	// UpdateFirstName, UpdateLastName, UpdatePhone and UpdateAddress locate
	// the contact by id (ErrContactNotFound if absent) and delegate to the
	// matching setter, returning its error unchanged.
	UpdateFirstName(id, v string) error
	UpdateLastName(id, v string) error
	UpdatePhone(id, v string) error
	UpdateAddress(id, v string) error

	// GetContact returns the stored contact for id. A missing id is not an
	// error: ok is false.
	GetContact(id string) (c *Contact, ok bool)

	// Len returns the number of stored contacts.
	Len() int

	// List returns the stored contacts ordered by contact ID.
	List() []*Contact
}
