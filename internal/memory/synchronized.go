package memory

import (
	"sync"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

var _ types.Directory = (*Synchronized)(nil)

// Synchronized guards a Directory with a single mutex so it can be shared
// between goroutines. Contacts returned by GetContact and List are the stored
// instances; mutate them through the directory, not directly, when the
// directory is shared.
type Synchronized struct {
	mu  sync.Mutex
	dir types.Directory
}

// NewSynchronized wraps dir. A nil dir is replaced by an empty
// ContactService.
func NewSynchronized(dir types.Directory) *Synchronized {
	if dir == nil {
		dir = NewContactService()
	}
	return &Synchronized{dir: dir}
}

// AddContact stores c under the lock.
func (s *Synchronized) AddContact(c *types.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.AddContact(c)
}

// AddNew generates an ID and adds the contact under the lock.
func (s *Synchronized) AddNew(firstName, lastName, phone, address string) (*types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.AddNew(firstName, lastName, phone, address)
}

// DeleteContact removes the entry for id under the lock.
func (s *Synchronized) DeleteContact(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.DeleteContact(id)
}

// UpdateFirstName sets the first name under the lock.
func (s *Synchronized) UpdateFirstName(id, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.UpdateFirstName(id, v)
}

// UpdateLastName sets the last name under the lock.
func (s *Synchronized) UpdateLastName(id, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.UpdateLastName(id, v)
}

// UpdatePhone sets the phone number under the lock.
func (s *Synchronized) UpdatePhone(id, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.UpdatePhone(id, v)
}

// UpdateAddress sets the address under the lock.
func (s *Synchronized) UpdateAddress(id, v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.UpdateAddress(id, v)
}

// GetContact looks up id under the lock.
func (s *Synchronized) GetContact(id string) (*types.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.GetContact(id)
}

// Len returns the number of stored contacts.
func (s *Synchronized) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.Len()
}

// List returns the stored contacts ordered by contact ID.
func (s *Synchronized) List() []*types.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dir.List()
}
