// Package memory implements the contact Directory as an in-memory map.
// The core ContactService assumes exclusive access; wrap it with
// NewSynchronized when several goroutines share one directory.
package memory

import (
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Compile-time interface check: ContactService must implement Directory.
var _ types.Directory = (*ContactService)(nil)

// ContactService is the map-backed contact directory. Every key equals the
// contact ID of the Contact stored under it.
type ContactService struct {
	contacts map[string]*types.Contact
	log      *zap.Logger
	newID    func() (string, error)
}

// Option configures a ContactService.
type Option func(*ContactService)

// WithLogger sets the logger used for debug events. Phone numbers and
// addresses are never logged.
func WithLogger(log *zap.Logger) Option {
	return func(s *ContactService) {
		if log != nil {
			s.log = log
		}
	}
}

// WithIDGenerator replaces the ID source used by AddNew.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *ContactService) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewContactService returns an empty directory.
func NewContactService(opts ...Option) *ContactService {
	s := &ContactService{
		contacts: make(map[string]*types.Contact),
		log:      zap.NewNop(),
		newID:    NewContactID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddContact stores c under its contact ID. The pointer itself is stored,
// so later updates through the directory act on the caller's instance.
func (s *ContactService) AddContact(c *types.Contact) error {
	if c == nil {
		err := types.NilContact()
		s.log.Debug("add contact rejected", zap.Error(err))
		return err
	}
	id := c.ContactID()
	if _, ok := s.contacts[id]; ok {
		err := types.Duplicate(id)
		s.log.Debug("add contact rejected", zap.String("contact_id", id), zap.Error(err))
		return err
	}
	s.contacts[id] = c
	s.log.Debug("contact added", zap.String("contact_id", id))
	return nil
}

// AddNew builds a contact under a generated ID that is not yet in use and
// stores it. Field errors come from types.NewContact unchanged.
func (s *ContactService) AddNew(firstName, lastName, phone, address string) (*types.Contact, error) {
	id, err := s.unusedID()
	if err != nil {
		return nil, err
	}
	c, err := types.NewContact(id, firstName, lastName, phone, address)
	if err != nil {
		return nil, err
	}
	if err := s.AddContact(c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeleteContact removes the entry for id.
func (s *ContactService) DeleteContact(id string) error {
	if _, err := s.find(id); err != nil {
		return err
	}
	delete(s.contacts, id)
	s.log.Debug("contact deleted", zap.String("contact_id", id))
	return nil
}

// UpdateFirstName sets the first name of the contact stored under id.
func (s *ContactService) UpdateFirstName(id, v string) error {
	return s.update(id, types.FieldFirstName, (*types.Contact).SetFirstName, v)
}

// UpdateLastName sets the last name of the contact stored under id.
func (s *ContactService) UpdateLastName(id, v string) error {
	return s.update(id, types.FieldLastName, (*types.Contact).SetLastName, v)
}

// UpdatePhone sets the phone number of the contact stored under id.
func (s *ContactService) UpdatePhone(id, v string) error {
	return s.update(id, types.FieldPhone, (*types.Contact).SetPhone, v)
}

// UpdateAddress sets the address of the contact stored under id.
func (s *ContactService) UpdateAddress(id, v string) error {
	return s.update(id, types.FieldAddress, (*types.Contact).SetAddress, v)
}

// GetContact returns the stored contact for id; ok is false when absent.
func (s *ContactService) GetContact(id string) (*types.Contact, bool) {
	c, ok := s.contacts[id]
	return c, ok
}

// Len returns the number of stored contacts.
func (s *ContactService) Len() int { return len(s.contacts) }

// List returns the stored contacts ordered by contact ID. The slice is new;
// the contacts are the stored instances.
func (s *ContactService) List() []*types.Contact {
	out := make([]*types.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *types.Contact) int {
		return strings.Compare(a.ContactID(), b.ContactID())
	})
	return out
}

// update locates the contact and applies set. The setter's error is returned
// as is.
func (s *ContactService) update(id, field string, set func(*types.Contact, string) error, v string) error {
	c, err := s.find(id)
	if err != nil {
		return err
	}
	if err := set(c, v); err != nil {
		s.log.Debug("update rejected", zap.String("contact_id", id), zap.String("field", field), zap.Error(err))
		return err
	}
	s.log.Debug("contact updated", zap.String("contact_id", id), zap.String("field", field))
	return nil
}

// find is the lookup shared by delete and every update.
func (s *ContactService) find(id string) (*types.Contact, error) {
	c, ok := s.contacts[id]
	if !ok {
		err := types.NotFound(id)
		s.log.Debug("contact lookup failed", zap.String("contact_id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}
