package memory

import (
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// maxIDAttempts bounds the retries AddNew makes when a generated ID is
// already taken.
const maxIDAttempts = 8

// NewContactID returns a contact ID made of the first ten hex digits of a
// random (version 4) UUID. Those digits are all random bits.
func NewContactID() (string, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating UUID: %w", err)
	}
	return hex.EncodeToString(u[:])[:types.MaxContactIDLen], nil
}

// unusedID draws IDs until one is valid and not present in the directory.
func (s *ContactService) unusedID() (string, error) {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		var err error
		id, err = s.newID()
		if err != nil {
			return "", err
		}
		if err := types.ValidateContactID(id); err != nil {
			return "", err
		}
		if _, taken := s.contacts[id]; !taken {
			return id, nil
		}
	}
	return "", types.Duplicate(id)
}
