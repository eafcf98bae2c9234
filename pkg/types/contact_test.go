package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact(t *testing.T) *Contact {
	t.Helper()
	c, err := NewContact("ID001", "Alice", "Smith", "1234567890", "100 First Ave")
	require.NoError(t, err)
	return c
}

func TestNewContact(t *testing.T) {
	tests := []struct {
		name      string
		contactID string
		firstName string
		lastName  string
		phone     string
		address   string
		wantErr   error
		wantField string
	}{
		{
			name:      "all fields valid",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "1234567890",
			address:   "100 First Ave",
		},
		{
			name:      "fields at their upper bounds",
			contactID: "ABCDEFGHIJ",
			firstName: "Maximilian",
			lastName:  "Vanderbilt",
			phone:     "0000000000",
			address:   strings.Repeat("a", 30),
		},
		{
			name:      "empty names and address accepted",
			contactID: "",
			phone:     "5555555555",
		},
		{
			name:      "multibyte names counted by character",
			contactID: "ÄÖÜäöüßéèê",
			firstName: "Zoë",
			lastName:  "Ångström",
			phone:     "1234567890",
			address:   "Straße 1",
		},
		{
			name:      "contact ID too long",
			contactID: "ABCDEFGHIJK",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "1234567890",
			address:   "100 First Ave",
			wantErr:   ErrInvalidContactID,
			wantField: FieldContactID,
		},
		{
			name:      "first name too long",
			contactID: "ID001",
			firstName: "Alexandrina",
			lastName:  "Smith",
			phone:     "1234567890",
			address:   "100 First Ave",
			wantErr:   ErrInvalidFirstName,
			wantField: FieldFirstName,
		},
		{
			name:      "last name too long",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smithsonian",
			phone:     "1234567890",
			address:   "100 First Ave",
			wantErr:   ErrInvalidLastName,
			wantField: FieldLastName,
		},
		{
			name:      "phone with nine digits",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "123456789",
			address:   "100 First Ave",
			wantErr:   ErrInvalidPhone,
			wantField: FieldPhone,
		},
		{
			name:      "phone with eleven digits",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "12345678901",
			address:   "100 First Ave",
			wantErr:   ErrInvalidPhone,
			wantField: FieldPhone,
		},
		{
			name:      "phone with letters",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "12345abcde",
			address:   "100 First Ave",
			wantErr:   ErrInvalidPhone,
			wantField: FieldPhone,
		},
		{
			name:      "phone with leading plus",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "+123456789",
			address:   "100 First Ave",
			wantErr:   ErrInvalidPhone,
			wantField: FieldPhone,
		},
		{
			name:      "phone with separators",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "123-456-78",
			address:   "100 First Ave",
			wantErr:   ErrInvalidPhone,
			wantField: FieldPhone,
		},
		{
			name:      "phone with whitespace",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "123 456 78",
			address:   "100 First Ave",
			wantErr:   ErrInvalidPhone,
			wantField: FieldPhone,
		},
		{
			name:      "phone with fullwidth digits",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "１２３４５６７８９０",
			address:   "100 First Ave",
			wantErr:   ErrInvalidPhone,
			wantField: FieldPhone,
		},
		{
			name:      "address too long",
			contactID: "ID001",
			firstName: "Alice",
			lastName:  "Smith",
			phone:     "1234567890",
			address:   strings.Repeat("a", 31),
			wantErr:   ErrInvalidAddress,
			wantField: FieldAddress,
		},
		{
			name:      "contact ID checked before other fields",
			contactID: "ABCDEFGHIJK",
			firstName: "Alexandrina",
			phone:     "bad",
			wantErr:   ErrInvalidContactID,
			wantField: FieldContactID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContact(tt.contactID, tt.firstName, tt.lastName, tt.phone, tt.address)

			if tt.wantErr != nil {
				assert.Nil(t, c)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, tt.wantField, verr.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.contactID, c.ContactID())
			assert.Equal(t, tt.firstName, c.FirstName())
			assert.Equal(t, tt.lastName, c.LastName())
			assert.Equal(t, tt.phone, c.Phone())
			assert.Equal(t, tt.address, c.Address())
		})
	}
}

func TestContactSetters(t *testing.T) {
	tests := []struct {
		name    string
		set     func(c *Contact, v string) error
		get     func(c *Contact) string
		valid   string
		invalid []string
		wantErr error
	}{
		{
			name:    "first name",
			set:     (*Contact).SetFirstName,
			get:     (*Contact).FirstName,
			valid:   "Marcy",
			invalid: []string{"Christopher", strings.Repeat("x", 11)},
			wantErr: ErrInvalidFirstName,
		},
		{
			name:    "last name",
			set:     (*Contact).SetLastName,
			get:     (*Contact).LastName,
			valid:   "Jones",
			invalid: []string{"Fitzgeralds", strings.Repeat("é", 11)},
			wantErr: ErrInvalidLastName,
		},
		{
			name:  "phone",
			set:   (*Contact).SetPhone,
			get:   (*Contact).Phone,
			valid: "5555555555",
			invalid: []string{
				"",
				"555555555",
				"55555555555",
				"+155555555",
				"555-555-55",
				"555 555 55",
				"5555555555\n",
				"１２３４５６７８９０",
			},
			wantErr: ErrInvalidPhone,
		},
		{
			name:    "address",
			set:     (*Contact).SetAddress,
			get:     (*Contact).Address,
			valid:   "200 Second St",
			invalid: []string{strings.Repeat("a", 31)},
			wantErr: ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" valid value is committed", func(t *testing.T) {
			c := validContact(t)
			before := c.Snapshot()

			require.NoError(t, tt.set(c, tt.valid))
			assert.Equal(t, tt.valid, tt.get(c))
			assert.Equal(t, before.ContactID, c.ContactID(), "contact ID must not change")
		})

		for _, bad := range tt.invalid {
			t.Run(tt.name+" rejects "+bad, func(t *testing.T) {
				c := validContact(t)
				before := c.Snapshot()

				err := tt.set(c, bad)

				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrValidation)
				assert.Equal(t, before, c.Snapshot(), "no field should change on error")
			})
		}
	}
}

func TestContactGettersAreIdempotent(t *testing.T) {
	c := validContact(t)

	assert.Equal(t, c.FirstName(), c.FirstName())
	assert.Equal(t, c.Phone(), c.Phone())
	assert.Equal(t, c.Snapshot(), c.Snapshot())
}

func TestContactSnapshotIsDetached(t *testing.T) {
	c := validContact(t)

	rec := c.Snapshot()
	rec.FirstName = "Changed"

	assert.Equal(t, "Alice", c.FirstName())
}

func TestContactStringOmitsPhoneAndAddress(t *testing.T) {
	c := validContact(t)

	s := c.String()
	assert.Contains(t, s, "ID001")
	assert.NotContains(t, s, c.Phone())
	assert.NotContains(t, s, c.Address())
}
