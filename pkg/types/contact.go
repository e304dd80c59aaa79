package types

import (
	"strings"
)

// FieldSeparator joins the four contact fields on a persisted line.
const FieldSeparator = ","

// FieldNames lists the contact fields in their persisted order.
var FieldNames = []string{"name", "address", "email", "phone"}

// Contact is one entry in the contact book. Contacts are values: the store
// replaces a record wholesale rather than editing it in place.
type Contact struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Email   string `json:"email" yaml:"email"`
	Phone   string `json:"phone" yaml:"phone"`
}

// NewContact builds a contact with surrounding whitespace trimmed from every
// field.
func NewContact(name, address, email, phone string) Contact {
	return Contact{
		Name:    strings.TrimSpace(name),
		Address: strings.TrimSpace(address),
		Email:   strings.TrimSpace(email),
		Phone:   strings.TrimSpace(phone),
	}
}

// Trimmed returns a copy of c with surrounding whitespace removed.
func (c Contact) Trimmed() Contact {
	return NewContact(c.Name, c.Address, c.Email, c.Phone)
}

// Fields returns the field values in FieldNames order.
func (c Contact) Fields() []string {
	return []string{c.Name, c.Address, c.Email, c.Phone}
}

// Line serializes the contact as name,address,email,phone.
// No escaping is applied; the validator keeps separators out of fields.
func (c Contact) Line() string {
	return strings.Join(c.Fields(), FieldSeparator)
}

// String implements fmt.Stringer.
func (c Contact) String() string {
	return c.Line()
}

// ParseContact parses a persisted line. Empty trailing fields are kept, so
// "a,b,c," yields an empty phone. Any field count other than four returns
// ErrMalformedRecord.
func ParseContact(line string) (Contact, error) {
	parts := strings.Split(line, FieldSeparator)
	if len(parts) != len(FieldNames) {
		return Contact{}, ErrMalformedRecord
	}
	return Contact{
		Name:    parts[0],
		Address: parts[1],
		Email:   parts[2],
		Phone:   parts[3],
	}, nil
}
