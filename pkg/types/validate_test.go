package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validContact() Contact {
	return Contact{Name: "Bob", Address: "2 Elm Rd", Email: "bob@example.com", Phone: "5551234"}
}

func TestValidateEmptyFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Contact)
	}{
		{"empty name", func(c *Contact) { c.Name = "" }},
		{"blank address", func(c *Contact) { c.Address = "   " }},
		{"empty email", func(c *Contact) { c.Email = "" }},
		{"tab-only phone", func(c *Contact) { c.Phone = "\t" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			tt.mutate(&c)

			assert.ErrorIs(t, ValidateForCreate(c, nil), ErrEmptyField)
			assert.ErrorIs(t, ValidateForUpdate(c), ErrEmptyField)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"bob@example.com", true},
		{"first.last+tag@mail.example.co", true},
		{"a-b_c&d*e@sub-domain.example.org", true},
		{"BOB@EXAMPLE.COM", true},
		{"bob@", false},
		{"bob.com", false},
		{"bob@example", false},
		{"bob@example.c", false},
		{"bob@example.abcdefgh", false},
		{"a..b@example.com", false},
		{".bob@example.com", false},
		{"bob@exa_mple.com", false},
		{"bob@example.c0m", false},
		{"bob,x@example.com", false},
		{"bob\n@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			c := validContact()
			c.Email = tt.email

			err := ValidateForUpdate(c)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			}
			assert.Equal(t, err, ValidateForCreate(c, nil))
		})
	}
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"5551234", true},
		{"0", true},
		{"555-1234", false},
		{"555 1234", false},
		{"+15551234", false},
		{"555123a", false},
		{"５５５", false},
		{"555,1234", false},
		{"555\r1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			c := validContact()
			c.Phone = tt.phone

			err := ValidateForCreate(c, nil)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidPhone)
			}
			assert.Equal(t, err, ValidateForUpdate(c))
		})
	}
}

func TestValidateReservedCharacters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Contact)
	}{
		{"comma in name", func(c *Contact) { c.Name = "Smith, Bob" }},
		{"comma in address", func(c *Contact) { c.Address = "2 Elm Rd, Springfield" }},
		{"line break in address", func(c *Contact) { c.Address = "2 Elm Rd\nSpringfield" }},
		{"carriage return in name", func(c *Contact) { c.Name = "Bob\rSmith" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContact()
			tt.mutate(&c)

			assert.ErrorIs(t, ValidateForCreate(c, nil), ErrReservedCharacter)
			assert.ErrorIs(t, ValidateForUpdate(c), ErrReservedCharacter)
		})
	}
}

func TestValidateForCreateDuplicates(t *testing.T) {
	existing := []Contact{{Name: "A", Address: "addr", Email: "a@x.com", Phone: "1"}}

	tests := []struct {
		name      string
		candidate Contact
		wantErr   error
	}{
		{
			name:      "same name",
			candidate: Contact{Name: "A", Address: "other", Email: "b@y.com", Phone: "2"},
			wantErr:   ErrDuplicateContact,
		},
		{
			name:      "same email only",
			candidate: Contact{Name: "B", Address: "other", Email: "a@x.com", Phone: "2"},
			wantErr:   ErrDuplicateContact,
		},
		{
			name:      "same phone only",
			candidate: Contact{Name: "B", Address: "other", Email: "b@y.com", Phone: "1"},
			wantErr:   ErrDuplicateContact,
		},
		{
			name:      "same name after trimming",
			candidate: Contact{Name: "  A ", Address: "other", Email: "b@y.com", Phone: "2"},
			wantErr:   ErrDuplicateContact,
		},
		{
			name:      "distinct contact",
			candidate: Contact{Name: "B", Address: "addr", Email: "b@y.com", Phone: "2"},
		},
		{
			name:      "name differs only by case",
			candidate: Contact{Name: "a", Address: "addr", Email: "b@y.com", Phone: "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForCreate(tt.candidate, existing)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateForUpdateSkipsDuplicates(t *testing.T) {
	c := Contact{Name: "A", Address: "addr", Email: "a@x.com", Phone: "1"}

	assert.ErrorIs(t, ValidateForCreate(c, []Contact{c}), ErrDuplicateContact)
	assert.NoError(t, ValidateForUpdate(c))
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrEmptyField))
	assert.True(t, IsValidation(ValidateForUpdate(Contact{})))
	assert.True(t, IsValidation(ErrDuplicateContact))
	assert.False(t, IsValidation(ErrIOFailure))
	assert.False(t, IsValidation(nil))
}
