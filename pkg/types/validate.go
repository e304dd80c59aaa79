package types

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_+&*-]+(?:\.[a-zA-Z0-9_+&*-]+)*@(?:[a-zA-Z0-9-]+\.)+[a-zA-Z]{2,7}$`)
	phonePattern = regexp.MustCompile(`^[0-9]+$`)
)

// reservedChars cannot appear in a field because the line format does not
// escape them.
const reservedChars = FieldSeparator + "\r\n"

// ValidateForCreate checks a new contact against the field rules and against
// existing. A contact is a duplicate when any existing record shares its
// name, its email, or its phone; one match is enough.
func ValidateForCreate(candidate Contact, existing []Contact) error {
	c := candidate.Trimmed()
	if err := validateFields(c); err != nil {
		return err
	}
	for _, e := range existing {
		if e.Name == c.Name || e.Email == c.Email || e.Phone == c.Phone {
			return ErrDuplicateContact
		}
	}
	return nil
}

// ValidateForUpdate checks the field rules only. Updates are never checked
// for duplicates, so an edit may leave two records sharing a name, email or
// phone.
func ValidateForUpdate(candidate Contact) error {
	return validateFields(candidate.Trimmed())
}

func validateFields(c Contact) error {
	for i, v := range c.Fields() {
		if v == "" {
			return fmt.Errorf("%w: %s is empty", ErrEmptyField, FieldNames[i])
		}
	}
	if !emailPattern.MatchString(c.Email) {
		return ErrInvalidEmail
	}
	if !phonePattern.MatchString(c.Phone) {
		return ErrInvalidPhone
	}
	// Email and phone patterns already exclude the reserved characters.
	for i, v := range c.Fields() {
		if strings.ContainsAny(v, reservedChars) {
			return fmt.Errorf("%w: %s", ErrReservedCharacter, FieldNames[i])
		}
	}
	return nil
}
