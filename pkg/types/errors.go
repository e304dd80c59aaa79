package types

import "errors"

// Validation errors. Callers recover from these locally; the store is left
// unchanged.
var (
	ErrEmptyField        = errors.New("all fields must be filled out")
	ErrReservedCharacter = errors.New("fields must not contain commas or line breaks")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidPhone      = errors.New("phone number must contain only digits")
	ErrDuplicateContact  = errors.New("contact with the same name, email, or phone already exists")
)

// Storage errors.
var (
	ErrIOFailure       = errors.New("contact file I/O failed")
	ErrMalformedRecord = errors.New("malformed contact record")
	ErrContactNotFound = errors.New("contact not found")
)

// IsValidation reports whether err is one of the validation errors.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyField) ||
		errors.Is(err, ErrReservedCharacter) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrDuplicateContact)
}
