package types

import "strings"

// Filter returns, in order, every contact whose serialized line contains
// query case-insensitively. A blank query returns all contacts. The result is
// always a fresh slice.
func Filter(contacts []Contact, query string) []Contact {
	q := strings.ToLower(strings.TrimSpace(query))
	result := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if q == "" || strings.Contains(strings.ToLower(c.Line()), q) {
			result = append(result, c)
		}
	}
	return result
}

// Lookup returns the first contact whose name, email or phone equals key.
// Returns ErrContactNotFound if none does.
func Lookup(contacts []Contact, key string) (Contact, error) {
	k := strings.TrimSpace(key)
	if k == "" {
		return Contact{}, ErrContactNotFound
	}
	for _, c := range contacts {
		if c.Name == k || c.Email == k || c.Phone == k {
			return c, nil
		}
	}
	return Contact{}, ErrContactNotFound
}
