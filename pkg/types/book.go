package types

import "errors"

// Backend persists the full, ordered contact sequence. Callers attach to a
// backend, load and save whole sequences, and detach when done.
type Backend interface {
	// Attach prepares the backend described by config.
	// Returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent.
	// After Detach, Load and Save return ErrDetached.
	Detach() error

	// Load returns every stored contact in persisted order. A backend with
	// nothing stored yet returns an empty slice and no error.
	Load() ([]Contact, error)

	// Save replaces the stored sequence with contacts.
	Save(contacts []Contact) error
}

// Book is the interface a presentation shell drives. Every mutating call
// leaves memory and storage consistent before it returns.
type Book interface {
	// LoadAll reads storage and returns every contact in order.
	LoadAll() ([]Contact, error)

	// Search returns the contacts matching query; see Filter.
	Search(query string) []Contact

	// AddContact creates a contact after ValidateForCreate.
	AddContact(name, address, email, phone string) error

	// EditContact replaces original with the given fields after
	// ValidateForUpdate.
	EditContact(original Contact, name, address, email, phone string) error

	// RemoveContact deletes the first contact equal to record. Removing a
	// contact that is not present succeeds.
	RemoveContact(record Contact) error

	// Close detaches the underlying backend.
	Close() error
}

// Backend lifecycle errors.
var (
	ErrDetached        = errors.New("backend is detached")
	ErrAlreadyAttached = errors.New("backend is already attached")
)
