// Package contacts provides the public API for opening a contact book.
// It selects and attaches a storage backend, loads the stored contacts, and
// returns a types.Book while keeping the implementation internal.
package contacts

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/contacts/internal/sqlite"
	"github.com/mesh-intelligence/contacts/internal/store"
	"github.com/mesh-intelligence/contacts/internal/textfile"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// NewBackend creates an unattached backend for the named backend type.
// Returns ErrBackendEmpty or ErrBackendUnknown for names Validate rejects.
func NewBackend(name string) (types.Backend, error) {
	switch name {
	case types.BackendText:
		return textfile.NewBackend(), nil
	case types.BackendSQLite:
		return sqlite.NewBackend(), nil
	case "":
		return nil, types.ErrBackendEmpty
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, name)
	}
}

// Open attaches the backend described by config, loads its contacts and
// returns the book. A nil logger discards log output. The caller must Close
// the book.
//
// Example:
//
//	book, err := contacts.Open(types.Config{
//	    Backend:  types.BackendText,
//	    DataFile: "contacts.txt",
//	}, nil)
//	defer book.Close()
func Open(config types.Config, logger *slog.Logger) (types.Book, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	backend, err := NewBackend(config.Backend)
	if err != nil {
		return nil, err
	}
	if err := backend.Attach(config); err != nil {
		return nil, fmt.Errorf("attach %s backend: %w", config.Backend, err)
	}

	if logger != nil {
		logger = logger.With("backend", config.Backend, "file", config.Path())
	}
	s := store.New(backend, store.WithLogger(logger))
	if _, err := s.Load(); err != nil {
		backend.Detach()
		return nil, fmt.Errorf("load contacts: %w", err)
	}
	return s, nil
}
