// Package store keeps the ordered, in-memory contact sequence and keeps it
// synchronized with a types.Backend. Every successful mutation rewrites the
// backend before returning; a failed rewrite rolls the mutation back.
package store

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Store implements types.Book over a types.Backend.
type Store struct {
	mu       sync.Mutex
	backend  types.Backend
	contacts []types.Contact
	logger   *slog.Logger
}

var _ types.Book = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load, persist and mutation records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns an empty store over an attached backend. Call Load to read the
// persisted contacts.
func New(backend types.Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		contacts: []types.Contact{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory sequence with the backend's contents and
// returns a copy of it. On error the in-memory sequence is unchanged.
func (s *Store) Load() ([]types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contacts, err := s.backend.Load()
	if err != nil {
		s.logger.Error("load contacts", "err", err)
		return nil, fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}
	s.contacts = contacts
	s.logger.Debug("loaded contacts", "count", len(contacts))
	return slices.Clone(s.contacts), nil
}

// Contacts returns a copy of the current sequence.
func (s *Store) Contacts() []types.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.contacts)
}

// Filter returns the contacts matching query in store order.
func (s *Store) Filter(query string) []types.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.Filter(s.contacts, query)
}

// Insert validates candidate against the current sequence, appends it and
// persists. Fields are trimmed first.
func (s *Store) Insert(candidate types.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := candidate.Trimmed()
	if err := types.ValidateForCreate(c, s.contacts); err != nil {
		s.logger.Debug("insert rejected", "name", c.Name, "err", err)
		return err
	}

	prev := s.contacts
	s.contacts = append(slices.Clip(prev), c)
	if err := s.persistLocked(); err != nil {
		s.contacts = prev
		return err
	}
	s.logger.Debug("inserted contact", "name", c.Name, "count", len(s.contacts))
	return nil
}

// Update replaces the first contact equal to old with fields and persists.
// Duplicates are not checked. If old is not present, fields is still
// appended.
func (s *Store) Update(old, fields types.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := fields.Trimmed()
	if err := types.ValidateForUpdate(c); err != nil {
		s.logger.Debug("update rejected", "name", c.Name, "err", err)
		return err
	}

	prev := s.contacts
	next := slices.Clone(prev)
	if i := slices.Index(next, old); i >= 0 {
		next = slices.Delete(next, i, i+1)
	} else {
		s.logger.Warn("updated contact not found, appending", "name", old.Name)
	}
	s.contacts = append(next, c)
	if err := s.persistLocked(); err != nil {
		s.contacts = prev
		return err
	}
	s.logger.Debug("updated contact", "old", old.Name, "new", c.Name)
	return nil
}

// Delete removes the first contact equal to record and persists. Deleting a
// contact that is not present still persists and succeeds.
func (s *Store) Delete(record types.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.contacts
	next := slices.Clone(prev)
	i := slices.Index(next, record)
	if i >= 0 {
		next = slices.Delete(next, i, i+1)
	}
	s.contacts = next
	if err := s.persistLocked(); err != nil {
		s.contacts = prev
		return err
	}
	s.logger.Debug("deleted contact", "name", record.Name, "found", i >= 0)
	return nil
}

// Persist rewrites the backend from the in-memory sequence.
func (s *Store) Persist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persistLocked()
}

// persistLocked writes s.contacts to the backend.
// The caller must hold s.mu.
func (s *Store) persistLocked() error {
	if err := s.backend.Save(s.contacts); err != nil {
		s.logger.Error("persist contacts", "count", len(s.contacts), "err", err)
		return fmt.Errorf("%w: %w", types.ErrIOFailure, err)
	}
	s.logger.Debug("persisted contacts", "count", len(s.contacts))
	return nil
}

// LoadAll implements types.Book.
func (s *Store) LoadAll() ([]types.Contact, error) {
	return s.Load()
}

// Search implements types.Book.
func (s *Store) Search(query string) []types.Contact {
	return s.Filter(query)
}

// AddContact implements types.Book.
func (s *Store) AddContact(name, address, email, phone string) error {
	return s.Insert(types.NewContact(name, address, email, phone))
}

// EditContact implements types.Book.
func (s *Store) EditContact(original types.Contact, name, address, email, phone string) error {
	return s.Update(original, types.NewContact(name, address, email, phone))
}

// RemoveContact implements types.Book.
func (s *Store) RemoveContact(record types.Contact) error {
	return s.Delete(record)
}

// Close detaches the backend.
func (s *Store) Close() error {
	return s.backend.Detach()
}
