// Package sqlite implements the SQLite storage backend for contacts. The
// database file is the durable copy; each Save replaces the stored sequence
// inside one transaction.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Backend implements types.Backend using SQLite.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

var _ types.Backend = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the database file and ensures the schema exists.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dbPath := config.Path()
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	// One connection keeps every statement on the same file handle.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createContacts); err != nil {
		db.Close()
		return fmt.Errorf("creating schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the database. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}

	b.attached = false
	return nil
}

// Load returns every stored contact ordered by position.
func (b *Backend) Load() ([]types.Contact, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrDetached
	}

	rows, err := b.db.Query(selectContacts)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	contacts := []types.Contact{}
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(&c.Name, &c.Address, &c.Email, &c.Phone); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return contacts, nil
}

// Save replaces all rows with contacts in one transaction. On failure the
// previous rows are kept.
func (b *Backend) Save(contacts []types.Contact) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(deleteContacts); err != nil {
		return fmt.Errorf("clearing contacts: %w", err)
	}

	stmt, err := tx.Prepare(insertContact)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range contacts {
		if _, err := stmt.Exec(i, c.Name, c.Address, c.Email, c.Phone); err != nil {
			return fmt.Errorf("inserting contact %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing save transaction: %w", err)
	}
	return nil
}
