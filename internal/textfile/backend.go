// Package textfile implements the flat-file contact backend: one contact per
// line, fields joined by commas, no header and no escaping.
package textfile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// filePerm is applied to the data file on every rewrite.
const filePerm = 0o644

// Backend implements types.Backend over a plain text file. The file is opened,
// read or written fully, and closed inside each call; no handle is held
// between calls.
type Backend struct {
	mu       sync.Mutex
	attached bool
	path     string
}

var _ types.Backend = (*Backend)(nil)

// NewBackend creates a text backend. It is not attached; call Attach with a
// Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Path returns the attached data file path, or "" when detached.
func (b *Backend) Path() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.path
}

// Attach validates config and records the data file path. The parent
// directory is created if needed; the file itself is created on first Save.
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

	path := config.Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	b.path = path
	b.attached = true
	return nil
}

// Detach forgets the data file. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.attached = false
	b.path = ""
	return nil
}

// Load reads every non-empty line of the data file in order. A missing file
// yields an empty slice. A line that does not split into exactly four fields
// returns ErrMalformedRecord naming the line number.
func (b *Backend) Load() ([]types.Contact, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil, types.ErrDetached
	}
	return readContacts(b.path)
}

// Save rewrites the whole data file from contacts, one line each.
func (b *Backend) Save(contacts []types.Contact) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrDetached
	}
	return writeContacts(b.path, contacts)
}

// readContacts parses path line by line. Line endings are CRLF-tolerant.
func readContacts(path string) ([]types.Contact, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []types.Contact{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	contacts := []types.Contact{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		c, err := types.ParseContact(line)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, lineNo, err)
		}
		contacts = append(contacts, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return contacts, nil
}

// writeContacts atomically replaces path using the temp-file, fsync, rename
// pattern, so a failed write never leaves a truncated data file behind.
func writeContacts(path string, contacts []types.Contact) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".contacts-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(format string, err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf(format, err)
	}

	w := bufio.NewWriter(tmp)
	for _, c := range contacts {
		if _, err := w.WriteString(c.Line()); err != nil {
			return fail("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fail("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fail("flushing buffer: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return fail("setting file mode: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
