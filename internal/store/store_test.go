package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/contacts/internal/textfile"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// memBackend is an in-memory types.Backend whose Save can be made to fail.
type memBackend struct {
	saved   []types.Contact
	saves   int
	saveErr error
	loadErr error
}

func (m *memBackend) Attach(types.Config) error { return nil }
func (m *memBackend) Detach() error             { return nil }

func (m *memBackend) Load() ([]types.Contact, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]types.Contact{}, m.saved...), nil
}

func (m *memBackend) Save(contacts []types.Contact) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append([]types.Contact{}, contacts...)
	return nil
}

var (
	alice = types.Contact{Name: "Alice Smith", Address: "1 Main St", Email: "alice@example.com", Phone: "5550001"}
	bob   = types.Contact{Name: "Bob Jones", Address: "2 Elm Rd", Email: "bob@example.org", Phone: "5550002"}
	carol = types.Contact{Name: "Carol White", Address: "3 Oak Ave", Email: "carol@mail.net", Phone: "5550003"}
)

func newFileStore(t *testing.T, path string) *Store {
	t.Helper()
	b := textfile.NewBackend()
	require.NoError(t, b.Attach(types.Config{Backend: types.BackendText, DataFile: path}))
	s := New(b)
	t.Cleanup(func() { s.Close() })
	_, err := s.Load()
	require.NoError(t, err)
	return s
}

func seeded(t *testing.T, contacts ...types.Contact) (*Store, *memBackend) {
	t.Helper()
	b := &memBackend{}
	s := New(b)
	for _, c := range contacts {
		require.NoError(t, s.Insert(c))
	}
	return s, b
}

func TestInsertThenReloadPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.txt")
	s := newFileStore(t, path)

	require.NoError(t, s.Insert(carol))
	require.NoError(t, s.Insert(alice))
	require.NoError(t, s.Insert(bob))

	restarted := newFileStore(t, path)
	assert.Equal(t, []types.Contact{carol, alice, bob}, restarted.Contacts())
}

func TestInsertTrimsFields(t *testing.T) {
	s, b := seeded(t)

	require.NoError(t, s.Insert(types.Contact{Name: " Dan ", Address: " 4 Pine Ct", Email: "dan@x.com ", Phone: " 4 "}))

	want := types.Contact{Name: "Dan", Address: "4 Pine Ct", Email: "dan@x.com", Phone: "4"}
	assert.Equal(t, []types.Contact{want}, s.Contacts())
	assert.Equal(t, []types.Contact{want}, b.saved)
}

func TestInsertValidationLeavesStateUnchanged(t *testing.T) {
	s, b := seeded(t, alice)
	saves := b.saves

	tests := []struct {
		name      string
		candidate types.Contact
		wantErr   error
	}{
		{"empty field", types.Contact{Name: "Dan", Address: "", Email: "dan@x.com", Phone: "4"}, types.ErrEmptyField},
		{"bad email", types.Contact{Name: "Dan", Address: "a", Email: "dan@", Phone: "4"}, types.ErrInvalidEmail},
		{"bad phone", types.Contact{Name: "Dan", Address: "a", Email: "dan@x.com", Phone: "555-1234"}, types.ErrInvalidPhone},
		{"duplicate name", types.Contact{Name: alice.Name, Address: "a", Email: "dan@x.com", Phone: "4"}, types.ErrDuplicateContact},
		{"duplicate email", types.Contact{Name: "Dan", Address: "a", Email: alice.Email, Phone: "4"}, types.ErrDuplicateContact},
		{"duplicate phone", types.Contact{Name: "Dan", Address: "a", Email: "dan@x.com", Phone: alice.Phone}, types.ErrDuplicateContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Insert(tt.candidate)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, []types.Contact{alice}, s.Contacts())
			assert.Equal(t, saves, b.saves, "validation failures must not persist")
		})
	}
}

func TestUpdateReplacesAndAppends(t *testing.T) {
	s, b := seeded(t, alice, bob, carol)

	edited := alice
	edited.Address = "10 New St"
	require.NoError(t, s.Update(alice, edited))

	assert.Equal(t, []types.Contact{bob, carol, edited}, s.Contacts())
	assert.Equal(t, s.Contacts(), b.saved)
}

func TestUpdateSkipsDuplicateCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.txt")
	s := newFileStore(t, path)
	require.NoError(t, s.Insert(alice))
	require.NoError(t, s.Insert(bob))

	edited := bob
	edited.Email = alice.Email
	require.NoError(t, s.Update(bob, edited))

	restarted := newFileStore(t, path)
	assert.Equal(t, []types.Contact{alice, edited}, restarted.Contacts())
}

func TestUpdateValidationFailure(t *testing.T) {
	s, b := seeded(t, alice)
	saves := b.saves

	edited := alice
	edited.Phone = "call me"
	err := s.Update(alice, edited)

	assert.ErrorIs(t, err, types.ErrInvalidPhone)
	assert.Equal(t, []types.Contact{alice}, s.Contacts())
	assert.Equal(t, saves, b.saves)
}

func TestUpdateMissingOriginalAppends(t *testing.T) {
	s, _ := seeded(t, alice)

	require.NoError(t, s.Update(bob, carol))
	assert.Equal(t, []types.Contact{alice, carol}, s.Contacts())
}

func TestUpdateRemovesOnlyFirstEqual(t *testing.T) {
	s, _ := seeded(t, alice, bob)
	// An update may create an exact copy of another record.
	require.NoError(t, s.Update(bob, alice))
	require.Equal(t, []types.Contact{alice, alice}, s.Contacts())

	require.NoError(t, s.Update(alice, carol))
	assert.Equal(t, []types.Contact{alice, carol}, s.Contacts())
}

func TestDelete(t *testing.T) {
	s, b := seeded(t, alice, bob, carol)

	require.NoError(t, s.Delete(bob))
	assert.Equal(t, []types.Contact{alice, carol}, s.Contacts())
	assert.Equal(t, []types.Contact{alice, carol}, b.saved)
}

func TestDeleteMissingStillPersists(t *testing.T) {
	s, b := seeded(t, alice)
	saves := b.saves

	require.NoError(t, s.Delete(bob))
	assert.Equal(t, []types.Contact{alice}, s.Contacts())
	assert.Equal(t, saves+1, b.saves)
}

func TestPersistFailureRollsBack(t *testing.T) {
	ioErr := errors.New("disk full")

	t.Run("insert", func(t *testing.T) {
		s, b := seeded(t, alice)
		b.saveErr = ioErr

		err := s.Insert(bob)
		assert.ErrorIs(t, err, types.ErrIOFailure)
		assert.ErrorIs(t, err, ioErr)
		assert.Equal(t, []types.Contact{alice}, s.Contacts())
	})

	t.Run("update", func(t *testing.T) {
		s, b := seeded(t, alice, bob)
		b.saveErr = ioErr

		err := s.Update(alice, carol)
		assert.ErrorIs(t, err, types.ErrIOFailure)
		assert.Equal(t, []types.Contact{alice, bob}, s.Contacts())
	})

	t.Run("delete", func(t *testing.T) {
		s, b := seeded(t, alice, bob)
		b.saveErr = ioErr

		err := s.Delete(alice)
		assert.ErrorIs(t, err, types.ErrIOFailure)
		assert.Equal(t, []types.Contact{alice, bob}, s.Contacts())
	})

	t.Run("store stays usable", func(t *testing.T) {
		s, b := seeded(t, alice)
		b.saveErr = ioErr
		require.Error(t, s.Insert(bob))

		b.saveErr = nil
		require.NoError(t, s.Insert(bob))
		assert.Equal(t, []types.Contact{alice, bob}, b.saved)
	})
}

func TestLoadFailure(t *testing.T) {
	s, b := seeded(t, alice)
	b.loadErr = types.ErrMalformedRecord

	_, err := s.Load()
	assert.ErrorIs(t, err, types.ErrIOFailure)
	assert.ErrorIs(t, err, types.ErrMalformedRecord)
	assert.Equal(t, []types.Contact{alice}, s.Contacts(), "failed load keeps memory")
}

func TestContactsReturnsCopy(t *testing.T) {
	s, _ := seeded(t, alice)

	got := s.Contacts()
	got[0].Name = "Mallory"

	assert.Equal(t, alice, s.Contacts()[0])
}

func TestSearch(t *testing.T) {
	s, _ := seeded(t, alice, bob, carol)

	assert.Equal(t, []types.Contact{alice, bob, carol}, s.Search(""))
	assert.Equal(t, []types.Contact{alice}, s.Search("alice"))
	assert.Equal(t, []types.Contact{alice}, s.Search("ALICE"))
	assert.Empty(t, s.Search("nobody"))
}

func TestBookInterface(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contacts.txt")
	var book types.Book = newFileStore(t, path)

	require.NoError(t, book.AddContact(" Alice Smith", "1 Main St", "alice@example.com", "5550001"))
	require.NoError(t, book.AddContact("Bob Jones", "2 Elm Rd", "bob@example.org", "5550002"))
	assert.ErrorIs(t, book.AddContact("Alice Smith", "x", "z@z.com", "9"), types.ErrDuplicateContact)

	require.NoError(t, book.EditContact(alice, "Alice Smith", "9 Far Rd", "alice@example.com", "5550001"))
	require.NoError(t, book.RemoveContact(bob))

	all, err := book.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, []types.Contact{{Name: "Alice Smith", Address: "9 Far Rd", Email: "alice@example.com", Phone: "5550001"}}, all)
}
