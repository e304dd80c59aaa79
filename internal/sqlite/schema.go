package sqlite

// createContacts keeps one row per contact. position carries the store
// order; rows are rewritten wholesale on every save.
const createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    position INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL
);`

const (
	selectContacts = `SELECT name, address, email, phone FROM contacts ORDER BY position`
	deleteContacts = `DELETE FROM contacts`
	insertContact  = `INSERT INTO contacts (position, name, address, email, phone) VALUES (?, ?, ?, ?, ?)`
)
