package types

import "errors"

// Config holds backend selection and the location of the contact data.
type Config struct {
	Backend  string `json:"backend" yaml:"backend" mapstructure:"backend"`
	DataFile string `json:"data_file" yaml:"data_file" mapstructure:"data_file"`
}

// Supported backend names.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Default data file names, relative to the working directory.
const (
	DefaultTextFile   = "contacts.txt"
	DefaultSQLiteFile = "contacts.db"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendText:   true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. An empty DataFile is valid; backends fall
// back to DefaultDataFile.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	return nil
}

// DefaultDataFile returns the default file name for the given backend.
func DefaultDataFile(backend string) string {
	if backend == BackendSQLite {
		return DefaultSQLiteFile
	}
	return DefaultTextFile
}

// Path returns DataFile, or the backend's default when DataFile is empty.
func (c Config) Path() string {
	if c.DataFile != "" {
		return c.DataFile
	}
	return DefaultDataFile(c.Backend)
}
