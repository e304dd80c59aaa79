// Package paths resolves the configuration directory and the contact data
// file location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// appName names the per-user configuration directory.
const appName = "contacts"

// Environment variable names for location overrides.
const (
	EnvConfigDir = "CONTACTS_CONFIG_DIR"
	EnvDataFile  = "CONTACTS_DATA_FILE"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/contacts (fallback ~/.config/contacts)
// macOS:   ~/Library/Application Support/contacts
// Windows: %APPDATA%/contacts
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > CONTACTS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveDataFile returns the contact data file following the precedence chain:
// flag > configYAMLValue > CONTACTS_DATA_FILE env > the backend's default
// file name in the working directory.
func ResolveDataFile(flag, configYAMLValue, backend string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return filepath.Abs(env)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, types.DefaultDataFile(backend)), nil
}
