// Config loading for the contacts CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Config keys.
	cfgKeyBackend   = "backend"
	cfgKeyDataFile  = "data_file"
	cfgKeyOutput    = "output"
	cfgKeyLogLevel  = "log.level"
	cfgKeyLogFormat = "log.format"
	cfgKeyLogFile   = "log.file"

	defaultOutput    = outputTable
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// envBindings maps config keys to the environment variables that override
// config.yaml. data_file is resolved by the paths package instead.
var envBindings = map[string]string{
	cfgKeyBackend:   "CONTACTS_BACKEND",
	cfgKeyOutput:    "CONTACTS_OUTPUT",
	cfgKeyLogLevel:  "CONTACTS_LOG_LEVEL",
	cfgKeyLogFormat: "CONTACTS_LOG_FORMAT",
	cfgKeyLogFile:   "CONTACTS_LOG_FILE",
}

// defaultConfigYAML is the content written to config.yaml on first run.
const defaultConfigYAML = `# Contacts CLI configuration

# Storage backend: text or sqlite
backend: text

# Contact data file (optional; overridable by --file)
# data_file: contacts.txt

# Output format for list and show: table, json or yaml
output: table

log:
  level: warn
  format: text
  # file: contacts.log
`

// loadConfig reads config.yaml from configDir using Viper. It creates the
// config directory and a default config.yaml on first run. A missing
// config.yaml is not an error. Values resolve as flag > env > config.yaml >
// default.
func loadConfig(configDir string, flags *pflag.FlagSet) (*viper.Viper, error) {
	if err := ensureConfigDir(configDir); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}

	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetDefault(cfgKeyBackend, types.BackendText)
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetDefault(cfgKeyLogFile, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}
	if flags != nil {
		if err := v.BindPFlag(cfgKeyBackend, flags.Lookup("backend")); err != nil {
			return nil, fmt.Errorf("bind flag backend: %w", err)
		}
		if err := v.BindPFlag(cfgKeyOutput, flags.Lookup("output")); err != nil {
			return nil, fmt.Errorf("bind flag output: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// ensureConfigDir creates the config directory if it does not exist.
func ensureConfigDir(configDir string) error {
	return os.MkdirAll(configDir, 0o755)
}

// ensureDefaultConfigFile creates a default config.yaml if the file does not
// exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
