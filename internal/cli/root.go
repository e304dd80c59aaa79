// Package cli implements the contacts command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/contacts/internal/export"
	"github.com/mesh-intelligence/contacts/internal/logging"
	"github.com/mesh-intelligence/contacts/internal/paths"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataFile  string
	backend   string
	output    string
}

// app carries the state one invocation of the root command shares with its
// subcommands. It is filled in by the root's PersistentPreRunE.
type app struct {
	flags     rootFlags
	configDir string
	config    *viper.Viper
	logger    *slog.Logger
	logCloser io.Closer
}

func newApp() *app {
	return &app{logger: slog.New(slog.DiscardHandler)}
}

// close releases the log destination opened by setup.
func (a *app) close() error {
	if a.logCloser == nil {
		return nil
	}
	err := a.logCloser.Close()
	a.logCloser = nil
	return err
}

// userError marks an error caused by the invocation rather than the system.
type userError struct{ err error }

func (e userError) Error() string { return e.err.Error() }
func (e userError) Unwrap() error { return e.err }

// NewRootCmd creates the top-level "contacts" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "contacts",
		Short: "A single-user contact book",
		Long: `Contacts keeps an ordered list of contacts (name, address, email, phone)
in a flat text file, one contact per line.`,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/contacts)")
	root.PersistentFlags().StringVar(&a.flags.dataFile, "file", "", "contact data file (default: ./contacts.txt)")
	root.PersistentFlags().StringVar(&a.flags.backend, "backend", "", "storage backend: text or sqlite")
	root.PersistentFlags().StringVarP(&a.flags.output, "output", "o", "", "output format: table, json or yaml")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return userError{err}
	})

	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newEditCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newBrowseCmd(a))
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command with args and returns the process exit code.
// Errors are printed to stderr. The log file, if any, is closed before
// returning.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp()
	defer a.close()

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// exitCode maps err to a process exit code.
func exitCode(err error) int {
	var ue userError
	switch {
	case err == nil:
		return exitSuccess
	case errors.As(err, &ue),
		types.IsValidation(err),
		errors.Is(err, types.ErrContactNotFound),
		errors.Is(err, types.ErrBackendEmpty),
		errors.Is(err, types.ErrBackendUnknown),
		errors.Is(err, export.ErrUnknownFormat),
		errors.Is(err, errUnknownOutput):
		return exitUserError
	default:
		return exitSysError
	}
}

// setup resolves the configuration directory, loads config.yaml and builds
// the logger for this run.
func (a *app) setup(cmd *cobra.Command) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	v, err := loadConfig(configDir, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	a.configDir = configDir
	a.config = v

	opts := logging.Options{
		Level:  v.GetString(cfgKeyLogLevel),
		File:   v.GetString(cfgKeyLogFile),
		Format: v.GetString(cfgKeyLogFormat),
	}
	logger, closer := logging.New(&opts, cmd.ErrOrStderr())
	a.close()
	a.logCloser = closer
	a.logger = logger.With("run", runID())
	a.logger.Debug("loaded config", "config_dir", configDir, "command", cmd.Name())
	return nil
}

// bookConfig resolves the backend and data file for this run.
func (a *app) bookConfig() (types.Config, error) {
	backend := a.config.GetString(cfgKeyBackend)
	dataFile, err := paths.ResolveDataFile(a.flags.dataFile, a.config.GetString(cfgKeyDataFile), backend)
	if err != nil {
		return types.Config{}, fmt.Errorf("resolve data file: %w", err)
	}
	cfg := types.Config{Backend: backend, DataFile: dataFile}
	if err := cfg.Validate(); err != nil {
		return types.Config{}, fmt.Errorf("%w: %q", err, backend)
	}
	return cfg, nil
}

// runID returns a time-ordered identifier for this invocation.
func runID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// userArgs marks positional argument errors as user errors.
func userArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return userError{err}
		}
		return nil
	}
}
