package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/contacts"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize contacts storage",
		Long:  "Create the configuration directory and config.yaml, then prepare the storage backend.",
		Args:  userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.bookConfig()
			if err != nil {
				return err
			}

			backend, err := contacts.NewBackend(cfg.Backend)
			if err != nil {
				return err
			}
			if err := backend.Attach(cfg); err != nil {
				return fmt.Errorf("initialize storage: %w", err)
			}
			if err := backend.Detach(); err != nil {
				return fmt.Errorf("finalize storage: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Contacts initialized successfully")
			fmt.Fprintf(out, "config:  %s\n", filepath.Join(a.configDir, configFileExt))
			fmt.Fprintf(out, "backend: %s\n", cfg.Backend)
			fmt.Fprintf(out, "data:    %s\n", cfg.Path())
			return nil
		},
	}
}
