// Export command for the contacts CLI.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/export"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		out    string
	)
	cmd := &cobra.Command{
		Use:   "export [--format xlsx|json|yaml] [--out path]",
		Short: "Export all contacts",
		Long: `Export writes every contact in stored order as an Excel workbook, a JSON
array or a YAML sequence. Output goes to standard output unless --out is
given; xlsx always requires --out.

Example:
  contacts export --format xlsx --out contacts.xlsx
  contacts export --format yaml`,
		Args: userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format == export.FormatXLSX && out == "" {
				return userError{errors.New("xlsx export requires --out")}
			}

			return a.withBook(func(book types.Book) error {
				all, err := book.LoadAll()
				if err != nil {
					return err
				}

				if out == "" {
					return export.Write(cmd.OutOrStdout(), format, all)
				}

				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				if err := export.Write(f, format, all); err != nil {
					f.Close()
					os.Remove(out)
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("close export file: %w", err)
				}
				a.logger.Info("exported contacts", "format", format, "out", out, "count", len(all))
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contacts to %s\n", len(all), out)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", export.FormatJSON, "export format: "+strings.Join(export.Formats(), ", "))
	cmd.Flags().StringVar(&out, "out", "", "output file (default: standard output)")
	return cmd
}
