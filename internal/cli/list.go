// List command for the contacts CLI.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list [query...]",
		Aliases: []string{"search"},
		Short:   "List contacts, optionally filtered",
		Long: `List prints every contact whose name, address, email or phone contains
the query, ignoring case. Arguments are joined with a space to form the
query. Without a query every contact is listed in stored order.

Example:
  contacts list
  contacts search example.com
  contacts list -o json main st`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			return a.withBook(func(book types.Book) error {
				return writeContacts(cmd.OutOrStdout(), format, book.Search(strings.Join(args, " ")))
			})
		},
	}
}
