// Show command for the contacts CLI.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|email|phone>",
		Short: "Show one contact",
		Args:  userArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := a.outputFormat()
			if err != nil {
				return err
			}
			return a.withBook(func(book types.Book) error {
				c, err := findContact(book, args[0])
				if err != nil {
					return err
				}
				return writeContact(cmd.OutOrStdout(), format, c)
			})
		},
	}
}
