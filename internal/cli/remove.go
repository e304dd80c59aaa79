// Remove command for the contacts CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newRemoveCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:     "remove <name|email|phone>",
		Aliases: []string{"delete"},
		Short:   "Remove a contact",
		Long: `Remove deletes the addressed contact after asking for confirmation on
standard input. Use --yes to skip the prompt.`,
		Args: userArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(func(book types.Book) error {
				c, err := findContact(book, args[0])
				if err != nil {
					return err
				}

				if !yes {
					fmt.Fprintln(cmd.OutOrStdout(), c.String())
					ok, err := confirm(cmd, msgConfirm)
					if err != nil {
						return err
					}
					if !ok {
						a.logger.Info("delete cancelled", "name", c.Name)
						return nil
					}
				}

				if err := book.RemoveContact(c); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msgDeleted)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}
