// Edit command for the contacts CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newEditCmd(a *app) *cobra.Command {
	var f contactFlags
	cmd := &cobra.Command{
		Use:   "edit <name|email|phone> [--name N] [--address A] [--email E] [--phone P]",
		Short: "Edit a contact",
		Long: `Edit replaces the addressed contact with an updated copy. Fields whose
flags are not given keep their current value. The edited contact moves to
the end of the list.

Example:
  contacts edit alice@example.com --phone 5550000`,
		Args: userArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(func(book types.Book) error {
				original, err := findContact(book, args[0])
				if err != nil {
					return err
				}

				updated := original
				if cmd.Flags().Changed("name") {
					updated.Name = f.name
				}
				if cmd.Flags().Changed("address") {
					updated.Address = f.address
				}
				if cmd.Flags().Changed("email") {
					updated.Email = f.email
				}
				if cmd.Flags().Changed("phone") {
					updated.Phone = f.phone
				}

				if err := book.EditContact(original, updated.Name, updated.Address, updated.Email, updated.Phone); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msgUpdated)
				return nil
			})
		},
	}
	f.register(cmd)
	return cmd
}
