// Add command for the contacts CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

type contactFlags struct {
	name    string
	address string
	email   string
	phone   string
}

func (f *contactFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "contact name")
	cmd.Flags().StringVar(&f.address, "address", "", "postal address")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number, digits only")
}

func newAddCmd(a *app) *cobra.Command {
	var f contactFlags
	cmd := &cobra.Command{
		Use:   "add --name N --address A --email E --phone P",
		Short: "Add a contact",
		Long: `Add validates and appends a new contact. All four fields are required.
The name, email and phone must not match any existing contact.

Example:
  contacts add --name "Alice" --address "1 Main St" --email alice@example.com --phone 5551234`,
		Args: userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(func(book types.Book) error {
				if err := book.AddContact(f.name, f.address, f.email, f.phone); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), msgAdded)
				return nil
			})
		},
	}
	f.register(cmd)
	return cmd
}
