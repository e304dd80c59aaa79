package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/tui"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Search and delete contacts interactively",
		Args:  userArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(func(book types.Book) error {
				return tui.Run(book)
			})
		},
	}
}
