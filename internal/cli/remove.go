package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quicklinks/pkg/links"
	"github.com/mesh-intelligence/quicklinks/pkg/types"
)

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove user links by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			err := a.withRegistry(func(r *links.Registry) error {
				return r.RemoveUserLink(id)
			})
			switch {
			case errors.Is(err, types.ErrLinkNotFound), errors.Is(err, types.ErrSystemLink):
				return userErrorf("remove: %w", err)
			case err != nil:
				return fmt.Errorf("remove link: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed link: %s\n", id)
			return nil
		},
	}
}
