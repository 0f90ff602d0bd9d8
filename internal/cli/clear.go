package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quicklinks/pkg/links"
)

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all user links",
		Long:  "Clear replaces the stored user links with an empty list, including a\ncorrupt stored value. Built-in links are unaffected.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.withRegistry(func(r *links.Registry) error {
				return r.SaveUserLinks(nil)
			})
			if err != nil {
				return fmt.Errorf("clear links: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cleared user links")
			return nil
		},
	}
}
