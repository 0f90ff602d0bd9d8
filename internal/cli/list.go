package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quicklinks/pkg/links"
	"github.com/mesh-intelligence/quicklinks/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	var systemOnly, userOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quick links",
		Long: `List prints the built-in links followed by user links.

Example:
  quicklinks list
  quicklinks list --user
  quicklinks list --system --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if systemOnly && userOnly {
				return userErrorf("--system and --user are mutually exclusive")
			}

			var list []types.Link
			if systemOnly {
				list = links.SystemLinks()
			} else {
				err := a.withRegistry(func(r *links.Registry) error {
					res := r.LoadUserLinks()
					if !res.OK() {
						a.logger.Warn("ignoring stored user links", "error", res.Err)
					}
					if userOnly {
						list = res.Links
					} else {
						list = append(links.SystemLinks(), res.Links...)
					}
					return nil
				})
				if err != nil {
					return err
				}
			}

			if a.jsonMode {
				return printJSON(cmd.OutOrStdout(), list)
			}
			if len(list) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No links.")
				return nil
			}
			return printLinkTable(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().BoolVar(&systemOnly, "system", false, "list only built-in links")
	cmd.Flags().BoolVar(&userOnly, "user", false, "list only user links")
	return cmd
}
