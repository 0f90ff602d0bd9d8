package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quicklinks/pkg/links"
	"github.com/mesh-intelligence/quicklinks/pkg/types"
)

const defaultIcon = "🔗"

func newAddCmd(a *app) *cobra.Command {
	var link types.Link

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user link",
		Long: `Add appends a link to the user link list.

When --id is omitted a UUID v7 is generated. URLs are stored as given.

Example:
  quicklinks add --title "Wiki" --url https://wiki.example/
  quicklinks add --id docs --title Docs --url /docs --icon 📄`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if link.ID == "" {
				link.ID = generateID()
			}
			if link.Icon == "" {
				link.Icon = defaultIcon
			}

			err := a.withRegistry(func(r *links.Registry) error {
				return r.AddUserLink(link)
			})
			if err != nil {
				return fmt.Errorf("add link: %w", err)
			}

			if a.jsonMode {
				return printJSON(cmd.OutOrStdout(), link)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added link: %s\n", link.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&link.ID, "id", "", "link id (default: generated UUID v7)")
	cmd.Flags().StringVar(&link.Title, "title", "", "display title (required)")
	cmd.Flags().StringVar(&link.URL, "url", "", "absolute URL or root-relative path (required)")
	cmd.Flags().StringVar(&link.Icon, "icon", "", "icon URL, data URI, or emoji (default: "+defaultIcon+")")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}
