package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/quicklinks/pkg/quicklinks"
)

const modulePath = "github.com/mesh-intelligence/quicklinks"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the quicklinks version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "quicklinks v%s\nmodule: %s\n", quicklinks.Version, modulePath)
			return nil
		},
	}
}
