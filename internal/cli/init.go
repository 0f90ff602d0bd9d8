package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize quicklinks storage",
		Long:  "Create the configuration directory with a default config.yaml, then attach\nthe configured backend once so its data directory exists.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := writeConfigIfMissing(a.configDir, a.dataDir)
			if err != nil {
				return systemErr(err)
			}
			// Re-read so a freshly written file is honored.
			if a.cfg, err = loadConfig(a.configDir); err != nil {
				return systemErr(err)
			}

			dataDir, err := a.resolveDataDir()
			if err != nil {
				return systemErr(fmt.Errorf("resolve data dir: %w", err))
			}
			b, err := a.openBackend()
			if err != nil {
				return systemErr(fmt.Errorf("initialize storage: %w", err))
			}
			if err := b.Detach(); err != nil {
				return systemErr(fmt.Errorf("finalize storage: %w", err))
			}

			out := cmd.OutOrStdout()
			if a.jsonMode {
				return printJSON(out, map[string]string{
					"config":  configPath,
					"data":    dataDir,
					"backend": a.cfg.GetString(cfgKeyBackend),
				})
			}
			fmt.Fprintln(out, "Quicklinks initialized successfully")
			fmt.Fprintln(out, "  config:", configPath)
			fmt.Fprintln(out, "  data:  ", dataDir)
			return nil
		},
	}
}
