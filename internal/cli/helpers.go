package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/quicklinks/internal/paths"
	"github.com/mesh-intelligence/quicklinks/pkg/backend"
	"github.com/mesh-intelligence/quicklinks/pkg/links"
	"github.com/mesh-intelligence/quicklinks/pkg/types"
)

// resolveDataDir returns the data directory following the precedence:
// --data-dir flag > config.yaml data_dir > QUICKLINKS_DATA_DIR env > default.
func (a *app) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(a.dataDir, a.cfg.GetString(cfgKeyDataDir))
}

// openBackend resolves the data directory and attaches the configured
// backend. The caller must Detach it.
func (a *app) openBackend() (types.Backend, error) {
	dataDir, err := a.resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: a.cfg.GetString(cfgKeyBackend),
		DataDir: dataDir,
	}
	if err := cfg.Validate(); err != nil {
		return nil, userErrorf("config backend %q: %w", cfg.Backend, err)
	}

	b, err := backend.Open(cfg)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("backend attached", "backend", cfg.Backend, "data_dir", dataDir)
	return b, nil
}

// withRegistry opens the backend, runs fn with a registry over it, and
// detaches afterwards.
func (a *app) withRegistry(fn func(r *links.Registry) error) (err error) {
	b, err := a.openBackend()
	if err != nil {
		return systemErr(err)
	}
	defer func() {
		if derr := b.Detach(); derr != nil && err == nil {
			err = systemErr(fmt.Errorf("detach backend: %w", derr))
		}
	}()
	return systemErr(fn(links.NewRegistry(b, links.WithLogger(a.logger))))
}

// generateID generates a new UUID v7 for link IDs.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printLinkTable writes links as an aligned table. Icons are left out
// since data URIs do not fit a terminal column.
func printLinkTable(w io.Writer, list []types.Link) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tURL\tSOURCE")
	for _, l := range list {
		source := "user"
		if l.IsSystem {
			source = "system"
		}
		title := l.Title
		if r := []rune(title); len(r) > 40 {
			title = string(r[:37]) + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.ID, title, l.URL, source)
	}
	return tw.Flush()
}
