// Package cli implements the quicklinks command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/quicklinks/internal/paths"
	"github.com/mesh-intelligence/quicklinks/pkg/quicklinks"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// app holds global flag values and state shared by all subcommands of one
// root command instance.
type app struct {
	configDir string
	dataDir   string
	jsonMode  bool
	logLevel  string

	cfg    *viper.Viper
	logger *slog.Logger
}

// NewRootCmd creates the top-level "quicklinks" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "quicklinks",
		Short:   "Manage the quick links bar",
		Long:    "Quicklinks lists the built-in navigation links and manages\nuser-added links persisted in a local key-value store.",
		Version: quicklinks.Version,
		// Errors are printed once by Execute.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/quicklinks)")
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", "", "data directory (default: $(CWD)/.quicklinks-db)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config.yaml)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newRemoveCmd(a))
	root.AddCommand(newClearCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes root with args and returns the process exit code.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitSuccess
	}
	fmt.Fprintln(stderr, "quicklinks:", err)
	var ue *userError
	if errors.As(err, &ue) {
		return exitUserError
	}
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	// Flag parsing and argument validation errors from cobra.
	return exitUserError
}

// setup loads config.yaml and builds the logger. The version command needs
// neither.
func (a *app) setup(cmd *cobra.Command) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.configDir)
	if err != nil {
		return systemErr(fmt.Errorf("resolve config dir: %w", err))
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir)
	if err != nil {
		return systemErr(err)
	}
	a.cfg = cfg

	level := cfg.GetString(cfgKeyLogLevel)
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.logger = newLogger(level, cfg.GetString(cfgKeyLogFormat), cmd.ErrOrStderr())
	a.logger.Debug("config loaded", "config_dir", configDir, "backend", cfg.GetString(cfgKeyBackend))
	return nil
}

// userError marks failures caused by bad input rather than the system.
type userError struct {
	err error
}

func (e *userError) Error() string { return e.err.Error() }
func (e *userError) Unwrap() error { return e.err }

// userErrorf formats a user error. %w verbs are kept for errors.Is.
func userErrorf(format string, args ...any) error {
	return &userError{err: fmt.Errorf(format, args...)}
}

// systemError marks storage and environment failures.
type systemError struct {
	err error
}

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

// systemErr marks err as a system error unless it is nil or already a user
// error.
func systemErr(err error) error {
	if err == nil {
		return nil
	}
	var ue *userError
	if errors.As(err, &ue) {
		return err
	}
	return &systemError{err: err}
}
