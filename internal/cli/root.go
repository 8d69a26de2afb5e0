package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// Typically called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the gridpath CLI under ctx and returns an error if any
// command fails. Cancelling ctx (e.g. on SIGINT) cancels a running search.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, including search and maze records
//
// The logger and the loaded config are attached to the command context.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		verbose    bool
		configFile string
	)

	root := &cobra.Command{
		Use:          "gridpath",
		Short:        "gridpath searches paths on square grids",
		Long:         `gridpath finds paths between two cells of a square grid with A*, breadth-first or depth-first search, and generates random barrier layouts.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(cmd.ErrOrStderr(), level)

			cfg, err := loadConfig(configFile)
			if err != nil {
				return err
			}
			logger.Debug("config loaded", "rows", cfg.Rows, "width", cfg.Width, "algorithm", cfg.Algorithm, "delay", cfg.Delay.Duration)

			ctx := withLogger(cmd.Context(), logger)
			ctx = withConfig(ctx, cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("gridpath %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/gridpath/config.toml)")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newMazeCmd())
	root.AddCommand(newTUICmd())

	return root
}
