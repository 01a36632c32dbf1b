package cli

import (
	"fmt"
	"log/slog"
	"os"

	"blogapi/app/config"
	"blogapi/app/logger"
	"blogapi/app/repositories"

	"github.com/spf13/cobra"
)

// Version is the CLI version, overridden at build time with -ldflags.
var Version = "1.0.0"

// app holds what PersistentPreRunE loads for the subcommands.
type app struct {
	cfg    *config.ServerEnvironment
	logger *slog.Logger
}

// openStore opens the store named by DATABASE_URL.
func (a *app) openStore() (*repositories.Store, error) {
	store, err := repositories.Open(a.cfg.DatabaseURL, a.logger)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("opened store", "database_url", a.cfg.DatabaseURL)
	return store, nil
}

// NewRootCommand builds the blogapi command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "blogapi",
		Short:             "Blog post REST API",
		Long:              `blogapi serves blog posts stored in an embedded Badger database and manages that database.`,
		Version:           Version,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.cfg = cfg
			a.logger = logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)
			return nil
		},
	}

	rootCmd.AddCommand(
		newServeCommand(a),
		newSeedCommand(a),
		newDropCommand(a),
		newBackupCommand(a),
		newRestoreCommand(a),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		// the root PersistentPreRunE needs no config for this
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "blogapi version %s\n", Version)
		},
	}
}
