// Package cli provides the dispatchctl operator commands.
package cli

import (
	"fmt"
	"log/slog"

	"dispatch_service/internal/config"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	verbose bool

	cfg      config.Config
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "dispatchctl",
	Short: "Operate the dispatch service",
	Long: `dispatchctl runs the dispatch API and the maintenance jobs around it:
creating DynamoDB tables, importing the job catalog, expiring stale
suggestions and optimizing a technician day from the shell.

Configuration comes from the same environment variables as the API.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}
		cfg = config.Load()
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
		var logger *slog.Logger
		logger, closeLog = config.SetupLogger(cfg.LogFile, cfg.LogLevel)
		slog.SetDefault(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := closeLog(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to close log file: %v\n", err)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(tokenCmd)
}
