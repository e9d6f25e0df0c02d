package cmd

import (
	"fmt"
	"os"

	"dispute-reconciler/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verbose raises every command's log level to debug.
var verbose bool

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "dispute-reconciler",
	Short: "Dispute Reconciler",
	Long: `Dispute Reconciler compares an external partner dispute report against the
internal system of record and reports missing records and field mismatches by severity.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with ISO8601 timestamps reads better on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
}
