package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dispute-reconciler/core/config"
	"dispute-reconciler/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	inputFile  string
	outputFile string
	workers    int
	quiet      bool
)

// reconcileCmd reconciles an external dispute file against the internal store.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile an external dispute report against internal records",
	Long: `Reads external disputes from a CSV, JSON, XML or YAML file, compares them with
the internal dispute store, and writes the discrepancies to a CSV, JSON or YAML report.

Examples:
  # CSV in, JSON report out
  reconcile -i partner.csv -o report.json

  # Verbose logging with a fixed worker budget
  reconcile -i partner.xml -o report.csv --verbose --workers 4`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input file with external disputes (required)")
	reconcileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the reconciliation report (required)")
	reconcileCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent comparison workers (0 = CPU count minus one)")
	reconcileCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Do not print the console summary")
	_ = reconcileCmd.MarkFlagRequired("input")
	_ = reconcileCmd.MarkFlagRequired("output")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := os.Stat(inputFile); err != nil {
		return fmt.Errorf("input file not found: %s", inputFile)
	}

	var overrides []func(*config.Config)
	if cmd.Flags().Changed("workers") {
		overrides = append(overrides, func(c *config.Config) { c.Reconcile.Workers = workers })
	}

	a, err := newApp(ctx, overrides...)
	if err != nil {
		return err
	}
	defer a.log.Sync()

	a.log.Info("Starting dispute reconcile",
		zap.String("input", inputFile),
		zap.String("output", outputFile),
		zap.Int("workers", a.engine.Workers()))

	result, err := a.service.Run(ctx, inputFile, outputFile)
	if err != nil {
		a.log.Error("Fatal error during reconcile process", zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	if !quiet {
		if err := reconciliation.PrintSummary(out, result); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "Reconcile completed successfully!")
	fmt.Fprintf(out, "Reconcile results written to: %s\n", outputFile)
	return nil
}
