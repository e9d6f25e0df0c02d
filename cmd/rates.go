package cmd

import (
	"fmt"

	"dispute-reconciler/feature/rates"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// ratesCmd is the parent command for exchange-rate operations.
var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Inspect exchange rates",
}

// ratesListCmd prints the active rate table.
var ratesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured exchange rates",
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := loadRates()
		if err != nil {
			return err
		}

		table := tablewriter.NewTable(cmd.OutOrStdout())
		table.Header("Pair", "Rate")
		for _, e := range provider.Table().Entries() {
			if err := table.Append(e.Pair, e.Rate.String()); err != nil {
				return err
			}
		}
		return table.Render()
	},
}

// ratesConvertCmd converts an amount between currencies.
var ratesConvertCmd = &cobra.Command{
	Use:   "convert AMOUNT FROM TO",
	Short: "Convert an amount between currencies",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[0], err)
		}

		provider, err := loadRates()
		if err != nil {
			return err
		}

		converted, err := provider.Convert(amount, args[1], args[2])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n", amount.String(), args[1], converted.StringFixed(2), args[2])
		return nil
	},
}

// loadRates builds a provider from config without touching the database.
func loadRates() (*rates.Provider, error) {
	cfg, l, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newRateProvider(cfg, l)
}

func init() {
	ratesCmd.AddCommand(ratesListCmd, ratesConvertCmd)
	RootCmd.AddCommand(ratesCmd)
}
