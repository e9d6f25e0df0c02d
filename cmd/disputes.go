package cmd

import (
	"fmt"

	"dispute-reconciler/core/reconcile"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statusFilter string

// disputesCmd is the parent command for internal store operations.
var disputesCmd = &cobra.Command{
	Use:   "disputes",
	Short: "Inspect the internal dispute store",
}

// disputesListCmd lists stored disputes.
var disputesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List internal disputes",
	Long:  `Lists internal disputes, optionally filtered by status (case-insensitive).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.log.Sync()

		var list []reconcile.Dispute
		if statusFilter != "" {
			list, err = a.store.GetByStatus(cmd.Context(), statusFilter)
		} else {
			list, err = a.store.GetAll(cmd.Context())
		}
		if err != nil {
			return err
		}

		table := tablewriter.NewTable(cmd.OutOrStdout())
		table.Header("Dispute", "Transaction", "Amount", "Currency", "Status", "Reason")
		for _, d := range list {
			if err := table.Append(d.DisputeID, d.TransactionID, d.Amount.StringFixed(2), d.Currency, d.Status, d.Reason); err != nil {
				return err
			}
		}
		if err := table.Render(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d dispute(s)\n", len(list))
		return nil
	},
}

func init() {
	disputesListCmd.Flags().StringVar(&statusFilter, "status", "", "Only list disputes with this status")
	disputesCmd.AddCommand(disputesListCmd)
	RootCmd.AddCommand(disputesCmd)
}
