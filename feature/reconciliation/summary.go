package reconciliation

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"dispute-reconciler/core/reconcile"

	"github.com/olekukonko/tablewriter"
)

// maxHighListed caps the high-severity items shown in the console summary.
const maxHighListed = 5

var rule = strings.Repeat("=", 51)

// PrintSummary writes a human-readable run summary to w.
func PrintSummary(w io.Writer, result *reconcile.Result) error {
	s := result.Summary

	fmt.Fprintln(w)
	fmt.Fprintln(w, "RECONCILE SUMMARY")
	fmt.Fprintln(w, rule)

	rows := [][]string{
		{"Total External Records", strconv.Itoa(s.TotalExternalRecords)},
		{"Total Internal Records", strconv.Itoa(s.TotalInternalRecords)},
		{"Total Discrepancies", strconv.Itoa(s.TotalDiscrepancies)},
	}
	if s.TotalDiscrepancies > 0 {
		rows = append(rows,
			[]string{"Missing in Internal", strconv.Itoa(s.MissingInInternal)},
			[]string{"Missing in External", strconv.Itoa(s.MissingInExternal)},
			[]string{"Status Mismatches", strconv.Itoa(s.StatusMismatches)},
			[]string{"Amount Mismatches", strconv.Itoa(s.AmountMismatches)},
			[]string{"Currency Mismatches", strconv.Itoa(s.CurrencyMismatches)},
			[]string{"Reason Mismatches", strconv.Itoa(s.ReasonMismatches)},
		)
	}
	if err := renderTable(w, []any{"Metric", "Count"}, rows); err != nil {
		return err
	}

	switch {
	case s.TotalDiscrepancies == 0:
		fmt.Fprintln(w, "No discrepancies found - all records match!")
	case s.HighSeverityDiscrepancies > 0:
		fmt.Fprintf(w, "\nHIGH SEVERITY DISCREPANCIES: %d\n", s.HighSeverityDiscrepancies)

		high := result.HighSeverity()
		if len(high) > maxHighListed {
			high = high[:maxHighListed]
		}
		items := make([][]string, 0, len(high))
		for _, d := range high {
			items = append(items, []string{d.DisputeID, d.Severity.String(), d.Description})
		}
		if err := renderTable(w, []any{"Dispute", "Severity", "Description"}, items); err != nil {
			return err
		}
		if more := s.HighSeverityDiscrepancies - maxHighListed; more > 0 {
			fmt.Fprintf(w, " ... and %d more\n", more)
		}
	}

	fmt.Fprintf(w, "\nProcessed at: %s UTC\n", result.ProcessedAt.UTC().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, rule)
	return nil
}

func renderTable(w io.Writer, header []any, rows [][]string) error {
	table := tablewriter.NewTable(w)
	table.Header(header...)
	for _, row := range rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}
