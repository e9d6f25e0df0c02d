package reconciliation

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"dispute-reconciler/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSummary_NoDiscrepancies(t *testing.T) {
	result := &reconcile.Result{
		Summary:     reconcile.Summarize(1, 1, nil),
		ProcessedAt: time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "RECONCILE SUMMARY")
	assert.Contains(t, out, "No discrepancies found - all records match!")
	assert.Contains(t, out, "Processed at: 2026-03-04 05:06:07 UTC")
	assert.NotContains(t, out, "Missing in Internal")
}

func TestPrintSummary_HighSeverity(t *testing.T) {
	var ds []reconcile.Discrepancy
	for i := 0; i < 7; i++ {
		ds = append(ds, reconcile.Discrepancy{
			DisputeID:   fmt.Sprintf("case_%03d", i),
			Type:        reconcile.AmountMismatch,
			Description: fmt.Sprintf("amount off %d", i),
			Severity:    reconcile.SeverityCritical,
		})
	}
	ds = append(ds, reconcile.Discrepancy{DisputeID: "case_100", Type: reconcile.ReasonMismatch, Severity: reconcile.SeverityLow})

	result := &reconcile.Result{Discrepancies: ds, Summary: reconcile.Summarize(8, 8, ds)}

	var buf bytes.Buffer
	require.NoError(t, PrintSummary(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "HIGH SEVERITY DISCREPANCIES: 7")
	assert.Contains(t, out, "case_004")
	assert.NotContains(t, out, "case_005")
	assert.Contains(t, out, "... and 2 more")
	assert.Contains(t, out, "Reason Mismatches")
}
