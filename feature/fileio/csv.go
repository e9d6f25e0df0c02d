package fileio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"dispute-reconciler/core/reconcile"
)

// csvResultHeader is the flat discrepancy layout of CSV reports.
var csvResultHeader = []string{
	"DisputeId", "Type", "Description", "Severity",
	"ExternalAmount", "ExternalStatus", "InternalAmount", "InternalStatus",
}

// decodeCSV reads a header row followed by dispute rows. Columns are matched
// by header name; missing columns are tolerated.
func decodeCSV(r io.Reader) ([]reconcile.Dispute, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []reconcile.Dispute{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var disputes []reconcile.Dispute
	lineNum := 1
	for {
		lineNum++
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if isBlank(row) {
			continue
		}

		fields := make(map[string]any, len(header))
		for i, name := range header {
			if i < len(row) {
				fields[name] = row[i]
			}
		}

		d, err := fromFields(fields, false)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		disputes = append(disputes, d)
	}
	if disputes == nil {
		disputes = []reconcile.Dispute{}
	}
	return disputes, nil
}

// encodeCSV writes one row per discrepancy.
func encodeCSV(w io.Writer, result *reconcile.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvResultHeader); err != nil {
		return err
	}

	for _, d := range result.Discrepancies {
		row := []string{
			d.DisputeID,
			string(d.Type),
			d.Description,
			d.Severity.String(),
			amountOf(d.External),
			statusOf(d.External),
			amountOf(d.Internal),
			statusOf(d.Internal),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func amountOf(d *reconcile.Dispute) string {
	if d == nil {
		return ""
	}
	return d.Amount.String()
}

func statusOf(d *reconcile.Dispute) string {
	if d == nil {
		return ""
	}
	return d.Status
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
