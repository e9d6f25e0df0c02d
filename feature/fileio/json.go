package fileio

import (
	"errors"
	"fmt"
	"io"

	"dispute-reconciler/core/reconcile"

	"github.com/goccy/go-json"
)

// decodeJSON reads a JSON array of dispute objects. Keys may be PascalCase
// or snake_case.
func decodeJSON(r io.Reader) ([]reconcile.Dispute, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return []reconcile.Dispute{}, nil
		}
		return nil, err
	}

	disputes := make([]reconcile.Dispute, 0, len(rows))
	for i, row := range rows {
		d, err := fromFields(row, false)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		disputes = append(disputes, d)
	}
	return disputes, nil
}

// encodeJSON writes the full result, indented.
func encodeJSON(w io.Writer, result *reconcile.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
