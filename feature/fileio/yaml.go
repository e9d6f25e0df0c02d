package fileio

import (
	"fmt"
	"io"

	"dispute-reconciler/core/reconcile"

	"github.com/goccy/go-yaml"
)

// decodeYAML reads a YAML sequence of dispute mappings.
func decodeYAML(r io.Reader) ([]reconcile.Dispute, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := yaml.Unmarshal(data, &rows); err != nil {
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

// encodeYAML writes the full result.
func encodeYAML(w io.Writer, result *reconcile.Result) error {
	data, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
