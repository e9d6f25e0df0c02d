// Package reconciliation runs reconciliations end to end: read the external
// file, load the internal store, run the engine, write the report atomically
// and optionally publish it to object storage.
//
// It backs both the `reconcile` command and POST /reconcile.
package reconciliation
