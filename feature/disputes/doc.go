// Package disputes is the internal system of record that supplies the
// "internal" side of every reconciliation run.
//
// Records live in a gorm-managed table (sqlite in memory by default, mysql in
// deployments). Amounts are stored as decimal text. An empty store is seeded
// with three sample disputes so a fresh install reconciles against something.
//
// # Operations
//
//   - GetAll: every dispute, ordered by id (what the engine consumes)
//   - GetByID: single lookup, nil when absent
//   - GetByStatus: case-insensitive status filter
//   - Add: insert, ErrExists on a duplicate id
//   - Update: replace, a no-op reported as false when the id is unknown
//
// The HTTP surface mirrors these under /disputes.
package disputes
