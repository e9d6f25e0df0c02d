// Package fileio reads dispute files and writes reconciliation reports.
//
// Formats form a closed set selected by file extension (case-insensitive):
//
//   - CSV:  header DisputeId,TransactionId,Amount,Currency,Status,Reason
//   - JSON: array of dispute objects
//   - XML:  every <Dispute> element, at any depth
//   - YAML: sequence of dispute mappings
//
// Field names are matched loosely, so "DisputeId" and "dispute_id" both work.
// A missing currency defaults to USD. XML is input-only; reports are written
// as CSV (one row per discrepancy), JSON or YAML (the full result).
//
// Reports are written atomically. Failures are returned as *FileError.
package fileio
