// Package alerts is the alert sink for high-severity discrepancies.
//
// Service writes a one-line "[HIGH] ..." summary and up to three CRITICAL
// lines to a console writer, mirrors them to zap, and keeps a bounded history
// that the HTTP API serves at GET /alerts.
package alerts
