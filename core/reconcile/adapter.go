package reconcile

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateProvider converts amounts between currencies.
// Implementations must be safe for concurrent reads for the duration of a run.
type RateProvider interface {
	// Convert returns amount expressed in the target currency.
	// It fails when neither the direct nor the inverse rate is configured.
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)

	// Rate returns the multiplier that converts one unit of from into to.
	Rate(from, to string) (decimal.Decimal, error)
}

// AlertSink receives high-severity discrepancies once per run.
// The engine dispatches and moves on; a failing sink never fails the run.
type AlertSink interface {
	NotifyHighSeverity(ctx context.Context, discrepancies []Discrepancy) error
}

// AlertSinkFunc adapts a plain function to the AlertSink interface.
type AlertSinkFunc func(ctx context.Context, discrepancies []Discrepancy) error

// NotifyHighSeverity implements AlertSink.
func (f AlertSinkFunc) NotifyHighSeverity(ctx context.Context, discrepancies []Discrepancy) error {
	return f(ctx, discrepancies)
}
