package reconcile

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// DefaultTolerance is the largest amount difference treated as rounding noise.
var DefaultTolerance = decimal.RequireFromString("0.01")

// Comparator evaluates one matched pair field by field.
type Comparator struct {
	normalizer *Normalizer
	tolerance  decimal.Decimal
	logger     *zap.Logger
}

// NewComparator creates a Comparator. A zero tolerance falls back to DefaultTolerance.
func NewComparator(normalizer *Normalizer, tolerance decimal.Decimal, logger *zap.Logger) *Comparator {
	if tolerance.IsZero() {
		tolerance = DefaultTolerance
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	return &Comparator{normalizer: normalizer, tolerance: tolerance, logger: logger}
}

// Compare returns zero to four discrepancies for the pair. Each field check
// runs independently, so one pair may report several differences.
func (c *Comparator) Compare(pair Pair) []Discrepancy {
	ext, in := pair.External, pair.Internal
	var out []Discrepancy

	if !strings.EqualFold(ext.Status, in.Status) {
		out = append(out, c.newDiscrepancy(pair, StatusMismatch,
			fmt.Sprintf("Status mismatch: External='%s', Internal='%s'", ext.Status, in.Status),
			StatusMismatchSeverity(ext.Status, in.Status)))
	}

	if d, ok := c.compareAmounts(pair); ok {
		out = append(out, d)
	}

	if !strings.EqualFold(ext.Currency, in.Currency) {
		out = append(out, c.newDiscrepancy(pair, CurrencyMismatch,
			fmt.Sprintf("Currency mismatch: External='%s', Internal='%s'", ext.Currency, in.Currency),
			SeverityMedium))
	}

	if !strings.EqualFold(ext.Reason, in.Reason) {
		out = append(out, c.newDiscrepancy(pair, ReasonMismatch,
			fmt.Sprintf("Reason mismatch: External='%s', Internal='%s'", ext.Reason, in.Reason),
			SeverityLow))
	}

	return out
}

// compareAmounts converts the external amount into the internal currency when
// the codes differ. A failed conversion skips the amount check for this pair.
func (c *Comparator) compareAmounts(pair Pair) (Discrepancy, bool) {
	ext, in := pair.External, pair.Internal

	externalAmount, err := c.normalizer.Convert(ext.Amount, ext.Currency, in.Currency)
	if err != nil {
		c.logger.Warn("Failed to convert currency, skipping amount comparison",
			zap.String("dispute_id", ext.DisputeID),
			zap.String("from", ext.Currency),
			zap.String("to", in.Currency),
			zap.Error(err))
		return Discrepancy{}, false
	}

	diff := externalAmount.Sub(in.Amount).Abs()
	if !diff.GreaterThan(c.tolerance) {
		return Discrepancy{}, false
	}

	return c.newDiscrepancy(pair, AmountMismatch,
		fmt.Sprintf("Amount mismatch: External=%s, Internal=%s",
			formatAmount(externalAmount, in.Currency), formatAmount(in.Amount, in.Currency)),
		AmountMismatchSeverity(diff)), true
}

func (c *Comparator) newDiscrepancy(pair Pair, t DiscrepancyType, description string, severity Severity) Discrepancy {
	return Discrepancy{
		DisputeID:   pair.External.DisputeID,
		Type:        t,
		Description: description,
		External:    pair.External,
		Internal:    pair.Internal,
		Severity:    severity,
	}
}

func formatAmount(amount decimal.Decimal, currency string) string {
	return amount.StringFixed(2) + " " + strings.ToUpper(currency)
}
