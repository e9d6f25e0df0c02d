package reconcile

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Status values that carry meaning for severity rules.
const (
	StatusOpen = "Open"
	StatusWon  = "Won"
	StatusLost = "Lost"
)

var (
	missingHighAmount   = decimal.NewFromInt(500)
	missingMediumAmount = decimal.NewFromInt(100)

	amountCritical = decimal.NewFromInt(1000)
	amountHigh     = decimal.NewFromInt(100)
	amountMedium   = decimal.NewFromInt(10)
)

// criticalStatusPairs lists directional (external, internal) status pairs
// that indicate a dispute outcome was recorded incorrectly.
var criticalStatusPairs = [][2]string{
	{StatusWon, StatusLost},
	{StatusLost, StatusWon},
	{StatusWon, StatusOpen},
	{StatusLost, StatusOpen},
}

// MissingInInternalSeverity classifies an external record absent from the internal store.
// Open disputes above 500 are High, anything above 100 is Medium, the rest Low.
func MissingInInternalSeverity(external *Dispute) Severity {
	if external == nil {
		return SeverityMedium
	}
	if strings.EqualFold(external.Status, StatusOpen) && external.Amount.GreaterThan(missingHighAmount) {
		return SeverityHigh
	}
	if external.Amount.GreaterThan(missingMediumAmount) {
		return SeverityMedium
	}
	return SeverityLow
}

// MissingInExternalSeverity classifies an internal record absent from the external report.
// Disputes already resolved internally (Won or Lost) are Low.
func MissingInExternalSeverity(internal *Dispute) Severity {
	if internal == nil {
		return SeverityMedium
	}
	if strings.EqualFold(internal.Status, StatusWon) || strings.EqualFold(internal.Status, StatusLost) {
		return SeverityLow
	}
	return SeverityMedium
}

// StatusMismatchSeverity is High for a critical directional pair, otherwise Medium.
func StatusMismatchSeverity(externalStatus, internalStatus string) Severity {
	for _, p := range criticalStatusPairs {
		if strings.EqualFold(externalStatus, p[0]) && strings.EqualFold(internalStatus, p[1]) {
			return SeverityHigh
		}
	}
	return SeverityMedium
}

// AmountMismatchSeverity maps an absolute amount difference onto a severity.
func AmountMismatchSeverity(difference decimal.Decimal) Severity {
	difference = difference.Abs()
	switch {
	case difference.GreaterThanOrEqual(amountCritical):
		return SeverityCritical
	case difference.GreaterThanOrEqual(amountHigh):
		return SeverityHigh
	case difference.GreaterThanOrEqual(amountMedium):
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// PresenceSeverity dispatches to the rule for a presence discrepancy type.
func PresenceSeverity(t DiscrepancyType, record *Dispute) Severity {
	switch t {
	case MissingInInternal:
		return MissingInInternalSeverity(record)
	case MissingInExternal:
		return MissingInExternalSeverity(record)
	default:
		return SeverityMedium
	}
}
