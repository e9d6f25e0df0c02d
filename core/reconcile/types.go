package reconcile

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Dispute is a single disputed-transaction record from either the external
// report or the internal system of record.
type Dispute struct {
	// DisputeID is the unique key within a collection.
	DisputeID string `json:"dispute_id" yaml:"dispute_id" xml:"DisputeId"`

	// TransactionID references the disputed transaction.
	TransactionID string `json:"transaction_id" yaml:"transaction_id" xml:"TransactionId"`

	// Amount is the disputed amount in Currency units.
	Amount decimal.Decimal `json:"amount" yaml:"amount" xml:"Amount"`

	// Currency is an ISO-like code compared case-insensitively.
	Currency string `json:"currency" yaml:"currency" xml:"Currency"`

	// Status is free-form (e.g. "Open", "Won", "Lost") and compared case-insensitively.
	Status string `json:"status" yaml:"status" xml:"Status"`

	// Reason is the free-form dispute reason.
	Reason string `json:"reason" yaml:"reason" xml:"Reason"`
}

// Severity is the ordinal urgency of a discrepancy.
type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

var severityNames = [...]string{"Low", "Medium", "High", "Critical"}

// String returns the display name of the severity.
func (s Severity) String() string {
	if s < SeverityLow || s > SeverityCritical {
		return fmt.Sprintf("Severity(%d)", int(s))
	}
	return severityNames[s]
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name (case-insensitive).
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity converts a name such as "high" into a Severity.
func ParseSeverity(name string) (Severity, error) {
	for i, n := range severityNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Severity(i), nil
		}
	}
	return SeverityLow, fmt.Errorf("unknown severity %q", name)
}

// DiscrepancyType classifies a detected difference.
type DiscrepancyType string

const (
	// MissingInInternal marks a record present only in the external report.
	MissingInInternal DiscrepancyType = "MissingInInternal"
	// MissingInExternal marks a record present only in the internal store.
	MissingInExternal DiscrepancyType = "MissingInExternal"
	// StatusMismatch marks a matched pair whose statuses differ.
	StatusMismatch DiscrepancyType = "StatusMismatch"
	// AmountMismatch marks a matched pair whose amounts differ beyond tolerance.
	AmountMismatch DiscrepancyType = "AmountMismatch"
	// CurrencyMismatch marks a matched pair whose currency codes differ.
	CurrencyMismatch DiscrepancyType = "CurrencyMismatch"
	// ReasonMismatch marks a matched pair whose reasons differ.
	ReasonMismatch DiscrepancyType = "ReasonMismatch"
)

// typeOrder fixes the sort position of each discrepancy type.
var typeOrder = map[DiscrepancyType]int{
	MissingInInternal: 0,
	MissingInExternal: 1,
	StatusMismatch:    2,
	AmountMismatch:    3,
	CurrencyMismatch:  4,
	ReasonMismatch:    5,
}

// IsPresence reports whether the type describes a record missing from one side.
func (t DiscrepancyType) IsPresence() bool {
	return t == MissingInInternal || t == MissingInExternal
}

// Discrepancy is a detected difference between a matched pair, or a record's
// absence from one side. Presence discrepancies carry exactly one record;
// comparison discrepancies carry both.
type Discrepancy struct {
	DisputeID   string          `json:"dispute_id" yaml:"dispute_id"`
	Type        DiscrepancyType `json:"type" yaml:"type"`
	Description string          `json:"description" yaml:"description"`
	External    *Dispute        `json:"external_dispute,omitempty" yaml:"external_dispute,omitempty"`
	Internal    *Dispute        `json:"internal_dispute,omitempty" yaml:"internal_dispute,omitempty"`
	Severity    Severity        `json:"severity" yaml:"severity"`
}

// Summary provides aggregate counts for a reconciliation run.
// It is always derived from the discrepancy set by Summarize.
type Summary struct {
	TotalExternalRecords      int `json:"total_external_records" yaml:"total_external_records"`
	TotalInternalRecords      int `json:"total_internal_records" yaml:"total_internal_records"`
	TotalDiscrepancies        int `json:"total_discrepancies" yaml:"total_discrepancies"`
	MissingInInternal         int `json:"missing_in_internal" yaml:"missing_in_internal"`
	MissingInExternal         int `json:"missing_in_external" yaml:"missing_in_external"`
	StatusMismatches          int `json:"status_mismatches" yaml:"status_mismatches"`
	AmountMismatches          int `json:"amount_mismatches" yaml:"amount_mismatches"`
	CurrencyMismatches        int `json:"currency_mismatches" yaml:"currency_mismatches"`
	ReasonMismatches          int `json:"reason_mismatches" yaml:"reason_mismatches"`
	HighSeverityDiscrepancies int `json:"high_severity_discrepancies" yaml:"high_severity_discrepancies"`
}

// Result is the output of a single reconciliation run.
type Result struct {
	// RunID identifies the run in logs and published reports.
	RunID string `json:"run_id" yaml:"run_id"`

	// Discrepancies is sorted by DisputeID, then type, then severity.
	Discrepancies []Discrepancy `json:"discrepancies" yaml:"discrepancies"`

	Summary Summary `json:"summary" yaml:"summary"`

	// ProcessedAt is the UTC completion time of the run.
	ProcessedAt time.Time `json:"processed_at" yaml:"processed_at"`
}

// HighSeverity returns the discrepancies with severity High or above, in result order.
func (r *Result) HighSeverity() []Discrepancy {
	return filterAtLeast(r.Discrepancies, SeverityHigh)
}

// Pair is one external and one internal record sharing a DisputeID.
type Pair struct {
	External *Dispute
	Internal *Dispute
}
