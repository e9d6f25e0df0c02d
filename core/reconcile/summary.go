package reconcile

import "sort"

// Summarize recomputes every count from the discrepancy set.
func Summarize(externalCount, internalCount int, discrepancies []Discrepancy) Summary {
	s := Summary{
		TotalExternalRecords: externalCount,
		TotalInternalRecords: internalCount,
		TotalDiscrepancies:   len(discrepancies),
	}

	for _, d := range discrepancies {
		switch d.Type {
		case MissingInInternal:
			s.MissingInInternal++
		case MissingInExternal:
			s.MissingInExternal++
		case StatusMismatch:
			s.StatusMismatches++
		case AmountMismatch:
			s.AmountMismatches++
		case CurrencyMismatch:
			s.CurrencyMismatches++
		case ReasonMismatch:
			s.ReasonMismatches++
		}
		if d.Severity >= SeverityHigh {
			s.HighSeverityDiscrepancies++
		}
	}

	return s
}

// SortDiscrepancies orders discrepancies by DisputeID, then type, then severity.
func SortDiscrepancies(discrepancies []Discrepancy) {
	sort.SliceStable(discrepancies, func(i, j int) bool {
		a, b := discrepancies[i], discrepancies[j]
		if a.DisputeID != b.DisputeID {
			return a.DisputeID < b.DisputeID
		}
		if typeOrder[a.Type] != typeOrder[b.Type] {
			return typeOrder[a.Type] < typeOrder[b.Type]
		}
		return a.Severity < b.Severity
	})
}

func filterAtLeast(discrepancies []Discrepancy, floor Severity) []Discrepancy {
	var out []Discrepancy
	for _, d := range discrepancies {
		if d.Severity >= floor {
			out = append(out, d)
		}
	}
	return out
}
