package reconcile

import (
	"fmt"
	"sort"
)

// Index builds an ID-keyed lookup over records. The first occurrence of a
// DisputeID wins; later duplicates are counted and dropped. Empty IDs are
// treated literally as keys.
func Index(records []Dispute) (map[string]*Dispute, int) {
	index := make(map[string]*Dispute, len(records))
	dupes := 0
	for i := range records {
		id := records[i].DisputeID
		if _, exists := index[id]; exists {
			dupes++
			continue
		}
		index[id] = &records[i]
	}
	return index, dupes
}

// FindMissing returns one presence discrepancy of type t for every key in
// primary that is absent from secondary, sorted by DisputeID.
func FindMissing(primary, secondary map[string]*Dispute, t DiscrepancyType) []Discrepancy {
	var out []Discrepancy
	for id, record := range primary {
		if _, ok := secondary[id]; ok {
			continue
		}

		d := Discrepancy{
			DisputeID: id,
			Type:      t,
			Severity:  PresenceSeverity(t, record),
		}
		if t == MissingInInternal {
			d.External = record
			d.Description = fmt.Sprintf("Dispute %s exists in external report but missing in internal records", id)
		} else {
			d.Internal = record
			d.Description = fmt.Sprintf("Dispute %s exists in internal records but missing in external report", id)
		}
		out = append(out, d)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].DisputeID < out[j].DisputeID
	})
	return out
}

// MatchPairs returns the ID-matched pairs of both lookups, sorted by DisputeID.
func MatchPairs(external, internal map[string]*Dispute) []Pair {
	pairs := make([]Pair, 0, min(len(external), len(internal)))
	for id, ext := range external {
		if in, ok := internal[id]; ok {
			pairs = append(pairs, Pair{External: ext, Internal: in})
		}
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].External.DisputeID < pairs[j].External.DisputeID
	})
	return pairs
}

// Match runs both presence scans and pairs the shared IDs in one call.
func Match(external, internal map[string]*Dispute) (missingInternal, missingExternal []Discrepancy, pairs []Pair) {
	missingInternal = FindMissing(external, internal, MissingInInternal)
	missingExternal = FindMissing(internal, external, MissingInExternal)
	pairs = MatchPairs(external, internal)
	return missingInternal, missingExternal, pairs
}
