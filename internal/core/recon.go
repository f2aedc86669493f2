package core

// Summary aggregates the outcome of one reconciliation run.
type Summary struct {
	TotalLines     int
	MatchedLines   int
	UnmatchedLines int
	PassedLines    int
	FailedLines    int
	TotalPassed    bool
	HasTotalRecord bool
}

// Reconcile runs the full single-document pass: index the PO master
// subset, match each line to at most one unused PO line, populate the
// authoritative PO fields, assign per-PO sequence numbers, validate every
// line, then reconcile the document totals. total may be nil when no
// total extraction was requested.
//
// The pass is pure and synchronous: all state (the used-set, the
// sequence counters) is created fresh here, so runs over different
// documents are fully independent and may execute in parallel.
func Reconcile(items []Record, poLines []POLine, total Record) Summary {
	idx := BuildPOIndex(poLines)
	results := MatchLines(items, idx)

	summary := Summary{TotalLines: len(items), TotalPassed: true}
	for _, res := range results {
		Populate(res)
		if res.Matched {
			summary.MatchedLines++
		} else {
			summary.UnmatchedLines++
		}
	}

	NewSequenceState().Assign(items)

	for _, item := range items {
		ValidateLine(item)
	}

	ReconcileTotals(items, total, poLines)

	for _, item := range items {
		if item.Passed() {
			summary.PassedLines++
		} else {
			summary.FailedLines++
		}
	}
	if total != nil {
		summary.HasTotalRecord = true
		summary.TotalPassed = total.Passed()
	}
	return summary
}

// ReferencedPONumbers returns the distinct raw PO numbers the line items
// reference, in first-seen order. Callers use it to narrow the PO master
// fetch to the subset relevant for one document.
func ReferencedPONumbers(items []Record) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		raw := item.Get(FieldInvCustomerPONo)
		norm := NormalizePONumber(raw)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		out = append(out, raw)
	}
	return out
}
