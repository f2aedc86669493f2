package core

import "strconv"

// SequenceState assigns per-PO-group ordinals. It is an explicit state
// object rather than package state so concurrent runs over different
// documents cannot interfere.
type SequenceState struct {
	counters map[string]int
}

func NewSequenceState() *SequenceState {
	return &SequenceState{counters: make(map[string]int)}
}

// Assign numbers each line within its PO group, 1-based, in presentation
// order. Lines without a PO number get the absent-marker. The ordinal is
// stable regardless of how extraction batched the rows.
func (s *SequenceState) Assign(items []Record) {
	for _, item := range items {
		po := NormalizePONumber(item.Get(FieldInvCustomerPONo))
		if po == "" {
			item[FieldInvSeq] = Absent
			continue
		}
		s.counters[po]++
		item[FieldInvSeq] = strconv.Itoa(s.counters[po])
	}
}
