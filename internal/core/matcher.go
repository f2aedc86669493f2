package core

// MatchResult is the transient association between a line item and its PO
// master line. It travels alongside the Record instead of being smuggled
// into it, so no matcher bookkeeping ever leaks into the output.
type MatchResult struct {
	Item    Record
	PO      *POLine
	Matched bool
}

// usedKey identifies one consumed PO master line across the whole run:
// a PO line may satisfy at most one invoice line (exclusivity invariant).
// Without it, duplicate invoice rows could all claim the same PO
// allocation and silently inflate the matched quantity.
type usedKey struct {
	po  string
	ord int
}

// MatchLines assigns at most one unused PO master line to each line item,
// in presentation order. Per line:
//
//  1. normalize the invoice PO number and the article identifier (the
//     spart/item number field, falling back to the description text when
//     absent — some documents place the article code in the description
//     column);
//  2. an empty PO number or one unknown to the index means unmatched;
//  3. otherwise take the first unused candidate whose vendor or SAP
//     article equals the normalized article; failing that, the first
//     unused candidate matching the normalized description.
//
// Multiple invoice lines referencing the same PO+article succeed only for
// the first occurrence; later ones come back unmatched.
func MatchLines(items []Record, idx *POIndex) []MatchResult {
	used := make(map[usedKey]bool)
	results := make([]MatchResult, 0, len(items))

	for _, item := range items {
		res := MatchResult{Item: item}

		poNorm := NormalizePONumber(item.Get(FieldInvCustomerPONo))
		if poNorm == "" || !idx.HasPO(poNorm) {
			results = append(results, res)
			continue
		}

		article := NormalizeArticleKey(item.Get(FieldInvSpartItemNo))
		desc := NormalizeArticleKey(item.Get(FieldInvDescription))
		if article == "" {
			article = desc
		}

		c, ok := takeFirstUnused(idx.Candidates(poNorm, article), poNorm, used)
		if !ok && desc != article {
			// Secondary fallback: the description column sometimes
			// carries the article code even when spart is populated.
			c, ok = takeFirstUnused(idx.Candidates(poNorm, desc), poNorm, used)
		}
		if ok {
			used[usedKey{po: poNorm, ord: c.ord}] = true
			res.PO = c.line
			res.Matched = true
		}
		results = append(results, res)
	}
	return results
}

func takeFirstUnused(cands []candidate, poNorm string, used map[usedKey]bool) (candidate, bool) {
	for _, c := range cands {
		if !used[usedKey{po: poNorm, ord: c.ord}] {
			return c, true
		}
	}
	return candidate{}, false
}
