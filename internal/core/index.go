package core

// indexKey addresses candidates by normalized PO number and normalized
// article code.
type indexKey struct {
	po      string
	article string
}

// candidate is a PO master line together with its position in the loaded
// dataset. The position doubles as the exclusivity key and as the
// tie-break: first-registered wins, matching the master's item order.
type candidate struct {
	ord  int
	line *POLine
}

// POIndex is the lookup from (normalized PO number, normalized article)
// to candidate PO master lines.
type POIndex struct {
	byKey map[indexKey][]candidate
	pos   map[string]bool // normalized PO numbers present at all
}

// BuildPOIndex registers every PO line under its normalized PO number
// combined separately with its normalized vendor-article code and its
// normalized SAP-article code, so one line may be reachable under two
// keys. Empty normalized keys are excluded and can never match.
func BuildPOIndex(lines []POLine) *POIndex {
	idx := &POIndex{
		byKey: make(map[indexKey][]candidate),
		pos:   make(map[string]bool),
	}
	for i := range lines {
		l := &lines[i]
		po := NormalizePONumber(l.PONo)
		if po == "" {
			continue
		}
		idx.pos[po] = true

		vendor := NormalizeArticleKey(l.VendorArticleNo)
		sap := NormalizeArticleKey(l.SAPArticleNo)
		c := candidate{ord: i, line: l}
		if vendor != "" {
			k := indexKey{po: po, article: vendor}
			idx.byKey[k] = append(idx.byKey[k], c)
		}
		if sap != "" && sap != vendor {
			k := indexKey{po: po, article: sap}
			idx.byKey[k] = append(idx.byKey[k], c)
		}
	}
	return idx
}

// HasPO reports whether any line was registered under the normalized PO
// number.
func (idx *POIndex) HasPO(poNorm string) bool {
	return idx.pos[poNorm]
}

// Candidates returns the registered lines for the key in insertion order.
func (idx *POIndex) Candidates(poNorm, articleNorm string) []candidate {
	if poNorm == "" || articleNorm == "" {
		return nil
	}
	return idx.byKey[indexKey{po: poNorm, article: articleNorm}]
}
