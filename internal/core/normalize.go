package core

import "strings"

// NormalizePONumber canonicalizes a PO number for comparison only: strip
// whitespace, drop every non-digit, strip leading zeros. PO numbers are
// typed inconsistently across documents (leading zeros, dashes), so
// numeric identity is the correct equality notion. The stored value is
// never rewritten with the normalized form.
func NormalizePONumber(v string) string {
	if v == "" || v == Absent {
		return ""
	}
	var b strings.Builder
	for _, c := range strings.TrimSpace(v) {
		if c >= '0' && c <= '9' {
			b.WriteRune(c)
		}
	}
	return strings.TrimLeft(b.String(), "0")
}

// NormalizeArticleKey canonicalizes a vendor/SAP article code for
// comparison: uppercase, keep only [A-Z0-9]. Vendor article codes vary in
// punctuation and spacing across systems.
func NormalizeArticleKey(v string) string {
	if v == "" || v == Absent {
		return ""
	}
	var b strings.Builder
	for _, c := range strings.ToUpper(strings.TrimSpace(v)) {
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Fallback returns the first usable value in order, or the absent-marker
// when every candidate is empty or absent. This is the ordered fallback
// chain used wherever a field has a primary and a substitute source.
func Fallback(values ...string) string {
	for _, v := range values {
		if v != "" && v != Absent {
			return v
		}
	}
	return Absent
}
