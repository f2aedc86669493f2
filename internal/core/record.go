package core

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Absent is the sentinel for a missing or not-applicable field value.
// Extractors emit the literal string "null" instead of JSON null, so a
// record never carries genuinely empty values.
const Absent = "null"

// Record is one extracted row (a line item or the document total record).
// Every value is a string; numeric fields hold their textual form and are
// coerced on demand via ParseDecimal.
type Record map[string]string

// UnmarshalJSON accepts heterogeneous extractor output: JSON strings,
// numbers, booleans and nulls all land as their string forms.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(Record, len(raw))
	for k, v := range raw {
		s, err := coerceScalar(v)
		if err != nil {
			return fmt.Errorf("field %s: %w", k, err)
		}
		out[k] = s
	}
	*r = out
	return nil
}

// coerceScalar renders a JSON scalar as the string the engine works with.
// null is checked first: Unmarshal leaves the target untouched on JSON
// null, which would otherwise read as an empty string.
func coerceScalar(raw json.RawMessage) (string, error) {
	if string(raw) == "null" {
		return Absent, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		if b {
			return "true", nil
		}
		return "false", nil
	}
	return "", fmt.Errorf("value %s is not a scalar", string(raw))
}

// Get returns the field value, or the absent-marker for unknown fields.
func (r Record) Get(field string) string {
	v, ok := r[field]
	if !ok {
		return Absent
	}
	return v
}

// IsAbsent reports whether the field is missing or holds the absent-marker.
func (r Record) IsAbsent(field string) bool {
	return r.Get(field) == Absent
}

// Set stores a value, substituting the absent-marker for empty input.
func (r Record) Set(field, value string) {
	if strings.TrimSpace(value) == "" {
		r[field] = Absent
		return
	}
	r[field] = value
}

// InitVerdict seeds the match verdict fields for a fresh record: the score
// starts true and flips one-way to false on the first failing check.
func (r Record) InitVerdict() {
	if _, ok := r[FieldMatchScore]; !ok {
		r[FieldMatchScore] = "true"
	}
	if _, ok := r[FieldMatchDescription]; !ok {
		r[FieldMatchDescription] = Absent
	}
}

// Fail records a validation failure. Messages accumulate in execution
// order joined by "; "; appending the same message twice is a no-op so
// re-validating an unchanged record stays idempotent.
func (r Record) Fail(msg string) {
	r[FieldMatchScore] = "false"
	cur := r.Get(FieldMatchDescription)
	if cur == Absent || cur == "" {
		r[FieldMatchDescription] = msg
		return
	}
	for _, existing := range strings.Split(cur, "; ") {
		if existing == msg {
			return
		}
	}
	r[FieldMatchDescription] = cur + "; " + msg
}

// Failf is Fail with formatting.
func (r Record) Failf(format string, args ...any) {
	r.Fail(fmt.Sprintf(format, args...))
}

// Passed reports the current match verdict.
func (r Record) Passed() bool {
	return r.Get(FieldMatchScore) == "true"
}

// Fields returns the record's field names in sorted order, with the
// verdict pair first. Report writers rely on this for stable columns.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r))
	for k := range r {
		if k == FieldMatchScore || k == FieldMatchDescription {
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)
	return append([]string{FieldMatchScore, FieldMatchDescription}, names...)
}

// Clone returns a shallow copy. Matching mutates records in place; tests
// use Clone to compare before/after states.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
