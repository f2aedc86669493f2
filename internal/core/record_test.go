package core_test

import (
	"encoding/json"
	"strings"
	"testing"

	"tradedoc-recon/internal/core"
)

func TestRecord_UnmarshalJSON_CoercesScalars(t *testing.T) {
	raw := `{
		"inv_invoice_no": "INV-001",
		"inv_quantity": 10,
		"inv_unit_price": 2.5,
		"match_score": true,
		"match_description": null
	}`
	var r core.Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]string{
		"inv_invoice_no":    "INV-001",
		"inv_quantity":      "10",
		"inv_unit_price":    "2.5",
		"match_score":       "true",
		"match_description": core.Absent,
	}
	for field, expected := range want {
		if got := r.Get(field); got != expected {
			t.Errorf("field %s = %q, want %q", field, got, expected)
		}
	}
}

func TestRecord_UnmarshalJSON_RejectsNested(t *testing.T) {
	var r core.Record
	if err := json.Unmarshal([]byte(`{"inv_quantity": [1,2]}`), &r); err == nil {
		t.Error("expected error for non-scalar value")
	}
}

func TestRecord_FailAccumulatesInOrder(t *testing.T) {
	r := core.Record{}
	r.InitVerdict()

	if !r.Passed() {
		t.Fatal("fresh record must start with a passing verdict")
	}
	if r.Get(core.FieldMatchDescription) != core.Absent {
		t.Fatal("fresh record must start with an absent description")
	}

	r.Fail("first problem")
	r.Fail("second problem")

	if r.Passed() {
		t.Error("verdict must flip to false on the first failure")
	}
	if got := r.Get(core.FieldMatchDescription); got != "first problem; second problem" {
		t.Errorf("unexpected description %q", got)
	}
}

func TestRecord_FailIsIdempotent(t *testing.T) {
	r := core.Record{}
	r.InitVerdict()
	r.Fail("same problem")
	r.Fail("same problem")

	if got := r.Get(core.FieldMatchDescription); got != "same problem" {
		t.Errorf("duplicate message must not be appended twice, got %q", got)
	}
}

func TestRecord_VerdictInvariant(t *testing.T) {
	// match_description is the absent-marker iff match_score is true.
	r := core.Record{}
	r.InitVerdict()
	if r.Passed() != (r.Get(core.FieldMatchDescription) == core.Absent) {
		t.Error("invariant violated on fresh record")
	}
	r.Fail("x")
	if r.Passed() {
		t.Error("failed record must not pass")
	}
	if r.Get(core.FieldMatchDescription) == core.Absent {
		t.Error("failed record must carry a description")
	}
}

func TestRecord_FieldsStableOrder(t *testing.T) {
	r := core.Record{
		"po_no":             "1",
		"inv_invoice_no":    "2",
		"match_score":       "true",
		"match_description": core.Absent,
	}
	fields := r.Fields()
	if fields[0] != core.FieldMatchScore || fields[1] != core.FieldMatchDescription {
		t.Errorf("verdict columns must come first, got %v", fields[:2])
	}
	rest := strings.Join(fields[2:], ",")
	if rest != "inv_invoice_no,po_no" {
		t.Errorf("remaining columns must be sorted, got %s", rest)
	}
}
