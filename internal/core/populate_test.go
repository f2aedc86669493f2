package core_test

import (
	"strings"
	"testing"

	"tradedoc-recon/internal/core"
)

func TestPopulate_Matched(t *testing.T) {
	item := core.Record{}
	po := &core.POLine{
		PONo:            "4500012345",
		VendorArticleNo: "ART-1",
		SAPArticleNo:    "100001",
		POText:          "WIDGET A",
		LineNo:          "10",
		Quantity:        "10",
		Unit:            "PC",
		Price:           "2.5",
		Currency:        "USD",
	}
	core.Populate(core.MatchResult{Item: item, PO: po, Matched: true})

	want := map[string]string{
		core.FieldPONo:              "4500012345",
		core.FieldPOLine:            "10",
		core.FieldPOQuantity:        "10",
		core.FieldPOUnit:            "PC",
		core.FieldPOPrice:           "2.5",
		core.FieldPOCurrency:        "USD",
		core.FieldPOText:            "WIDGET A",
		core.FieldPOVendorArticleNo: "ART-1",
	}
	for field, expected := range want {
		if got := item.Get(field); got != expected {
			t.Errorf("%s = %q, want %q", field, got, expected)
		}
	}
	if !item.Passed() {
		t.Errorf("matched line must keep a passing verdict, got %q", item.Get(core.FieldMatchDescription))
	}
	if !item.IsAbsent(core.FieldPOInfoRecordPrice) {
		t.Error("missing info-record price must become the absent-marker")
	}
}

func TestPopulate_VendorArticleFallbackChain(t *testing.T) {
	tests := []struct {
		name   string
		vendor string
		sap    string
		want   string
	}{
		{"vendor preferred", "ART-1", "100001", "ART-1"},
		{"sap when vendor missing", "", "100001", "100001"},
		{"absent when both missing", "", "", core.Absent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := core.Record{}
			po := &core.POLine{PONo: "1", VendorArticleNo: tt.vendor, SAPArticleNo: tt.sap}
			core.Populate(core.MatchResult{Item: item, PO: po, Matched: true})
			if got := item.Get(core.FieldPOVendorArticleNo); got != tt.want {
				t.Errorf("po_vendor_article_no = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPopulate_Unmatched(t *testing.T) {
	item := core.Record{}
	core.Populate(core.MatchResult{Item: item})

	if item.Passed() {
		t.Error("unmatched line must fail")
	}
	if got := item.Get(core.FieldMatchDescription); !strings.Contains(got, core.ErrPOItemNotFound) {
		t.Errorf("expected %q in description, got %q", core.ErrPOItemNotFound, got)
	}
	for _, f := range []string{core.FieldPONo, core.FieldPOPrice, core.FieldPOQuantity, core.FieldPOCurrency} {
		if !item.IsAbsent(f) {
			t.Errorf("%s must stay at the absent-marker on unmatched lines", f)
		}
	}
}

func TestPopulate_UnmatchedAccumulatesWithEarlierErrors(t *testing.T) {
	item := core.Record{}
	item.InitVerdict()
	item.Fail("extraction warning")
	core.Populate(core.MatchResult{Item: item})

	got := item.Get(core.FieldMatchDescription)
	if !strings.HasPrefix(got, "extraction warning; ") {
		t.Errorf("populate must append, not overwrite: %q", got)
	}
}
