package core_test

import (
	"testing"

	"tradedoc-recon/internal/core"
)

func poMaster() []core.POLine {
	return []core.POLine{
		{PONo: "4500012345", VendorArticleNo: "ART-1", SAPArticleNo: "100001", LineNo: "10", Quantity: "10", Unit: "PC", Price: "2.5", Currency: "USD", POText: "WIDGET A"},
		{PONo: "4500012345", VendorArticleNo: "ART-2", SAPArticleNo: "100002", LineNo: "20", Quantity: "5", Unit: "PC", Price: "4", Currency: "USD", POText: "WIDGET B"},
		{PONo: "4500099999", VendorArticleNo: "ART-1", SAPArticleNo: "100001", LineNo: "10", Quantity: "7", Unit: "PC", Price: "3", Currency: "EUR", POText: "WIDGET A"},
	}
}

func line(po, spart, desc string) core.Record {
	return core.Record{
		core.FieldInvCustomerPONo: po,
		core.FieldInvSpartItemNo:  spart,
		core.FieldInvDescription:  desc,
	}
}

func TestMatchLines_ByVendorArticle(t *testing.T) {
	idx := core.BuildPOIndex(poMaster())
	items := []core.Record{line("PO-4500012345", "art.1", "WIDGET A")}

	results := core.MatchLines(items, idx)
	if !results[0].Matched {
		t.Fatal("expected line to match")
	}
	if results[0].PO.LineNo != "10" {
		t.Errorf("expected PO line 10, got %s", results[0].PO.LineNo)
	}
}

func TestMatchLines_BySAPArticle(t *testing.T) {
	idx := core.BuildPOIndex(poMaster())
	items := []core.Record{line("4500012345", "100002", "ANYTHING")}

	results := core.MatchLines(items, idx)
	if !results[0].Matched {
		t.Fatal("expected SAP article match")
	}
	if results[0].PO.VendorArticleNo != "ART-2" {
		t.Errorf("matched wrong PO line: %+v", results[0].PO)
	}
}

func TestMatchLines_DescriptionFallback(t *testing.T) {
	idx := core.BuildPOIndex(poMaster())
	// spart does not resolve, but the description column carries the
	// article code.
	items := []core.Record{line("4500012345", "POS-7", "ART-2")}

	results := core.MatchLines(items, idx)
	if !results[0].Matched {
		t.Fatal("expected description fallback to match")
	}
	if results[0].PO.VendorArticleNo != "ART-2" {
		t.Errorf("matched wrong PO line: %+v", results[0].PO)
	}
}

func TestMatchLines_SpartAbsentUsesDescription(t *testing.T) {
	idx := core.BuildPOIndex(poMaster())
	items := []core.Record{line("4500012345", core.Absent, "ART-1")}

	results := core.MatchLines(items, idx)
	if !results[0].Matched {
		t.Fatal("expected match via description when spart is absent")
	}
}

func TestMatchLines_Exclusivity(t *testing.T) {
	// Two invoice lines claim the same PO+article; the master has exactly
	// one qualifying line. Only the first occurrence may win.
	master := []core.POLine{
		{PONo: "4500012345", VendorArticleNo: "ART-1", LineNo: "10", Quantity: "10", Price: "2.5", Currency: "USD"},
	}
	idx := core.BuildPOIndex(master)
	items := []core.Record{
		line("4500012345", "ART-1", "WIDGET A"),
		line("4500012345", "ART-1", "WIDGET A"),
	}

	results := core.MatchLines(items, idx)
	if !results[0].Matched {
		t.Error("first occurrence should match")
	}
	if results[1].Matched {
		t.Error("second occurrence must be unmatched: PO line already consumed")
	}
}

func TestMatchLines_ExclusivityAcrossKeys(t *testing.T) {
	// The same master line is indexed under its vendor and SAP article
	// keys; consuming it via one key must consume it under the other too.
	master := []core.POLine{
		{PONo: "4500012345", VendorArticleNo: "ART-1", SAPArticleNo: "100001", LineNo: "10"},
	}
	idx := core.BuildPOIndex(master)
	items := []core.Record{
		line("4500012345", "ART-1", "X"),
		line("4500012345", "100001", "X"),
	}

	results := core.MatchLines(items, idx)
	if !results[0].Matched {
		t.Error("first line should match via vendor article")
	}
	if results[1].Matched {
		t.Error("second line must not re-claim the consumed line via SAP article")
	}
}

func TestMatchLines_DuplicateKeyPrefersFirstRegistered(t *testing.T) {
	master := []core.POLine{
		{PONo: "4500012345", VendorArticleNo: "ART-1", LineNo: "10"},
		{PONo: "4500012345", VendorArticleNo: "ART-1", LineNo: "20"},
	}
	idx := core.BuildPOIndex(master)
	items := []core.Record{
		line("4500012345", "ART-1", "X"),
		line("4500012345", "ART-1", "X"),
	}

	results := core.MatchLines(items, idx)
	if got := results[0].PO.LineNo; got != "10" {
		t.Errorf("first line should take first-registered candidate, got line %s", got)
	}
	if got := results[1].PO.LineNo; got != "20" {
		t.Errorf("second line should take the remaining candidate, got line %s", got)
	}
}

func TestMatchLines_Unmatched(t *testing.T) {
	idx := core.BuildPOIndex(poMaster())
	tests := []struct {
		name string
		item core.Record
	}{
		{"absent PO number", line(core.Absent, "ART-1", "X")},
		{"unknown PO number", line("1111111", "ART-1", "X")},
		{"unknown article", line("4500012345", "NOPE", "ALSO-NOPE")},
		{"article from other PO", line("4500012345", "ART-9", "X")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := core.MatchLines([]core.Record{tt.item}, idx)
			if results[0].Matched {
				t.Error("expected unmatched")
			}
			if results[0].PO != nil {
				t.Error("unmatched result must not carry a PO line")
			}
		})
	}
}

func TestMatchLines_SamePOListedTwiceInMaster(t *testing.T) {
	// Distinct PO groups do not share a used-set entry: matching ART-1 on
	// one PO must not consume ART-1 on another.
	idx := core.BuildPOIndex(poMaster())
	items := []core.Record{
		line("4500012345", "ART-1", "X"),
		line("4500099999", "ART-1", "X"),
	}

	results := core.MatchLines(items, idx)
	if !results[0].Matched || !results[1].Matched {
		t.Fatal("expected both PO groups to match independently")
	}
	if results[0].PO.Currency != "USD" || results[1].PO.Currency != "EUR" {
		t.Error("lines matched against the wrong PO group")
	}
}
