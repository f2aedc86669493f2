package core_test

import (
	"strings"
	"testing"

	"tradedoc-recon/internal/core"
)

func TestReconcile_FullRun(t *testing.T) {
	poLines := []core.POLine{
		{PONo: "4500012345", VendorArticleNo: "ART-1", LineNo: "10", Quantity: "10", Unit: "PC", Price: "2.5", Currency: "USD", POText: "WIDGET A"},
		{PONo: "4500012345", VendorArticleNo: "ART-2", LineNo: "20", Quantity: "4", Unit: "PC", Price: "2.5", Currency: "USD", POText: "WIDGET B"},
	}

	good := validLine()
	bad := validLine()
	bad[core.FieldInvSpartItemNo] = "ART-2"
	bad[core.FieldInvDescription] = "WIDGET B"
	bad[core.FieldPLDescription] = "WIDGET B"
	bad[core.FieldInvQuantity] = "4"
	bad[core.FieldPLQuantity] = "4"
	bad[core.FieldInvAmount] = "10.00"
	bad[core.FieldInvUnitPrice] = "2.6" // contract price deviates from PO
	orphan := validLine()
	orphan[core.FieldInvSpartItemNo] = "UNKNOWN"
	orphan[core.FieldInvDescription] = "NOT IN MASTER"
	orphan[core.FieldPLDescription] = "NOT IN MASTER"
	for _, r := range []core.Record{good, bad, orphan} {
		// PO fields come from the master during the run.
		delete(r, core.FieldPONo)
		delete(r, core.FieldPOPrice)
		delete(r, core.FieldPOCurrency)
	}

	items := []core.Record{good, bad, orphan}
	total := core.Record{}
	summary := core.Reconcile(items, poLines, total)

	if summary.TotalLines != 3 {
		t.Errorf("TotalLines = %d, want 3", summary.TotalLines)
	}
	if summary.MatchedLines != 2 || summary.UnmatchedLines != 1 {
		t.Errorf("matched/unmatched = %d/%d, want 2/1", summary.MatchedLines, summary.UnmatchedLines)
	}
	if !summary.HasTotalRecord {
		t.Error("expected total record in summary")
	}

	if !good.Passed() {
		t.Errorf("good line must pass, got %q", description(good))
	}
	if good.Get(core.FieldPOText) != "WIDGET A" {
		t.Error("good line missing populated PO fields")
	}
	if good.Get(core.FieldInvSeq) != "1" || bad.Get(core.FieldInvSeq) != "2" || orphan.Get(core.FieldInvSeq) != "3" {
		t.Errorf("sequence = %s/%s/%s, want 1/2/3",
			good.Get(core.FieldInvSeq), bad.Get(core.FieldInvSeq), orphan.Get(core.FieldInvSeq))
	}

	if bad.Passed() {
		t.Error("deviating price must fail the second line")
	}
	if !strings.Contains(description(bad), "2.6") {
		t.Errorf("price failure must cite the invoice price, got %q", description(bad))
	}

	if orphan.Passed() {
		t.Error("orphan line must fail")
	}
	if !strings.Contains(description(orphan), core.ErrPOItemNotFound) {
		t.Errorf("orphan must carry the not-found error, got %q", description(orphan))
	}
	// A failing line never aborts the run: the other lines were still
	// processed and the totals still reconciled.
	if summary.PassedLines != 1 || summary.FailedLines != 2 {
		t.Errorf("passed/failed = %d/%d, want 1/2", summary.PassedLines, summary.FailedLines)
	}

	// PO aggregates filled onto the total record from the master.
	if got := total.Get(core.FieldPOQuantity); got != "14" {
		t.Errorf("total po_quantity = %q, want 14", got)
	}
	if got := total.Get(core.FieldPOPrice); got != "2.5" {
		t.Errorf("total po_price = %q, want 2.5", got)
	}
}

func TestReconcile_NoBookkeepingFieldsLeak(t *testing.T) {
	poLines := []core.POLine{
		{PONo: "4500012345", VendorArticleNo: "ART-1", LineNo: "10", Quantity: "10", Price: "2.5", Currency: "USD"},
	}
	item := validLine()
	core.Reconcile([]core.Record{item}, poLines, nil)

	for field := range item {
		switch {
		case field == core.FieldMatchScore, field == core.FieldMatchDescription:
		case strings.HasPrefix(field, "inv_"), strings.HasPrefix(field, "pl_"),
			strings.HasPrefix(field, "bl_"), strings.HasPrefix(field, "coo_"),
			strings.HasPrefix(field, "po_"):
		default:
			t.Errorf("internal bookkeeping field %q leaked into the output", field)
		}
	}
}

func TestReconcile_IndependentRuns(t *testing.T) {
	// Each run owns a fresh used-set and sequence state: the same master
	// line may be claimed once per document.
	poLines := []core.POLine{
		{PONo: "4500012345", VendorArticleNo: "ART-1", LineNo: "10", Quantity: "10", Price: "2.5", Currency: "USD"},
	}
	for run := 0; run < 2; run++ {
		item := validLine()
		summary := core.Reconcile([]core.Record{item}, poLines, nil)
		if summary.MatchedLines != 1 {
			t.Fatalf("run %d: expected a fresh used-set, matched = %d", run, summary.MatchedLines)
		}
		if got := item.Get(core.FieldInvSeq); got != "1" {
			t.Errorf("run %d: inv_seq = %q, want 1", run, got)
		}
	}
}

func TestReferencedPONumbers(t *testing.T) {
	items := []core.Record{
		{core.FieldInvCustomerPONo: "PO-4500012345"},
		{core.FieldInvCustomerPONo: "0004500012345"}, // same PO, different spelling
		{core.FieldInvCustomerPONo: "4500099999"},
		{core.FieldInvCustomerPONo: core.Absent},
	}
	got := core.ReferencedPONumbers(items)
	want := []string{"PO-4500012345", "4500099999"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
