package export_test

import (
	"bytes"
	"testing"

	"tradedoc-recon/internal/core"
	"tradedoc-recon/internal/export"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	items, total := sampleItems()

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, items, total); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Reconciliation")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	// header + 2 items + total
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	if rows[0][0] != core.FieldMatchScore || rows[0][1] != core.FieldMatchDescription {
		t.Errorf("header = %v", rows[0][:2])
	}
	if rows[1][0] != "true" {
		t.Errorf("passing line verdict = %q", rows[1][0])
	}
	if rows[2][0] != "false" || rows[2][1] != "PO item tidak ditemukan" {
		t.Errorf("failing line verdict = %q %q", rows[2][0], rows[2][1])
	}
}
