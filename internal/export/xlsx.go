package export

import (
	"fmt"
	"io"

	"tradedoc-recon/internal/core"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Reconciliation"

// WriteXLSX writes the annotated records as a spreadsheet with a frozen,
// bold header row. Failed lines get a red verdict cell so reviewers can
// scan a long document quickly.
func WriteXLSX(w io.Writer, items []core.Record, total core.Record) error {
	columns := Columns(items, total)

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	failStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "9C0006"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFC7CE"}},
	})
	if err != nil {
		return fmt.Errorf("fail style: %w", err)
	}

	header := make([]any, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return fmt.Errorf("resolve last column: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	rowNum := 2
	writeRecord := func(rec core.Record) error {
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = rec.Get(col)
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
		if !rec.Passed() {
			if err := f.SetCellStyle(sheetName, cell, cell, failStyle); err != nil {
				return err
			}
		}
		rowNum++
		return nil
	}

	for i, item := range items {
		if err := writeRecord(item); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	if total != nil {
		if err := writeRecord(total); err != nil {
			return fmt.Errorf("write total row: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
