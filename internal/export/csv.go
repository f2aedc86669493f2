package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"tradedoc-recon/internal/core"
)

// Columns returns the header row for a set of annotated records: the
// verdict pair first, then every other field in sorted order. The union
// over all records keeps the header stable even when extraction dropped
// a field on some lines; the ordering itself is Record.Fields.
func Columns(items []core.Record, total core.Record) []string {
	merged := make(core.Record)
	for _, item := range items {
		for f := range item {
			merged[f] = ""
		}
	}
	for f := range total {
		merged[f] = ""
	}
	return merged.Fields()
}

// WriteCSV writes the annotated line items, followed by the total record
// when present, as one CSV table. Missing fields render as the absent
// marker so every row has the same width.
func WriteCSV(w io.Writer, items []core.Record, total core.Record) error {
	columns := Columns(items, total)

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, len(columns))
	writeRecord := func(rec core.Record) error {
		for i, col := range columns {
			row[i] = rec.Get(col)
		}
		return cw.Write(row)
	}

	for i, item := range items {
		if err := writeRecord(item); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	if total != nil {
		if err := writeRecord(total); err != nil {
			return fmt.Errorf("write csv total row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
