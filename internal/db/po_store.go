package db

import (
	"context"
	"fmt"

	"tradedoc-recon/internal/core"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// POLineStore persists the purchase order master export. All columns are
// text: values keep the exact formatting of the source export, and
// numeric interpretation happens during reconciliation.
type POLineStore interface {
	// ReplacePO swaps out every stored line of one purchase order.
	ReplacePO(ctx context.Context, poNo string, lines []core.POLine) error

	// FetchByPONumbers returns the lines of the given purchase orders in
	// registration order. Numbers are compared by their normalized form,
	// so invoice spellings with prefixes or leading zeros still resolve.
	// Unknown numbers are silently absent from the result.
	FetchByPONumbers(ctx context.Context, poNumbers []string) ([]core.POLine, error)

	// FetchAll returns every stored line in registration order.
	FetchAll(ctx context.Context) ([]core.POLine, error)
}

type poLineStore struct {
	pool *pgxpool.Pool
}

// NewPOLineStore constructs a POLineStore backed by PostgreSQL.
func NewPOLineStore(pool *pgxpool.Pool) POLineStore {
	return &poLineStore{pool: pool}
}

const poLineColumns = `po_no, line_no, vendor_article_no, sap_article_no, po_text,
       quantity, unit, price, currency, info_record_price, info_record_currency`

func (s *poLineStore) ReplacePO(ctx context.Context, poNo string, lines []core.POLine) error {
	if poNo == "" {
		return fmt.Errorf("po number is empty")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	norm := core.NormalizePONumber(poNo)
	if norm == "" {
		return fmt.Errorf("po number %q has no digits", poNo)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM po_lines WHERE po_no_norm = $1", norm); err != nil {
		return fmt.Errorf("clear lines for PO %s: %w", poNo, err)
	}

	for i, l := range lines {
		if _, err := tx.Exec(ctx, `
			INSERT INTO po_lines (`+poLineColumns+`, po_no_norm, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
			poNo, l.LineNo, l.VendorArticleNo, l.SAPArticleNo, l.POText,
			l.Quantity, l.Unit, l.Price, l.Currency, l.InfoRecordPrice, l.InfoRecordCurrency,
			norm, i,
		); err != nil {
			return fmt.Errorf("insert line %d of PO %s: %w", i+1, poNo, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit PO %s: %w", poNo, err)
	}
	return nil
}

func (s *poLineStore) FetchByPONumbers(ctx context.Context, poNumbers []string) ([]core.POLine, error) {
	norms := make([]string, 0, len(poNumbers))
	seen := make(map[string]bool, len(poNumbers))
	for _, n := range poNumbers {
		norm := core.NormalizePONumber(n)
		if norm == "" || seen[norm] {
			continue
		}
		seen[norm] = true
		norms = append(norms, norm)
	}
	if len(norms) == 0 {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx, `
		SELECT `+poLineColumns+`
		FROM po_lines
		WHERE po_no_norm = ANY($1)
		ORDER BY po_no_norm, position`,
		norms,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch PO lines: %w", err)
	}
	return scanPOLines(rows)
}

func (s *poLineStore) FetchAll(ctx context.Context) ([]core.POLine, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+poLineColumns+`
		FROM po_lines
		ORDER BY po_no, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("fetch PO lines: %w", err)
	}
	return scanPOLines(rows)
}

func scanPOLines(rows pgx.Rows) ([]core.POLine, error) {
	defer rows.Close()

	var lines []core.POLine
	for rows.Next() {
		var l core.POLine
		if err := rows.Scan(
			&l.PONo, &l.LineNo, &l.VendorArticleNo, &l.SAPArticleNo, &l.POText,
			&l.Quantity, &l.Unit, &l.Price, &l.Currency, &l.InfoRecordPrice, &l.InfoRecordCurrency,
		); err != nil {
			return nil, fmt.Errorf("scan PO line: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate PO lines: %w", err)
	}
	return lines, nil
}
