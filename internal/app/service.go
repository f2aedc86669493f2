package app

import (
	"context"

	"tradedoc-recon/internal/core"
)

// POSource supplies purchase order master lines for a set of referenced
// PO numbers. Implementations exist for the PostgreSQL store and for a
// directory holding a single PO JSON export.
type POSource interface {
	LinesForPOs(ctx context.Context, poNumbers []string) ([]core.POLine, error)
}

// ApplicationService is the single interface all entry points (CLI,
// verification tools) call. It decouples presentation from business
// logic. Implementations must contain no fmt.Println and no display
// logic of any kind.
type ApplicationService interface {
	// Reconcile matches the extracted line items against the PO master,
	// validates them and reconciles totals. The input records are not
	// modified; the result carries annotated copies.
	Reconcile(ctx context.Context, req ReconcileRequest) (*ReconcileResult, error)

	// ProcessDocument runs the full pipeline on one document: extract the
	// line items and the total record, then reconcile them.
	ProcessDocument(ctx context.Context, req ProcessDocumentRequest) (*ReconcileResult, error)

	// LoadPOMaster returns the master lines for the PO numbers the given
	// items reference.
	LoadPOMaster(ctx context.Context, items []core.Record) ([]core.POLine, error)
}
