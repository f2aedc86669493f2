package app

import "tradedoc-recon/internal/core"

// ReconcileResult is returned by Reconcile and ProcessDocument.
type ReconcileResult struct {
	// RunID uniquely identifies this reconciliation run.
	RunID string

	// DocumentName echoes the processed document's name, when known.
	DocumentName string

	// Items are the annotated line item records: PO fields populated,
	// sequence numbers assigned, verdicts and error messages set.
	Items []core.Record

	// Total is the annotated total record. Nil when the run had none.
	Total core.Record

	// Summary aggregates the run's verdicts.
	Summary core.Summary
}
