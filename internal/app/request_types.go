package app

import "tradedoc-recon/internal/core"

// ReconcileRequest is the input for a reconciliation run over already
// extracted records.
type ReconcileRequest struct {
	// Items are the extracted line item records, in document order.
	Items []core.Record

	// Total is the document-level total record. Nil when the document
	// carries no totals section.
	Total core.Record

	// POLines overrides the PO master lookup. When nil, the service
	// resolves the master through its POSource.
	POLines []core.POLine
}

// ProcessDocumentRequest is the input for the full extract-and-reconcile
// pipeline on one document.
type ProcessDocumentRequest struct {
	// Name identifies the document set in results and logs.
	Name string

	// Text is the OCR text of the invoice, packing list and, when
	// present, bill of lading and certificate of origin.
	Text string

	// POMasterJSON is the raw PO master export, forwarded to the
	// extractor as grounding context. Optional.
	POMasterJSON string

	// SkipTotal disables the total record extraction for documents that
	// carry no totals section.
	SkipTotal bool
}
