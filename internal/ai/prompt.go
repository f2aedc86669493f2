package ai

import (
	"fmt"
	"strings"
)

// rowCountInstruction asks only for the number of line items; the answer
// drives the batch windows of the detail extraction.
const rowCountInstruction = `You are a deterministic, rule-based document extraction engine for trade documents.
The input contains an invoice and a packing list (and possibly a bill of lading and a certificate of origin).
Count the invoice line items. Respond with the count only, using the provided JSON schema.`

// detailSchemaFields is the exact output schema of one extracted line
// item. Downstream reconciliation depends on these names verbatim.
var detailSchemaFields = []string{
	"index", "match_score", "match_description",
	"inv_invoice_no", "inv_invoice_date", "inv_customer_po_no",
	"inv_vendor_name", "inv_vendor_address", "inv_incoterms_terms",
	"inv_terms", "inv_coo_commodity_origin", "inv_seq",
	"inv_spart_item_no", "inv_description", "inv_quantity",
	"inv_quantity_unit", "inv_unit_price", "inv_price_unit",
	"inv_amount", "inv_amount_unit", "inv_total_quantity",
	"inv_total_amount", "inv_total_nw", "inv_total_gw",
	"inv_total_volume", "inv_total_package",
	"pl_invoice_no", "pl_invoice_date", "pl_messrs", "pl_messrs_address",
	"pl_item_no", "pl_description", "pl_quantity", "pl_package_unit",
	"pl_package_count", "pl_weight_unit", "pl_nw", "pl_gw",
	"pl_volume_unit", "pl_volume", "pl_total_quantity", "pl_total_amount",
	"pl_total_nw", "pl_total_gw", "pl_total_volume", "pl_total_package",
	"bl_no", "bl_date", "bl_shipper_name", "bl_shipper_address",
	"bl_seller_name", "bl_seller_address", "bl_consignee_name",
	"bl_port_of_loading", "bl_port_of_discharge",
	"coo_no", "coo_criteria", "coo_quantity", "coo_quantity_unit",
	"coo_amount", "coo_amount_unit", "coo_gw", "coo_gw_unit",
}

// buildDetailPrompt renders the extraction instruction for one batch
// window. The output is capped to the [first, last] index range, but the
// model must still read the whole document so repeated header values stay
// consistent across batches.
func buildDetailPrompt(totalRows, first, last int) string {
	var b strings.Builder
	b.WriteString(`You are a deterministic, anti-hallucination extraction engine for trade documents.
Extract invoice line items joined with their packing list, bill of lading and
certificate of origin counterparts.

RULES:
1. Extract ONLY values literally present in the documents. Never infer or guess.
2. Never emit JSON literal null. Every empty, missing or not-applicable value
   MUST be the string "null".
3. Numbers must be plain numerics. Units exactly as printed. Dates YYYY-MM-DD.
4. Booleans are the strings "true" and "false".
`)
	fmt.Fprintf(&b, "5. The document has %d line items in total.\n", totalRows)
	fmt.Fprintf(&b, "6. Emit ONLY the line items from index %d to %d, a JSON array with at most %d objects.\n",
		first, last, last-first+1)
	b.WriteString(`7. No markdown, no commentary, no fields outside this schema:

`)
	for _, f := range detailSchemaFields {
		b.WriteString("  ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	return b.String()
}

// totalInstruction extracts the single document-level total record.
const totalInstruction = `You are a deterministic, anti-hallucination extraction engine for trade documents.
Extract ONE JSON object with the document-level totals:
inv_total_quantity, inv_total_amount, inv_total_nw, inv_total_gw,
inv_total_volume, inv_total_package, pl_total_quantity, pl_total_amount,
pl_total_nw, pl_total_gw, pl_total_volume, pl_total_package,
po_quantity, po_price, match_score, match_description.
Every empty or missing value MUST be the string "null". Numbers must be plain
numerics. No markdown, no commentary.`
