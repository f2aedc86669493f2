package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"tradedoc-recon/internal/ai"

	"github.com/joho/godotenv"
)

// Smoke test for the extraction agent against a tiny synthetic document.
// Verifies row counting, batching and the null-string discipline without
// touching the database.
func main() {
	_ = godotenv.Load() // Load .env if present

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY not set")
	}

	agent := ai.NewAgent(apiKey)
	ctx := context.Background()

	doc := ai.Document{
		Name: "verify-agent",
		Text: `COMMERCIAL INVOICE
Invoice No: INV-2026-001    Date: 2026-08-12
Vendor: PT Contoh Makmur, Jl. Industri 5, Jakarta
Customer PO: 4500012345

No  Article   Description      Qty   Unit  Unit Price  Amount
1   ART-001   Widget small     10    PC    2.50        25.00
2   ART-002   Widget large     4     PC    7.00        28.00

TOTAL: 14 PC  53.00 USD

PACKING LIST
Invoice No: INV-2026-001    Date: 2026-08-12
1  Widget small  10 PC  NW 4.0 KG  GW 5.0 KG
2  Widget large  4 PC   NW 6.0 KG  GW 7.5 KG`,
		POMasterJSON: `[
  {"po_no": "4500012345", "po_line": 10, "vendor_article_no": "ART-001", "po_quantity": "10", "po_unit": "PC", "po_price": "2.50", "po_currency": "USD"},
  {"po_no": "4500012345", "po_line": 20, "vendor_article_no": "ART-002", "po_quantity": "4", "po_unit": "PC", "po_price": "7.00", "po_currency": "USD"}
]`,
	}

	fmt.Println("EXTRACTING LINE ITEMS...")
	items, err := agent.ExtractLineItems(ctx, doc)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	fmt.Printf("\n--- %d LINE ITEMS ---\n", len(items))
	for i, item := range items {
		fmt.Printf("%d. invoice=%s po=%s article=%s qty=%s price=%s amount=%s\n",
			i+1,
			item.Get("inv_invoice_no"), item.Get("inv_customer_po_no"),
			item.Get("inv_spart_item_no"), item.Get("inv_quantity"),
			item.Get("inv_unit_price"), item.Get("inv_amount"))
	}

	fmt.Println("\nEXTRACTING TOTAL RECORD...")
	total, err := agent.ExtractTotalRecord(ctx, doc)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	fmt.Printf("total_quantity=%s total_amount=%s\n",
		total.Get("inv_total_quantity"), total.Get("inv_total_amount"))
}
