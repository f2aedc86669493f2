// restore-seed loads PO master JSON exports into the po_lines table.
// Run it after migrations, or whenever an export was re-issued.
//
// Usage: go run ./cmd/restore-seed <export.json> [export.json...]
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"tradedoc-recon/internal/core"
	"tradedoc-recon/internal/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		log.Fatal("Usage: restore-seed <export.json> [export.json...]")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer pool.Close()

	store := db.NewPOLineStore(pool)

	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", path, err)
		}

		var lines []core.POLine
		if err := json.Unmarshal(data, &lines); err != nil {
			log.Fatalf("Failed to parse %s: %v", path, err)
		}

		// Group by PO, preserving the export's line order inside each.
		byPO := make(map[string][]core.POLine)
		var order []string
		for _, l := range lines {
			if l.PONo == "" {
				log.Fatalf("%s: line without po_no", path)
			}
			if _, ok := byPO[l.PONo]; !ok {
				order = append(order, l.PONo)
			}
			byPO[l.PONo] = append(byPO[l.PONo], l)
		}

		for _, poNo := range order {
			if err := store.ReplacePO(ctx, poNo, byPO[poNo]); err != nil {
				log.Fatalf("Failed to load PO %s from %s: %v", poNo, path, err)
			}
			log.Printf("Loaded PO %s: %d lines", poNo, len(byPO[poNo]))
		}
	}

	log.Println("PO master restored.")
}
