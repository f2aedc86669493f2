package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"tradedoc-recon/internal/ai"
	"tradedoc-recon/internal/app"
	"tradedoc-recon/internal/core"
	"tradedoc-recon/internal/db"
	"tradedoc-recon/internal/export"

	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  app reconcile <items.json> [output.csv|output.xlsx]
  app process <document.txt> [output.csv|output.xlsx]
  app pos <po_no> [po_no...]

reconcile  runs matching and validation over already extracted records.
process    extracts line items from raw document text first, then reconciles.
pos        prints the stored PO master lines for the given numbers.

The PO master comes from the directory named by PO_JSON_DIR when set,
otherwise from the database named by DATABASE_URL.`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "reconcile":
		if len(os.Args) < 3 {
			usage()
		}
		items, total := readItems(os.Args[2])
		svc := app.NewAppService(buildPOSource(ctx), nil)
		result, err := svc.Reconcile(ctx, app.ReconcileRequest{Items: items, Total: total})
		if err != nil {
			log.Fatalf("Reconciliation failed: %v", err)
		}
		writeResult(result, outputPath(3))

	case "process":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY not set")
		}
		if len(os.Args) < 3 {
			usage()
		}
		text, err := os.ReadFile(os.Args[2])
		if err != nil {
			log.Fatalf("Failed to read document: %v", err)
		}
		source := buildPOSource(ctx)
		svc := app.NewAppService(source, ai.NewAgent(apiKey))
		req := app.ProcessDocumentRequest{Name: os.Args[2], Text: string(text)}
		if fs, ok := source.(interface{ RawJSON() string }); ok {
			req.POMasterJSON = fs.RawJSON()
		}
		result, err := svc.ProcessDocument(ctx, req)
		if err != nil {
			log.Fatalf("Processing failed: %v", err)
		}
		writeResult(result, outputPath(3))

	case "pos":
		if len(os.Args) < 3 {
			usage()
		}
		source := buildPOSource(ctx)
		lines, err := source.LinesForPOs(ctx, os.Args[2:])
		if err != nil {
			log.Fatalf("Failed to fetch PO lines: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(lines)

	default:
		usage()
	}
}

// readItems accepts either a bare JSON array of records or an object
// with "items" and an optional "total".
func readItems(path string) ([]core.Record, core.Record) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read items: %v", err)
	}

	var items []core.Record
	if err := json.Unmarshal(data, &items); err == nil {
		return items, nil
	}

	var wrapper struct {
		Items []core.Record `json:"items"`
		Total core.Record   `json:"total"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		log.Fatalf("Invalid items JSON: %v", err)
	}
	return wrapper.Items, wrapper.Total
}

func buildPOSource(ctx context.Context) app.POSource {
	if dir := os.Getenv("PO_JSON_DIR"); dir != "" {
		source, err := app.NewFilePOSource(dir)
		if err != nil {
			log.Fatalf("Failed to load PO master from %s: %v", dir, err)
		}
		return source
	}

	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	return app.NewStorePOSource(db.NewPOLineStore(pool))
}

func outputPath(argIndex int) string {
	if len(os.Args) > argIndex {
		return os.Args[argIndex]
	}
	return ""
}

// writeResult renders to the path's format, or JSON on stdout when no
// path was given.
func writeResult(result *app.ReconcileResult, path string) {
	if path == "" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(result)
		logSummary(result.Summary)
		return
	}

	out, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer out.Close()

	switch {
	case strings.HasSuffix(path, ".xlsx"):
		err = export.WriteXLSX(out, result.Items, result.Total)
	case strings.HasSuffix(path, ".csv"):
		err = export.WriteCSV(out, result.Items, result.Total)
	default:
		err = fmt.Errorf("unsupported output format: %s", path)
	}
	if err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}
	logSummary(result.Summary)
	log.Printf("Wrote %s", path)
}

func logSummary(s core.Summary) {
	log.Printf("Lines: %d total, %d matched, %d unmatched, %d passed, %d failed",
		s.TotalLines, s.MatchedLines, s.UnmatchedLines, s.PassedLines, s.FailedLines)
	if s.HasTotalRecord && !s.TotalPassed {
		log.Printf("Total record failed reconciliation")
	}
}
