package app

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tradedoc-recon/internal/core"
	"tradedoc-recon/internal/db"
)

// storePOSource resolves the PO master from the PostgreSQL store.
type storePOSource struct {
	store db.POLineStore
}

// NewStorePOSource wraps a POLineStore as a POSource.
func NewStorePOSource(store db.POLineStore) POSource {
	return &storePOSource{store: store}
}

func (s *storePOSource) LinesForPOs(ctx context.Context, poNumbers []string) ([]core.POLine, error) {
	return s.store.FetchByPONumbers(ctx, poNumbers)
}

// filePOSource resolves the PO master from a directory holding exactly
// one PO JSON export. More than one file is ambiguous and rejected.
type filePOSource struct {
	lines []core.POLine
	raw   string
}

// NewFilePOSource loads the single PO JSON file found in dir.
func NewFilePOSource(dir string) (POSource, error) {
	src := &filePOSource{}
	if err := src.load(dir); err != nil {
		return nil, err
	}
	return src, nil
}

func (s *filePOSource) load(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read PO directory: %w", err)
	}

	var jsonFiles []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name()), ".json") {
			continue
		}
		jsonFiles = append(jsonFiles, entry.Name())
	}
	if len(jsonFiles) != 1 {
		return fmt.Errorf("expected exactly one PO JSON file in %s, found %d", dir, len(jsonFiles))
	}

	data, err := os.ReadFile(filepath.Join(dir, jsonFiles[0]))
	if err != nil {
		return fmt.Errorf("read PO JSON %s: %w", jsonFiles[0], err)
	}

	var lines []core.POLine
	if err := json.Unmarshal(data, &lines); err != nil {
		return fmt.Errorf("parse PO JSON %s: %w", jsonFiles[0], err)
	}

	s.lines = lines
	s.raw = string(data)
	return nil
}

// LinesForPOs filters the loaded export down to the referenced POs. The
// export usually holds a single PO, so an empty intersection is the
// caller's mismatch to report, not an error here.
func (s *filePOSource) LinesForPOs(_ context.Context, poNumbers []string) ([]core.POLine, error) {
	wanted := make(map[string]bool, len(poNumbers))
	for _, n := range poNumbers {
		wanted[core.NormalizePONumber(n)] = true
	}

	var lines []core.POLine
	for _, l := range s.lines {
		if wanted[core.NormalizePONumber(l.PONo)] {
			lines = append(lines, l)
		}
	}
	return lines, nil
}

// RawJSON returns the export verbatim, for forwarding to the extractor.
func (s *filePOSource) RawJSON() string {
	return s.raw
}
