package app

import (
	"context"
	"fmt"

	"tradedoc-recon/internal/ai"
	"tradedoc-recon/internal/core"

	"github.com/google/uuid"
)

type appService struct {
	poSource  POSource
	extractor ai.ExtractionService
}

// NewAppService constructs an appService that satisfies
// ApplicationService. extractor may be nil when only Reconcile is used.
func NewAppService(poSource POSource, extractor ai.ExtractionService) ApplicationService {
	return &appService{
		poSource:  poSource,
		extractor: extractor,
	}
}

func (s *appService) Reconcile(ctx context.Context, req ReconcileRequest) (*ReconcileResult, error) {
	poLines := req.POLines
	if poLines == nil {
		var err error
		poLines, err = s.LoadPOMaster(ctx, req.Items)
		if err != nil {
			return nil, err
		}
	}

	items := make([]core.Record, len(req.Items))
	for i, item := range req.Items {
		items[i] = item.Clone()
	}
	var total core.Record
	if req.Total != nil {
		total = req.Total.Clone()
	}

	summary := core.Reconcile(items, poLines, total)

	return &ReconcileResult{
		RunID:   uuid.NewString(),
		Items:   items,
		Total:   total,
		Summary: summary,
	}, nil
}

func (s *appService) ProcessDocument(ctx context.Context, req ProcessDocumentRequest) (*ReconcileResult, error) {
	if s.extractor == nil {
		return nil, fmt.Errorf("no extraction service configured")
	}

	doc := ai.Document{Name: req.Name, Text: req.Text, POMasterJSON: req.POMasterJSON}

	items, err := s.extractor.ExtractLineItems(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", req.Name, err)
	}
	var total core.Record
	if !req.SkipTotal {
		total, err = s.extractor.ExtractTotalRecord(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", req.Name, err)
		}
	}

	result, err := s.Reconcile(ctx, ReconcileRequest{Items: items, Total: total})
	if err != nil {
		return nil, err
	}
	result.DocumentName = req.Name
	return result, nil
}

func (s *appService) LoadPOMaster(ctx context.Context, items []core.Record) ([]core.POLine, error) {
	if s.poSource == nil {
		return nil, nil
	}
	poNumbers := core.ReferencedPONumbers(items)
	if len(poNumbers) == 0 {
		return nil, nil
	}
	lines, err := s.poSource.LinesForPOs(ctx, poNumbers)
	if err != nil {
		return nil, fmt.Errorf("load PO master: %w", err)
	}
	return lines, nil
}
