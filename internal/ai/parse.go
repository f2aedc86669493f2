package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"tradedoc-recon/internal/core"
)

var (
	fenceOpenRe = regexp.MustCompile("^```(?:json)?")
	objectRe    = regexp.MustCompile(`(?s)\{.*\}`)
	arrayRe     = regexp.MustCompile(`(?s)\[.*\]`)
)

// extractJSON recovers a JSON document from a model response. Models
// wrap output in markdown fences or prepend prose despite instructions,
// so after a direct parse fails the first embedded object or array is
// tried.
func extractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty model response")
	}

	if strings.HasPrefix(s, "```") {
		s = fenceOpenRe.ReplaceAllString(s, "")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
		s = strings.TrimSpace(s)
	}

	if json.Valid([]byte(s)) {
		return s, nil
	}
	if m := objectRe.FindString(s); m != "" && json.Valid([]byte(m)) {
		return m, nil
	}
	if m := arrayRe.FindString(s); m != "" && json.Valid([]byte(m)) {
		return m, nil
	}

	preview := s
	if len(preview) > 1000 {
		preview = preview[:1000]
	}
	return "", fmt.Errorf("model output is not valid JSON: %s", preview)
}

// decodeRecords parses a model response into extracted records. A single
// object is accepted as a one-element batch.
func decodeRecords(raw string) ([]core.Record, error) {
	s, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}
	var records []core.Record
	if err := json.Unmarshal([]byte(s), &records); err == nil {
		return records, nil
	}
	var one core.Record
	if err := json.Unmarshal([]byte(s), &one); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}
	return []core.Record{one}, nil
}

// decodeRecord parses a model response into exactly one record.
func decodeRecord(raw string) (core.Record, error) {
	s, err := extractJSON(raw)
	if err != nil {
		return nil, err
	}
	var rec core.Record
	if err := json.Unmarshal([]byte(s), &rec); err != nil {
		return nil, fmt.Errorf("decode extraction response: %w", err)
	}
	return rec, nil
}
