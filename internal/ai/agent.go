package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"tradedoc-recon/internal/core"

	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
	"github.com/openai/openai-go/shared/constant"
)

// detailBatchSize caps how many line items one extraction call may emit.
// Larger windows degrade extraction fidelity on long documents.
const detailBatchSize = 5

// Document is the OCR text of one uploaded document set, together with
// the PO master export handed to the model as grounding context.
type Document struct {
	Name         string
	Text         string
	POMasterJSON string
}

// ExtractionService turns raw document text into the records the
// reconciliation engine consumes.
type ExtractionService interface {
	// ExtractLineItems extracts every invoice line item, joined with its
	// packing-list/BL/COO counterparts, in document order.
	ExtractLineItems(ctx context.Context, doc Document) ([]core.Record, error)

	// ExtractTotalRecord extracts the single document-level total record.
	ExtractTotalRecord(ctx context.Context, doc Document) (core.Record, error)
}

type Agent struct {
	client *openai.Client
}

func NewAgent(apiKey string) *Agent {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Agent{client: &client}
}

// rowCount is the structured-output shape of the row counting call.
type rowCount struct {
	TotalRow int `json:"total_row" jsonschema_description:"The exact number of invoice line items in the document"`
}

// ExtractLineItems first asks for the row count, then extracts the rows
// in fixed windows so each call stays small enough to be reliable. The
// transient index field that orders rows across batches is dropped from
// the merged result.
func (a *Agent) ExtractLineItems(ctx context.Context, doc Document) ([]core.Record, error) {
	totalRows, err := a.countRows(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("count rows: %w", err)
	}

	var items []core.Record
	for first := 1; first <= totalRows; first += detailBatchSize {
		last := first + detailBatchSize - 1
		if last > totalRows {
			last = totalRows
		}
		raw, err := a.call(ctx, doc, buildDetailPrompt(totalRows, first, last), nil)
		if err != nil {
			return nil, fmt.Errorf("extract rows %d-%d: %w", first, last, err)
		}
		batch, err := decodeRecords(raw)
		if err != nil {
			return nil, fmt.Errorf("extract rows %d-%d: %w", first, last, err)
		}
		items = append(items, batch...)
	}

	for _, item := range items {
		delete(item, "index")
	}
	return items, nil
}

// ExtractTotalRecord extracts the document-level totals as one record.
func (a *Agent) ExtractTotalRecord(ctx context.Context, doc Document) (core.Record, error) {
	raw, err := a.call(ctx, doc, totalInstruction, nil)
	if err != nil {
		return nil, fmt.Errorf("extract total record: %w", err)
	}
	rec, err := decodeRecord(raw)
	if err != nil {
		return nil, fmt.Errorf("extract total record: %w", err)
	}
	return rec, nil
}

// countRows asks for the line item count with strict structured output
// so the answer cannot drift into prose.
func (a *Agent) countRows(ctx context.Context, doc Document) (int, error) {
	format, err := schemaFor(rowCount{}, "row_count", "The exact count of invoice line items")
	if err != nil {
		return 0, err
	}
	raw, err := a.call(ctx, doc, rowCountInstruction, format)
	if err != nil {
		return 0, err
	}
	s, err := extractJSON(raw)
	if err != nil {
		return 0, fmt.Errorf("row count: %w", err)
	}
	var rc rowCount
	if err := json.Unmarshal([]byte(s), &rc); err != nil {
		return 0, fmt.Errorf("failed to parse row count: %w", err)
	}
	if rc.TotalRow < 0 {
		return 0, fmt.Errorf("row count %d is negative", rc.TotalRow)
	}
	return rc.TotalRow, nil
}

// call sends one extraction request: document text, then the PO master
// export as grounding context, then the instruction. format is optional;
// when nil the instruction's own schema rules govern the output and
// parse.go recovers the JSON.
func (a *Agent) call(ctx context.Context, doc Document, instruction string, format *responses.ResponseFormatTextJSONSchemaConfigParam) (string, error) {
	input := "DOCUMENT TEXT:\n" + doc.Text
	if doc.POMasterJSON != "" {
		input += "\n\nPURCHASE ORDER DATA (JSON):\n" + doc.POMasterJSON
	}
	input += "\n\n" + instruction

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(shared.ChatModelGPT4o),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(input),
		},
	}
	if format != nil {
		params.Text = responses.ResponseTextConfigParam{
			Format: responses.ResponseFormatTextConfigUnionParam{
				OfJSONSchema: format,
			},
		}
	}

	resp, err := a.client.Responses.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai responses error: %w", err)
	}

	content := resp.OutputText()
	if content == "" {
		return "", fmt.Errorf("empty response content")
	}
	return content, nil
}

// schemaFor reflects a Go struct into a strict JSON schema response
// format.
func schemaFor(v any, name, description string) (*responses.ResponseFormatTextJSONSchemaConfigParam, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	schemaJSON, err := json.Marshal(reflector.Reflect(v))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(schemaJSON, &schemaMap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema to map: %w", err)
	}
	return &responses.ResponseFormatTextJSONSchemaConfigParam{
		Type:        constant.JSONSchema("json_schema"),
		Name:        name,
		Strict:      param.NewOpt(true),
		Schema:      schemaMap,
		Description: param.NewOpt(description),
	}, nil
}
