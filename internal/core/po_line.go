package core

import (
	"encoding/json"
	"fmt"
)

// POLine is one record of the authoritative PO master dataset. Lines are
// immutable once loaded and owned by the index for the duration of a run.
type POLine struct {
	PONo               string
	VendorArticleNo    string
	SAPArticleNo       string
	POText             string
	LineNo             string
	Quantity           string
	Unit               string
	Price              string
	Currency           string
	InfoRecordPrice    string
	InfoRecordCurrency string
}

// UnmarshalJSON tolerates numeric and null values in PO master exports by
// routing through the same scalar coercion used for extracted records.
func (p *POLine) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	get := func(field string) (string, error) {
		v, ok := raw[field]
		if !ok {
			return "", nil
		}
		s, err := coerceScalar(v)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", field, err)
		}
		if s == Absent {
			return "", nil
		}
		return s, nil
	}

	var err error
	assign := func(dst *string, field string) {
		if err != nil {
			return
		}
		*dst, err = get(field)
	}
	assign(&p.PONo, FieldPONo)
	assign(&p.VendorArticleNo, "vendor_article_no")
	assign(&p.SAPArticleNo, "sap_article_no")
	assign(&p.POText, FieldPOText)
	assign(&p.LineNo, FieldPOLine)
	assign(&p.Quantity, FieldPOQuantity)
	assign(&p.Unit, FieldPOUnit)
	assign(&p.Price, FieldPOPrice)
	assign(&p.Currency, FieldPOCurrency)
	assign(&p.InfoRecordPrice, FieldPOInfoRecordPrice)
	assign(&p.InfoRecordCurrency, FieldPOInfoRecordCurrency)
	return err
}

// MarshalJSON emits the wire field names used by PO master exports.
func (p POLine) MarshalJSON() ([]byte, error) {
	out := map[string]string{
		FieldPONo:           p.PONo,
		"vendor_article_no": p.VendorArticleNo,
		"sap_article_no":    p.SAPArticleNo,
		FieldPOText:         p.POText,
		FieldPOLine:         p.LineNo,
		FieldPOQuantity:     p.Quantity,
		FieldPOUnit:         p.Unit,
		FieldPOPrice:        p.Price,
		FieldPOCurrency:     p.Currency,
	}
	if p.InfoRecordPrice != "" {
		out[FieldPOInfoRecordPrice] = p.InfoRecordPrice
	}
	if p.InfoRecordCurrency != "" {
		out[FieldPOInfoRecordCurrency] = p.InfoRecordCurrency
	}
	return json.Marshal(out)
}
