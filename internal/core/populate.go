package core

// ErrPOItemNotFound is the message recorded on lines with no qualifying
// PO master line. Kept verbatim from the production reports downstream
// systems already parse.
const ErrPOItemNotFound = "PO item tidak ditemukan"

// poOutputFields are every po_* column a finished record carries, so
// unmatched lines still render with explicit absent-markers.
var poOutputFields = []string{
	FieldPONo,
	FieldPOVendorArticleNo,
	FieldPOText,
	FieldPOSAPArticleNo,
	FieldPOLine,
	FieldPOQuantity,
	FieldPOUnit,
	FieldPOPrice,
	FieldPOCurrency,
	FieldPOInfoRecordPrice,
	FieldPOInfoRecordCurrency,
}

// Populate copies the authoritative PO master fields onto a matched line.
// Unmatched lines fail with ErrPOItemNotFound and keep every po_* field
// at the absent-marker. The vendor article column carries a fallback
// chain (vendor article, else SAP article, else absent), never both.
func Populate(res MatchResult) {
	item := res.Item
	item.InitVerdict()

	if !res.Matched {
		for _, f := range poOutputFields {
			if _, ok := item[f]; !ok {
				item[f] = Absent
			}
		}
		item.Fail(ErrPOItemNotFound)
		return
	}

	po := res.PO
	item.Set(FieldPONo, po.PONo)
	item.Set(FieldPOLine, po.LineNo)
	item.Set(FieldPOQuantity, po.Quantity)
	item.Set(FieldPOUnit, po.Unit)
	item.Set(FieldPOPrice, po.Price)
	item.Set(FieldPOCurrency, po.Currency)
	item.Set(FieldPOText, po.POText)
	item[FieldPOVendorArticleNo] = Fallback(po.VendorArticleNo, po.SAPArticleNo)
	item.Set(FieldPOInfoRecordPrice, po.InfoRecordPrice)
	item.Set(FieldPOInfoRecordCurrency, po.InfoRecordCurrency)
	if _, ok := item[FieldPOSAPArticleNo]; !ok {
		item[FieldPOSAPArticleNo] = Absent
	}
}
