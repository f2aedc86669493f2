package core

import "strings"

// COO criteria markers. RVC (regional value content) certificates must
// state the amount; PP (production/processing) certificates must state
// the gross weight.
const (
	COOCriteriaRVC = "RVC"
	COOCriteriaPP  = "PP"
)

// invoiceMandatoryFields must be present on every line.
var invoiceMandatoryFields = []string{
	FieldInvInvoiceNo,
	FieldInvInvoiceDate,
	FieldInvCustomerPONo,
	FieldInvVendorName,
	FieldInvDescription,
	FieldInvQuantity,
	FieldInvQuantityUnit,
	FieldInvUnitPrice,
	FieldInvPriceUnit,
	FieldInvAmount,
}

// packingListMandatoryFields must be present on every line; the packing
// list itself is a mandatory document.
var packingListMandatoryFields = []string{
	FieldPLInvoiceNo,
	FieldPLInvoiceDate,
	FieldPLDescription,
	FieldPLQuantity,
	FieldPLWeightUnit,
	FieldPLNW,
	FieldPLGW,
}

// blMandatoryFields apply only when the document set includes a bill of
// lading, detected by bl_no being present. Seller name/address are
// checked after their shipper fallback has run.
var blMandatoryFields = []string{
	FieldBLNo,
	FieldBLDate,
	FieldBLShipperName,
	FieldBLConsigneeName,
	FieldBLPortOfLoading,
	FieldBLPortOfDischarge,
	FieldBLSellerName,
	FieldBLSellerAddress,
}

// ValidateLine runs every field-level and cross-document check on one
// line item. Checks never short-circuit: each failure appends its own
// message, and the verdict flips to false on the first one. Running the
// validator again on an unchanged line neither duplicates messages nor
// changes the verdict.
func ValidateLine(item Record) {
	item.InitVerdict()

	matched := !item.IsAbsent(FieldPONo)
	if matched {
		checkPriceEquality(item)
		checkCurrencyEquality(item)
	}

	checkPresence(item, invoiceMandatoryFields)
	checkPresence(item, packingListMandatoryFields)
	checkArithmetic(item)

	checkStringEquality(item, FieldPLInvoiceNo, FieldInvInvoiceNo, true)
	checkStringEquality(item, FieldPLInvoiceDate, FieldInvInvoiceDate, true)

	if !item.IsAbsent(FieldCOONo) {
		validateCOO(item)
	}
	if !item.IsAbsent(FieldBLNo) {
		validateBL(item)
	}
}

// checkPriceEquality compares the invoice unit price with the PO price.
// These are stated contract prices, not measured quantities, so the
// tolerance is zero. Unparseable sides are reported, never assumed equal
// or unequal.
func checkPriceEquality(item Record) {
	inv, invOK := ParseDecimal(item.Get(FieldInvUnitPrice))
	po, poOK := ParseDecimal(item.Get(FieldPOPrice))
	if !invOK {
		item.Failf("%s tidak dapat diparsing (%s)", FieldInvUnitPrice, item.Get(FieldInvUnitPrice))
	}
	if !poOK {
		item.Failf("%s tidak dapat diparsing (%s)", FieldPOPrice, item.Get(FieldPOPrice))
	}
	if invOK && poOK && !inv.Equal(po) {
		item.Failf("%s (%s) tidak sama dengan %s (%s)",
			FieldInvUnitPrice, item.Get(FieldInvUnitPrice), FieldPOPrice, item.Get(FieldPOPrice))
	}
}

// checkCurrencyEquality compares invoice price unit against PO currency:
// trimmed, case-sensitive.
func checkCurrencyEquality(item Record) {
	inv := strings.TrimSpace(item.Get(FieldInvPriceUnit))
	po := strings.TrimSpace(item.Get(FieldPOCurrency))
	if inv != po {
		item.Failf("%s (%s) tidak sama dengan %s (%s)", FieldInvPriceUnit, inv, FieldPOCurrency, po)
	}
}

func checkPresence(item Record, fields []string) {
	for _, f := range fields {
		if item.IsAbsent(f) {
			item.Failf("%s wajib diisi", f)
		}
	}
}

// checkArithmetic verifies the invoice's internal equation
// quantity × unit price = amount within 2-decimal rounding.
func checkArithmetic(item Record) {
	qty, qtyOK := ParseDecimal(item.Get(FieldInvQuantity))
	price, priceOK := ParseDecimal(item.Get(FieldInvUnitPrice))
	amount, amountOK := ParseDecimal(item.Get(FieldInvAmount))
	if !qtyOK {
		item.Failf("%s tidak dapat diparsing (%s)", FieldInvQuantity, item.Get(FieldInvQuantity))
	}
	if !priceOK {
		item.Failf("%s tidak dapat diparsing (%s)", FieldInvUnitPrice, item.Get(FieldInvUnitPrice))
	}
	if !amountOK {
		item.Failf("%s tidak dapat diparsing (%s)", FieldInvAmount, item.Get(FieldInvAmount))
	}
	if !qtyOK || !priceOK || !amountOK {
		return
	}
	computed := qty.Mul(price)
	if !equalRounded(computed, amount, 2) {
		item.Failf("%s (%s) x %s (%s) = %s tidak sama dengan %s (%s)",
			FieldInvQuantity, item.Get(FieldInvQuantity),
			FieldInvUnitPrice, item.Get(FieldInvUnitPrice),
			computed.StringFixed(2),
			FieldInvAmount, item.Get(FieldInvAmount))
	}
}

// checkStringEquality compares two fields when both are present; absence
// is governed by the mandatory-field rules, not by equality checks.
func checkStringEquality(item Record, fieldA, fieldB string, caseSensitive bool) {
	if item.IsAbsent(fieldA) || item.IsAbsent(fieldB) {
		return
	}
	a := strings.TrimSpace(item.Get(fieldA))
	b := strings.TrimSpace(item.Get(fieldB))
	equal := a == b
	if !caseSensitive {
		equal = strings.EqualFold(a, b)
	}
	if !equal {
		item.Failf("%s (%s) tidak sama dengan %s (%s)", fieldA, a, fieldB, b)
	}
}

// checkDecimalEquality cross-validates two numeric fields with 2-decimal
// rounding when both are present. A present but unparseable side is an
// explicit failure.
func checkDecimalEquality(item Record, fieldA, fieldB string) {
	if item.IsAbsent(fieldA) || item.IsAbsent(fieldB) {
		return
	}
	a, aOK := ParseDecimal(item.Get(fieldA))
	b, bOK := ParseDecimal(item.Get(fieldB))
	if !aOK {
		item.Failf("%s tidak dapat diparsing (%s)", fieldA, item.Get(fieldA))
	}
	if !bOK {
		item.Failf("%s tidak dapat diparsing (%s)", fieldB, item.Get(fieldB))
	}
	if aOK && bOK && !equalRounded(a, b, 2) {
		item.Failf("%s (%s) tidak sama dengan %s (%s)", fieldA, item.Get(fieldA), fieldB, item.Get(fieldB))
	}
}

// validateCOO runs the certificate-of-origin checks. The criteria value
// decides which fields become mandatory; quantities, amounts and weights
// are cross-checked against the invoice view of the same line.
func validateCOO(item Record) {
	if item.IsAbsent(FieldCOOCriteria) {
		item.Failf("%s wajib diisi", FieldCOOCriteria)
	}

	switch strings.ToUpper(strings.TrimSpace(item.Get(FieldCOOCriteria))) {
	case COOCriteriaRVC:
		checkPresence(item, []string{FieldCOOAmount, FieldCOOAmountUnit})
	case COOCriteriaPP:
		checkPresence(item, []string{FieldCOOGW, FieldCOOGWUnit})
	}

	checkDecimalEquality(item, FieldCOOQuantity, FieldInvQuantity)
	checkDecimalEquality(item, FieldCOOAmount, FieldInvAmount)
	checkDecimalEquality(item, FieldCOOGW, FieldInvTotalGW)

	checkStringEquality(item, FieldCOOAmountUnit, FieldInvAmountUnit, true)
	// The invoice carries no weight unit, so the packing list's is the
	// reference.
	checkStringEquality(item, FieldCOOGWUnit, FieldPLWeightUnit, true)
}

// validateBL runs the bill-of-lading checks. Seller name and address
// fall back to the shipper fields before the presence checks, since many
// BL layouts only print the shipper block.
func validateBL(item Record) {
	if item.IsAbsent(FieldBLSellerName) {
		item[FieldBLSellerName] = Fallback(item.Get(FieldBLShipperName))
	}
	if item.IsAbsent(FieldBLSellerAddress) {
		item[FieldBLSellerAddress] = Fallback(item.Get(FieldBLShipperAddress))
	}

	checkPresence(item, blMandatoryFields)
	checkStringEquality(item, FieldBLSellerName, FieldInvVendorName, false)
}
