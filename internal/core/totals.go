package core

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// totalCheck ties an extracted total field to the per-line field it must
// equal the sum of. fromPL marks totals sourced from the packing list:
// those are only computed when packing-list data is present at all, so a
// document set without a PL never produces phantom totals failures.
type totalCheck struct {
	totalField  string
	sourceField string
	fromPL      bool
}

var totalChecks = []totalCheck{
	{FieldInvTotalQuantity, FieldInvQuantity, false},
	{FieldInvTotalAmount, FieldInvAmount, false},
	{FieldInvTotalNW, FieldPLNW, true},
	{FieldInvTotalGW, FieldPLGW, true},
	{FieldInvTotalVolume, FieldPLVolume, true},
	{FieldInvTotalPackage, FieldPLPackageCount, true},
	{FieldPLTotalQuantity, FieldPLQuantity, true},
	{FieldPLTotalAmount, FieldInvAmount, true},
	{FieldPLTotalNW, FieldPLNW, true},
	{FieldPLTotalGW, FieldPLGW, true},
	{FieldPLTotalVolume, FieldPLVolume, true},
	{FieldPLTotalPackage, FieldPLPackageCount, true},
}

// sumResult is a recomputed per-document aggregate. A single absent or
// unparseable input poisons the sum: totals are never computed by
// treating bad values as zero.
type sumResult struct {
	value decimal.Decimal
	ok    bool
	why   string
}

func sumField(items []Record, field string) sumResult {
	total := decimal.Zero
	for _, item := range items {
		raw := item.Get(field)
		d, ok := ParseDecimal(raw)
		if !ok {
			return sumResult{why: fmt.Sprintf("%s tidak dapat diparsing (%s)", field, raw)}
		}
		total = total.Add(d)
	}
	return sumResult{value: total.Round(2), ok: true}
}

// ReconcileTotals recomputes document aggregates from the line items and
// validates every extracted total field — on each line and on the total
// record, when one was extracted — against the recomputation. It also
// derives the total record's PO aggregates from the PO master lines
// referenced by the line items.
func ReconcileTotals(items []Record, total Record, poLines []POLine) {
	plPresent := hasPackingListData(items)

	sums := make(map[string]sumResult)
	sumOf := func(field string) sumResult {
		s, ok := sums[field]
		if !ok {
			s = sumField(items, field)
			sums[field] = s
		}
		return s
	}

	for _, item := range items {
		item.InitVerdict()
		for _, c := range totalChecks {
			if c.fromPL && !plPresent {
				continue
			}
			validateTotalField(item, c, sumOf(c.sourceField))
		}
	}

	if total == nil {
		return
	}
	total.InitVerdict()
	for _, c := range totalChecks {
		if c.fromPL && !plPresent {
			continue
		}
		validateTotalField(total, c, sumOf(c.sourceField))
	}
	reconcilePOAggregates(items, total, poLines, sumOf)
}

// validateTotalField checks one extracted total against its recomputed
// sum with 2-decimal rounding. Extracted totals that are absent are
// simply not validated; ones that cannot be compared produce explicit
// errors.
func validateTotalField(rec Record, c totalCheck, sum sumResult) {
	raw := rec.Get(c.totalField)
	if raw == Absent {
		return
	}
	extracted, ok := ParseDecimal(raw)
	if !ok {
		rec.Failf("%s tidak dapat diparsing (%s)", c.totalField, raw)
		return
	}
	if !sum.ok {
		rec.Failf("%s tidak dapat dihitung: %s", c.totalField, sum.why)
		return
	}
	if !equalRounded(extracted, sum.value, 2) {
		rec.Failf("%s (%s) tidak sama dengan hasil perhitungan (%s)",
			c.totalField, raw, sum.value.StringFixed(2))
	}
}

// reconcilePOAggregates sums PO quantity across every master line whose
// PO number is referenced by the line items and resolves the PO price as
// the single distinct price across those lines. Extracted values on the
// total record are never overwritten: PO fields are filled only when
// absent. The (possibly extracted) price is then validated against the
// expected unit price, invoice total amount / invoice total quantity,
// within 0.01.
func reconcilePOAggregates(items []Record, total Record, poLines []POLine, sumOf func(string) sumResult) {
	refs := make(map[string]bool)
	for _, item := range items {
		if po := NormalizePONumber(item.Get(FieldInvCustomerPONo)); po != "" {
			refs[po] = true
		}
	}

	qtySum := decimal.Zero
	qtyOK := true
	referenced := 0
	var prices []decimal.Decimal
	var priceRaw []string
	for i := range poLines {
		l := &poLines[i]
		if !refs[NormalizePONumber(l.PONo)] {
			continue
		}
		referenced++
		q, ok := ParseDecimal(l.Quantity)
		if !ok {
			total.Failf("%s tidak dapat dihitung: po_quantity tidak dapat diparsing (%s)",
				FieldPOQuantity, l.Quantity)
			qtyOK = false
		} else {
			qtySum = qtySum.Add(q)
		}

		p, ok := ParseDecimal(l.Price)
		if !ok {
			total.Failf("%s tidak dapat dihitung: po_price tidak dapat diparsing (%s)",
				FieldPOPrice, l.Price)
			continue
		}
		if !containsDecimal(prices, p) {
			prices = append(prices, p)
			priceRaw = append(priceRaw, strings.TrimSpace(l.Price))
		}
	}

	if referenced > 0 && qtyOK && total.IsAbsent(FieldPOQuantity) {
		total.Set(FieldPOQuantity, qtySum.String())
	}

	if len(prices) > 1 {
		total.Failf("%s tidak unik: ditemukan %s", FieldPOPrice, strings.Join(priceRaw, ", "))
	} else if len(prices) == 1 && total.IsAbsent(FieldPOPrice) {
		total.Set(FieldPOPrice, priceRaw[0])
	}

	validateExpectedUnitPrice(total, sumOf)
}

// validateExpectedUnitPrice compares the total record's PO price against
// invoice total amount / invoice total quantity within a 0.01 tolerance.
// An absent price is simply not validated; a present one that cannot be
// parsed is an explicit failure, never a silent skip.
func validateExpectedUnitPrice(total Record, sumOf func(string) sumResult) {
	raw := total.Get(FieldPOPrice)
	if raw == Absent {
		return
	}
	poPrice, ok := ParseDecimal(raw)
	if !ok {
		total.Failf("%s tidak dapat diparsing (%s)", FieldPOPrice, raw)
		return
	}
	amountSum := sumOf(FieldInvAmount)
	qtySum := sumOf(FieldInvQuantity)
	if !amountSum.ok || !qtySum.ok || qtySum.value.IsZero() {
		return
	}
	expected := amountSum.value.Div(qtySum.value)
	tolerance := decimal.NewFromFloat(0.01)
	if poPrice.Sub(expected).Abs().GreaterThan(tolerance) {
		total.Failf("%s (%s) tidak sama dengan inv_total_amount / inv_total_quantity (%s)",
			FieldPOPrice, total.Get(FieldPOPrice), expected.StringFixed(2))
	}
}

func hasPackingListData(items []Record) bool {
	for _, item := range items {
		for field := range item {
			if strings.HasPrefix(field, "pl_") && !item.IsAbsent(field) {
				return true
			}
		}
	}
	return false
}

func containsDecimal(list []decimal.Decimal, d decimal.Decimal) bool {
	for _, v := range list {
		if v.Equal(d) {
			return true
		}
	}
	return false
}
