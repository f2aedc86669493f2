package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal coerces a numeric-looking string into an exact decimal.
// Documents mix locale conventions ("1,234.56", "1.234,56", "1 234,56"),
// so separator roles are resolved deterministically:
//
//   - both '.' and ',' present: the rightmost one is the decimal
//     separator, the other is a thousands separator and is removed;
//   - a single separator occurring more than once is a thousands
//     separator;
//   - a lone ',' followed by exactly three digits after a non-zero
//     integer part is a thousands separator ("1,234" is one thousand two
//     hundred thirty-four, but "0,333" is a third);
//   - any other lone separator is the decimal point. A lone '.' is
//     always decimal: 3-decimal prices like "25.004" are common, and
//     dot grouping is only recognized with corroboration (repeated dots
//     or a comma decimal).
//
// Anything that still fails to parse is reported as unparseable, never
// silently treated as zero.
func ParseDecimal(v string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(v)
	if s == "" || s == Absent {
		return decimal.Zero, false
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	dot := strings.LastIndex(s, ".")
	comma := strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0:
		if dot > comma {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		}
	case comma >= 0:
		s = resolveSingleSeparator(s, ",")
	case dot >= 0:
		s = resolveSingleSeparator(s, ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func resolveSingleSeparator(s, sep string) string {
	if strings.Count(s, sep) > 1 {
		return strings.ReplaceAll(s, sep, "")
	}
	if sep == "." {
		return s
	}
	idx := strings.LastIndex(s, sep)
	intPart := strings.TrimPrefix(s[:idx], "-")
	if len(s)-idx-1 == 3 && intPart != "" && intPart != "0" {
		return strings.ReplaceAll(s, sep, "")
	}
	return strings.Replace(s, ",", ".", 1)
}

// equalRounded compares two decimals after rounding both to the given
// number of places. Measured quantities tolerate 2-decimal rounding;
// contract prices are compared with dp < 0, meaning exact equality.
func equalRounded(a, b decimal.Decimal, dp int32) bool {
	if dp < 0 {
		return a.Equal(b)
	}
	return a.Round(dp).Equal(b.Round(dp))
}
