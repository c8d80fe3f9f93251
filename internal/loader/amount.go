// internal/loader/amount.go
package loader

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount coerces a raw cell value into a currency amount. Currency
// symbols, thousands separators and whitespace are stripped before parsing.
// Missing, unparseable and negative values all collapse to 0; this function
// never fails.
func ParseAmount(v any) float64 {
	var amount float64

	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		amount = val
	case int:
		amount = float64(val)
	case int64:
		amount = float64(val)
	case string:
		d, err := decimal.NewFromString(cleanAmount(val))
		if err != nil {
			return 0
		}
		amount, _ = d.Float64()
	default:
		return 0
	}

	if amount < 0 {
		return 0
	}
	return amount
}

// cleanAmount keeps only the characters that can belong to a decimal number.
// "₹1,234.50", "Rs 1 234" style noise all reduces to the bare number.
func cleanAmount(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}
