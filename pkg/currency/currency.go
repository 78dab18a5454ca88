// Package currency formats monetary amounts for report display.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount as US dollars with thousands separators,
// e.g. -1234567.8 -> "-$1,234,567.80".
func Format(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)

	whole, frac, _ := strings.Cut(s, ".")

	var sb strings.Builder

	if d.Sign() < 0 {
		sb.WriteString("-")
	}

	sb.WriteString("$")

	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteString(",")
		}

		sb.WriteRune(r)
	}

	sb.WriteString(".")
	sb.WriteString(frac)

	return sb.String()
}
