// Package money renders and accumulates monetary amounts for the dashboard.
//
// Amounts travel through the API as float64. Aggregation goes through
// decimal so that sums of many line items do not pick up binary float drift.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const currencySymbol = "R$"

// Format renders amount as a BRL display string, e.g. "R$ 1.234,56".
// Negative amounts are prefixed with "-".
func Format(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)

	fixed := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(currencySymbol)
	b.WriteByte(' ')
	b.WriteString(groupThousands(intPart))
	b.WriteByte(',')
	b.WriteString(fracPart)
	return b.String()
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Sum adds amounts exactly and returns the result as float64.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.InexactFloat64()
}

// Mul returns qty * unit computed exactly.
func Mul(qty int, unit float64) float64 {
	return decimal.NewFromInt(int64(qty)).Mul(decimal.NewFromFloat(unit)).InexactFloat64()
}

// Percent returns pct percent of amount, rounded to cents.
func Percent(amount float64, pct int64) float64 {
	return decimal.NewFromFloat(amount).
		Mul(decimal.NewFromInt(pct)).
		Div(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
}

// Sub returns a - b computed exactly.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).InexactFloat64()
}
