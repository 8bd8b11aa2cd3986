package decimal

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money wraps a simulator amount for presentation.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps an amount for display.
func NewMoney(value decimal.Decimal) Money {
	return Money{value}
}

// Sum adds amounts into a single Money.
func Sum(values ...decimal.Decimal) Money {
	if len(values) == 0 {
		return Money{decimal.Zero}
	}
	return Money{decimal.Sum(values[0], values[1:]...)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// String returns the amount with two decimals and no grouping, suitable for CSV.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as currency with thousands separators, e.g. -$1,234.50.
func (m Money) Format() string {
	return m.format("#,###.##")
}

// FormatWhole renders the amount as whole dollars, e.g. $1,235.
func (m Money) FormatWhole() string {
	return m.format("#,###.")
}

func (m Money) format(pattern string) string {
	sign := ""
	if m.Decimal.IsNegative() {
		sign = "-"
	}
	// Round in decimal first so float conversion cannot flip the last digit.
	places := int32(2)
	if pattern == "#,###." {
		places = 0
	}
	abs := m.Decimal.Abs().Round(places).InexactFloat64()
	if abs == 0 {
		sign = ""
	}
	return sign + "$" + humanize.FormatFloat(pattern, abs)
}

// Percent renders a whole-number percentage, e.g. 6.50%.
func Percent(pct float64) string {
	return decimal.NewFromFloat(pct).StringFixed(2) + "%"
}

// Rate renders a decimal fraction as a percentage, e.g. 0.24 -> 24.00%.
func Rate(fraction float64) string {
	return decimal.NewFromFloat(fraction).Shift(2).StringFixed(2) + "%"
}
