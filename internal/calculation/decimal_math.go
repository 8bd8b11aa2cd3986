package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// moneyPrecision is the number of decimal places balances keep from one
// month to the next. Without it every compounding step would widen the
// coefficient.
const moneyPrecision int32 = 10

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// pctOf converts a whole-number percentage to a decimal fraction.
func pctOf(pct float64) decimal.Decimal {
	return decimal.NewFromFloat(pct).Div(hundred)
}

// monthlyRate is an annual whole-number percentage spread over twelve months.
func monthlyRate(annualPct float64) decimal.Decimal {
	return decimal.NewFromFloat(annualPct).Div(hundred).Div(twelve)
}

// finiteDecimal converts the output of float math (Pow, Exp, normal draws)
// into a decimal. Overflow saturates at the largest float64.
func finiteDecimal(v float64) decimal.Decimal {
	switch {
	case math.IsNaN(v):
		return decimal.Zero
	case math.IsInf(v, 1):
		return decimal.NewFromFloat(math.MaxFloat64)
	case math.IsInf(v, -1):
		return decimal.NewFromFloat(-math.MaxFloat64)
	}
	return decimal.NewFromFloat(v)
}

// isFiniteAmount reports whether d still fits in a float64.
func isFiniteAmount(d decimal.Decimal) bool {
	return isFinite(d.InexactFloat64())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
