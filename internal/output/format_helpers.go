package output

import (
	"strconv"

	stddec "github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/pkg/dateutil"
	"github.com/rvb/rent-vs-buy/pkg/decimal"
)

// FormatCurrency formats a dollar amount with thousands separators and cents.
func FormatCurrency(amount stddec.Decimal) string { return decimal.NewMoney(amount).Format() }

// FormatWholeCurrency formats a dollar amount rounded to whole dollars.
func FormatWholeCurrency(amount stddec.Decimal) string { return decimal.NewMoney(amount).FormatWhole() }

// FormatPercentage formats a whole-number percentage (6.5 -> "6.50%").
func FormatPercentage(pct float64) string { return decimal.Percent(pct) }

// FormatBreakeven renders an optional break-even month for humans.
func FormatBreakeven(month *int) string {
	if month == nil {
		return "never"
	}
	return dateutil.FormatMonthIndex(*month) + " (" + dateutil.FormatDuration(*month) + ")"
}

// money renders a value for machine-readable exports.
func money(v stddec.Decimal) string { return decimal.NewMoney(v).String() }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// optionalInt renders nil as an empty CSV cell.
func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return intToString(*v)
}
