package dateutil

import "fmt"

// YearOfMonth maps a 1-based month index to its 1-based projection year.
func YearOfMonth(month int) int {
	return (month-1)/12 + 1
}

// MonthOfYear maps a 1-based month index to its position (1-12) within its year.
func MonthOfYear(month int) int {
	return (month-1)%12 + 1
}

// FormatMonthIndex renders a month index as "Year 3, Month 4".
func FormatMonthIndex(month int) string {
	return fmt.Sprintf("Year %d, Month %d", YearOfMonth(month), MonthOfYear(month))
}

// FormatDuration renders a month count as years and months, e.g. "4 years 3 months".
func FormatDuration(months int) string {
	years, rem := months/12, months%12
	switch {
	case years == 0:
		return plural(rem, "month")
	case rem == 0:
		return plural(years, "year")
	default:
		return plural(years, "year") + " " + plural(rem, "month")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
