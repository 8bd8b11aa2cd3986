package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	stddec "github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
	"github.com/rvb/rent-vs-buy/pkg/decimal"
)

// WriteTaxSavings renders the per-year deduction estimate on its own, as a
// console table, CSV or JSON.
func WriteTaxSavings(w io.Writer, points []domain.TaxSavingsPoint, format string) error {
	switch NormalizeFormatName(format) {
	case "csv", "detailed-csv":
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"Year", "DeductibleMortgageInterest", "DeductiblePropertyTax", "TotalTaxBenefit"}); err != nil {
			return err
		}
		for _, p := range points {
			if err := cw.Write([]string{intToString(p.Year), money(p.DeductibleMortgageInterest), money(p.DeductiblePropertyTax), money(p.TotalTaxBenefit)}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	case "console", "console-lite":
		benefits := make([]stddec.Decimal, 0, len(points))
		rows := make([][]string, 0, len(points)+1)
		for _, p := range points {
			benefits = append(benefits, p.TotalTaxBenefit)
			rows = append(rows, []string{intToString(p.Year), FormatCurrency(p.DeductibleMortgageInterest), FormatCurrency(p.DeductiblePropertyTax), FormatCurrency(p.TotalTaxBenefit)})
		}
		rows = append(rows, []string{"Total", "", "", decimal.Sum(benefits...).Format()})
		_, err := fmt.Fprintln(w, renderTable([]string{"Year", "Interest", "Property Tax", "Benefit"}, rows))
		return err
	default:
		return unsupported(format)
	}
}
