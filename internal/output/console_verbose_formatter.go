package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	stddec "github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
	"github.com/rvb/rent-vs-buy/pkg/dateutil"
	"github.com/rvb/rent-vs-buy/pkg/decimal"
)

var (
	colorAccent = lipgloss.Color("#3AA99F")
	colorBorder = lipgloss.Color("#575653")
	colorGreen  = lipgloss.Color("#879A39")
	colorRed    = lipgloss.Color("#D14D41")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2)

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	goodStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	badStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// ConsoleVerboseFormatter renders the detailed console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer
	out := report.Output

	title := "RENT VS BUY ANALYSIS"
	if report.Name != "" {
		title += ": " + report.Name
	}
	fmt.Fprintln(&buf, titleStyle.Render(title))
	if report.Location != "" {
		fmt.Fprintf(&buf, "Location: %s\n", report.Location)
	}
	fmt.Fprintln(&buf)

	section(&buf, "KEY ASSUMPTIONS")
	for _, a := range GenerateAssumptions(out.Inputs) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	section(&buf, "FIRST MONTH COSTS")
	mc, rc := out.MonthlyCosts, out.RentingCosts
	fmt.Fprintln(&buf, renderTable([]string{"Item", "Owner", "Owner / yr", "Renter", "Renter / yr"}, [][]string{
		costRow("Mortgage", mc.Mortgage, stddec.Zero),
		costRow("Property tax", mc.PropertyTax, stddec.Zero),
		costRow("Insurance", mc.Insurance, rc.Insurance),
		costRow("Maintenance", mc.Maintenance, stddec.Zero),
		costRow("HOA", mc.HOA, stddec.Zero),
		costRow("PMI", mc.PMI, stddec.Zero),
		costRow("Rent", stddec.Zero, rc.Rent),
		costRow("Total", mc.Total, rc.Total),
	}))
	fmt.Fprintln(&buf)

	section(&buf, "YEAR-END POSITIONS")
	fmt.Fprintln(&buf, renderTable(
		[]string{"Year", "Home Value", "Equity", "Balance", "Buyer NW", "Renter NW", "Delta"},
		yearEndRows(out.MonthlySnapshots)))
	fmt.Fprintln(&buf)

	section(&buf, "RESULTS")
	s := out.Summary
	fmt.Fprintf(&buf, "Final buyer net worth:  %s\n", FormatCurrency(s.FinalBuyerNetWorth))
	fmt.Fprintf(&buf, "Final renter net worth: %s\n", FormatCurrency(s.FinalRenterNetWorth))
	fmt.Fprintf(&buf, "Net worth delta:        %s\n", signed(s.FinalNetWorthDelta))
	fmt.Fprintf(&buf, "Break-even:             %s\n", FormatBreakeven(s.BreakevenMonth))
	fmt.Fprintf(&buf, "Total interest paid:    %s\n", FormatCurrency(s.TotalInterestPaid))
	fmt.Fprintf(&buf, "Total buying costs:     %s\n", FormatCurrency(out.Totals.TotalBuyingCosts))
	fmt.Fprintf(&buf, "Total renting costs:    %s\n", FormatCurrency(out.Totals.TotalRentingCosts))
	if a := report.Analysis; a != nil && a.CostCrossover != nil {
		cc := a.CostCrossover
		cheaper := "renting"
		if cc.BuyingCheaper {
			cheaper = "buying"
		}
		fmt.Fprintf(&buf, "Cost crossover:         month %.1f at %s, %s cheaper after\n",
			cc.FractionalMonth, FormatWholeCurrency(cc.CumulativeCost), cheaper)
	}
	fmt.Fprintln(&buf)

	if len(out.TaxSavings) > 0 {
		section(&buf, "ESTIMATED TAX SAVINGS")
		rows := make([][]string, 0, len(out.TaxSavings))
		for _, t := range out.TaxSavings {
			rows = append(rows, []string{intToString(t.Year), FormatCurrency(t.DeductibleMortgageInterest), FormatCurrency(t.DeductiblePropertyTax), FormatCurrency(t.TotalTaxBenefit)})
		}
		fmt.Fprintln(&buf, renderTable([]string{"Year", "Interest", "Property Tax", "Benefit"}, rows))
		fmt.Fprintln(&buf)
	}

	if len(report.Scenarios) > 0 {
		section(&buf, "SCENARIOS")
		rows := make([][]string, 0, len(report.Scenarios))
		for _, sc := range report.Scenarios {
			if sc.Output == nil {
				continue
			}
			ss := sc.Output.Summary
			rows = append(rows, []string{sc.Name, FormatCurrency(ss.FinalBuyerNetWorth), FormatCurrency(ss.FinalRenterNetWorth), signed(ss.FinalNetWorthDelta), optionalMonth(ss.BreakevenMonth)})
		}
		fmt.Fprintln(&buf, renderTable([]string{"Scenario", "Buyer NW", "Renter NW", "Delta", "Break-even"}, rows))
		fmt.Fprintln(&buf)
	}

	if len(report.Sensitivity) > 0 {
		section(&buf, "SENSITIVITY")
		rows := make([][]string, 0, len(report.Sensitivity))
		for _, v := range report.Sensitivity {
			if v.Output == nil {
				continue
			}
			rows = append(rows, []string{v.Variant, signed(v.Output.Summary.FinalNetWorthDelta), optionalMonth(v.Output.Summary.BreakevenMonth)})
		}
		fmt.Fprintln(&buf, renderTable([]string{"Variant", "Delta", "Break-even"}, rows))
		fmt.Fprintln(&buf)
	}

	if len(report.Heatmap) > 0 {
		section(&buf, "BREAK-EVEN HEATMAP (months)")
		headers, rows := heatmapGrid(report.Heatmap)
		fmt.Fprintln(&buf, renderTable(headers, rows))
		fmt.Fprintln(&buf)
	}

	if m := report.MonteCarlo; m != nil {
		section(&buf, "MONTE CARLO")
		fmt.Fprintf(&buf, "Runs: %d of %d (excluded %d), seed %d\n", len(m.Runs), m.Requested, m.Excluded, m.Seed)
		fmt.Fprintln(&buf, renderTable([]string{"Percentile", "Net Worth Delta"}, [][]string{
			{"P10", signed(m.Summary.Percentile10)},
			{"P50", signed(m.Summary.Percentile50)},
			{"P90", signed(m.Summary.Percentile90)},
		}))
		fmt.Fprintln(&buf)
	}

	if p := pricePaths(report); p != nil && len(p.Years) > 0 {
		section(&buf, "HOME PRICE PATHS")
		rows := make([][]string, 0, len(p.Years))
		for i, y := range p.Years {
			rows = append(rows, []string{intToString(y), FormatWholeCurrency(p.P10[i]), FormatWholeCurrency(p.P50[i]), FormatWholeCurrency(p.P90[i])})
		}
		fmt.Fprintln(&buf, renderTable([]string{"Year", "P10", "P50", "P90"}, rows))
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeReport(report)
	verdict := goodStyle
	if rec.Choice == ChoiceRent {
		verdict = badStyle
	}
	fmt.Fprintln(&buf, verdict.Render(rec.Headline()))
	if rec.ScenarioName != "" {
		fmt.Fprintf(&buf, "Best scenario: %s (%s vs base)\n", rec.ScenarioName, signed(rec.ScenarioChange))
	}
	return buf.Bytes(), nil
}

func section(buf *bytes.Buffer, name string) {
	fmt.Fprintln(buf, sectionStyle.Render(name))
	fmt.Fprintln(buf, strings.Repeat("=", len(name)))
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

// signed prefixes positive amounts with "+".
func signed(v stddec.Decimal) string {
	if v.IsPositive() {
		return "+" + FormatCurrency(v)
	}
	return FormatCurrency(v)
}

// costRow shows a monthly owner and renter cost next to its annual total.
// Zero amounts are left blank.
func costRow(item string, owner, renter stddec.Decimal) []string {
	row := []string{item, "", "", "", ""}
	if !owner.IsZero() || item == "Total" {
		m := decimal.NewMoney(owner)
		row[1], row[2] = m.Format(), m.Annual().Format()
	}
	if !renter.IsZero() || item == "Total" {
		m := decimal.NewMoney(renter)
		row[3], row[4] = m.Format(), m.Annual().Format()
	}
	return row
}

func yearEndRows(snapshots []domain.MonthlySnapshot) [][]string {
	var rows [][]string
	for i, s := range snapshots {
		if dateutil.MonthOfYear(s.Month) != 12 && i != len(snapshots)-1 {
			continue
		}
		rows = append(rows, []string{
			intToString(dateutil.YearOfMonth(s.Month)),
			FormatWholeCurrency(s.HomeValue),
			FormatWholeCurrency(s.HomeEquity),
			FormatWholeCurrency(s.RemainingBalance),
			FormatWholeCurrency(s.BuyerNetWorth),
			FormatWholeCurrency(s.RenterNetWorth),
			FormatWholeCurrency(s.NetWorthDelta),
		})
	}
	return rows
}

// heatmapGrid pivots heatmap points into timeline rows and down payment columns.
func heatmapGrid(points []domain.HeatmapPoint) ([]string, [][]string) {
	var timelines []int
	var downs []float64
	cells := make(map[int]map[float64]*int)
	for _, p := range points {
		if _, ok := cells[p.TimelineYears]; !ok {
			cells[p.TimelineYears] = make(map[float64]*int)
			timelines = append(timelines, p.TimelineYears)
		}
		if !containsFloat(downs, p.DownPaymentPercent) {
			downs = append(downs, p.DownPaymentPercent)
		}
		cells[p.TimelineYears][p.DownPaymentPercent] = p.BreakevenMonth
	}
	sort.Ints(timelines)
	sort.Float64s(downs)

	headers := []string{"Years \\ Down"}
	for _, d := range downs {
		headers = append(headers, fmt.Sprintf("%g%%", d))
	}
	rows := make([][]string, 0, len(timelines))
	for _, t := range timelines {
		row := []string{intToString(t)}
		for _, d := range downs {
			m, ok := cells[t][d]
			switch {
			case !ok:
				row = append(row, "")
			case m == nil:
				row = append(row, "-")
			default:
				row = append(row, intToString(*m))
			}
		}
		rows = append(rows, row)
	}
	return headers, rows
}

func containsFloat(values []float64, v float64) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

// pricePaths prefers the standalone summary and falls back to the one
// attached to the analysis view.
func pricePaths(report *domain.AnalysisReport) *domain.HomePricePathSummary {
	if report.PricePaths != nil {
		return report.PricePaths
	}
	if report.Analysis != nil {
		return report.Analysis.HomePricePaths
	}
	return nil
}
