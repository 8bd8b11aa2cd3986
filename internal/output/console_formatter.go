package output

import (
	"bytes"
	"fmt"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// ConsoleFormatter provides a concise plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer
	out := report.Output
	s := out.Summary
	fmt.Fprintln(&buf, "RENT VS BUY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if report.Name != "" {
		fmt.Fprintf(&buf, "Scenario: %s\n", report.Name)
	}
	fmt.Fprintf(&buf, "Monthly ownership cost: %s (rent %s)\n", FormatCurrency(out.MonthlyCosts.Total), FormatCurrency(out.RentingCosts.Total))
	fmt.Fprintf(&buf, "Final net worth: buy=%s rent=%s delta=%s\n",
		FormatCurrency(s.FinalBuyerNetWorth),
		FormatCurrency(s.FinalRenterNetWorth),
		FormatCurrency(s.FinalNetWorthDelta),
	)
	fmt.Fprintf(&buf, "Break-even: %s\n", FormatBreakeven(s.BreakevenMonth))
	fmt.Fprintf(&buf, "Interest paid: %s\n", FormatCurrency(s.TotalInterestPaid))

	for _, sc := range report.Scenarios {
		if sc.Output == nil {
			continue
		}
		fmt.Fprintf(&buf, "  %s: delta=%s break-even=%s\n", sc.Name,
			FormatCurrency(sc.Output.Summary.FinalNetWorthDelta), optionalMonth(sc.Output.Summary.BreakevenMonth))
	}
	for _, v := range report.Sensitivity {
		if v.Output == nil {
			continue
		}
		fmt.Fprintf(&buf, "  [%s] delta=%s\n", v.Variant, FormatCurrency(v.Output.Summary.FinalNetWorthDelta))
	}
	if mc := report.MonteCarlo; mc != nil {
		fmt.Fprintf(&buf, "Monte Carlo (%d runs): P10=%s P50=%s P90=%s\n", len(mc.Runs),
			FormatCurrency(mc.Summary.Percentile10), FormatCurrency(mc.Summary.Percentile50), FormatCurrency(mc.Summary.Percentile90))
	}

	rec := AnalyzeReport(report)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Verdict: %s\n", rec.Headline())
	if rec.ScenarioName != "" {
		fmt.Fprintf(&buf, "Best scenario: %s (Δ %s vs base)\n", rec.ScenarioName, FormatCurrency(rec.ScenarioChange))
	}
	return buf.Bytes(), nil
}

func optionalMonth(m *int) string {
	if m == nil {
		return "never"
	}
	return fmt.Sprintf("month %d", *m)
}
