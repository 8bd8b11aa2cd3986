package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// CSVSummarizer implements the summary CSV output: one row for the base case,
// then one per scenario overlay and sensitivity variant.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.AnalysisReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Kind", "Name", "BreakevenMonth", "FinalBuyerNetWorth", "FinalRenterNetWorth", "FinalNetWorthDelta", "TotalInterestPaid", "TotalBuyingCosts", "TotalRentingCosts", "FinalHomeValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.Write(summaryRow("base", report.Name, report.Output)); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioResult(nil), report.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		if err := w.Write(summaryRow("scenario", sc.Name, sc.Output)); err != nil {
			return nil, err
		}
	}
	for _, v := range report.Sensitivity {
		if err := w.Write(summaryRow("sensitivity", v.Variant, v.Output)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func summaryRow(kind, name string, out *domain.CalculatorOutput) []string {
	if out == nil {
		return []string{kind, name, "", "", "", "", "", "", "", ""}
	}
	s := out.Summary
	return []string{
		kind,
		name,
		optionalInt(s.BreakevenMonth),
		money(s.FinalBuyerNetWorth),
		money(s.FinalRenterNetWorth),
		money(s.FinalNetWorthDelta),
		money(s.TotalInterestPaid),
		money(out.Totals.TotalBuyingCosts),
		money(out.Totals.TotalRentingCosts),
		money(out.Totals.FinalHomeValue),
	}
}
