package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rvb/rent-vs-buy/internal/domain"
	"github.com/rvb/rent-vs-buy/pkg/dateutil"
)

// CSVDetailedExporter writes every monthly snapshot of the base case and of
// each scenario overlay.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.AnalysisReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "Year", "MortgagePayment", "PrincipalPaid", "InterestPaid", "RemainingBalance", "HomeValue", "HomeEquity", "PMI", "MonthlyBuyingCosts", "MonthlyRentingCosts", "BuyerCashAccount", "RenterPortfolio", "BuyerNetWorth", "RenterNetWorth", "NetWorthDelta"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := writeSnapshots(w, report.Name, report.Output); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioResult(nil), report.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		if err := writeSnapshots(w, sc.Name, sc.Output); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func writeSnapshots(w *csv.Writer, name string, out *domain.CalculatorOutput) error {
	if out == nil {
		return nil
	}
	for _, s := range out.MonthlySnapshots {
		row := []string{
			name,
			intToString(s.Month),
			intToString(dateutil.YearOfMonth(s.Month)),
			money(s.MortgagePayment),
			money(s.PrincipalPaid),
			money(s.InterestPaid),
			money(s.RemainingBalance),
			money(s.HomeValue),
			money(s.HomeEquity),
			money(s.PMI),
			money(s.MonthlyBuyingCosts),
			money(s.MonthlyRentingCosts),
			money(s.BuyerCashAccount),
			money(s.InvestedDownPayment),
			money(s.BuyerNetWorth),
			money(s.RenterNetWorth),
			money(s.NetWorthDelta),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
