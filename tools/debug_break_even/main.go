package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rvb/rent-vs-buy/internal/calculation"
	"github.com/rvb/rent-vs-buy/internal/config"
	"github.com/rvb/rent-vs-buy/internal/domain"
	"github.com/rvb/rent-vs-buy/pkg/dateutil"
	"github.com/rvb/rent-vs-buy/pkg/decimal"
)

// debug_break_even prints the monthly net worth components of the base case
// and every scenario side by side, followed by where each one breaks even.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	if cfg.TaxBracket != nil {
		engine.TaxBracket = *cfg.TaxBracket
	}

	runs := []domain.ScenarioResult{{Name: "base", Scenario: cfg.Base}}
	base, err := engine.CalculateAnalysis(context.Background(), cfg.Base)
	if err != nil {
		panic(err)
	}
	runs[0].Output = base
	scenarios, err := engine.CalculateScenarios(context.Background(), cfg.Scenarios)
	if err != nil {
		panic(err)
	}
	runs = append(runs, scenarios...)

	// Find the minimum projection length across runs
	minLen := -1
	for _, r := range runs {
		if minLen == -1 || len(r.Output.MonthlySnapshots) < minLen {
			minLen = len(r.Output.MonthlySnapshots)
		}
	}
	if minLen <= 0 {
		fmt.Println("no projection data")
		return
	}

	header := "Month,Year"
	for i := range runs {
		header += fmt.Sprintf(",S%d_Equity,S%d_BuyerCash,S%d_RenterPortfolio,S%d_Delta", i, i, i, i)
	}
	fmt.Println(header)

	for idx := 0; idx < minLen; idx++ {
		month := runs[0].Output.MonthlySnapshots[idx].Month
		row := fmt.Sprintf("%d,%d", month, dateutil.YearOfMonth(month))
		for _, r := range runs {
			s := r.Output.MonthlySnapshots[idx]
			row += fmt.Sprintf(",%s,%s,%s,%s",
				decimal.NewMoney(s.HomeEquity).String(),
				decimal.NewMoney(s.BuyerCashAccount).String(),
				decimal.NewMoney(s.InvestedDownPayment).String(),
				decimal.NewMoney(s.NetWorthDelta).String())
		}
		fmt.Println(row)
	}

	fmt.Println()
	for i, r := range runs {
		be := r.Output.Summary.BreakevenMonth
		if be == nil {
			fmt.Printf("S%d %s: never breaks even\n", i, r.Name)
			continue
		}
		fmt.Printf("S%d %s: breaks even %s\n", i, r.Name, dateutil.FormatMonthIndex(*be))
		if cc := calc.CalculateCostCrossover(r.Output.CumulativeCosts); cc != nil {
			fmt.Printf("   cumulative costs cross at month %.2f (%s)\n", cc.FractionalMonth, decimal.NewMoney(cc.CumulativeCost).Format())
		}
	}
}
