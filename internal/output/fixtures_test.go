package output

import (
	stddec "github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

func intPtr(v int) *int { return &v }

func usd(v float64) stddec.Decimal { return stddec.NewFromFloat(v) }

func usds(vs ...float64) []stddec.Decimal {
	out := make([]stddec.Decimal, len(vs))
	for i, v := range vs {
		out[i] = usd(v)
	}
	return out
}

func buildOutput(months int, finalDelta float64, breakeven *int) *domain.CalculatorOutput {
	snapshots := make([]domain.MonthlySnapshot, months)
	for i := range snapshots {
		m := i + 1
		delta := finalDelta * float64(m) / float64(months)
		snapshots[i] = domain.MonthlySnapshot{
			Month:               m,
			MortgagePayment:     usd(2022.62),
			HomeValue:           usd(400000 + float64(m)*1000),
			HomeEquity:          usd(80000 + float64(m)*1500),
			RemainingBalance:    usd(320000 - float64(m)*500),
			MonthlyBuyingCosts:  usd(2900),
			MonthlyRentingCosts: usd(2215),
			BuyerNetWorth:       usd(100000 + delta),
			RenterNetWorth:      usd(100000),
			NetWorthDelta:       usd(delta),
		}
	}
	last := snapshots[months-1]
	return &domain.CalculatorOutput{
		Inputs: domain.ScenarioInputs{
			HomePrice: usd(400000), DownPaymentPercent: 20, InterestRate: 6.5, LoanTermYears: 30,
			TimeHorizonYears: months / 12, MonthlyRent: usd(2200), HomeAppreciationRate: 3,
			RentGrowthRate: 3, InvestmentReturnRate: 6,
		},
		MonthlySnapshots: snapshots,
		Summary: domain.CalculatorSummary{
			TotalInterestPaid:   usd(123456.78),
			BreakevenMonth:      breakeven,
			FinalBuyerNetWorth:  last.BuyerNetWorth,
			FinalRenterNetWorth: last.RenterNetWorth,
			FinalNetWorthDelta:  usd(finalDelta),
		},
		MonthlyCosts: domain.MonthlyCosts{
			Mortgage: usd(2022.62), PropertyTax: usd(366.67), Insurance: usd(125), Maintenance: usd(333.33),
			HOA: stddec.Zero, PMI: stddec.Zero, Total: usd(2847.62),
		},
		RentingCosts: domain.RentingCosts{Rent: usd(2200), Insurance: usd(15), Total: usd(2215)},
		Totals: domain.TotalCostSummary{
			BuyerFinalNetWorth:  last.BuyerNetWorth,
			RenterFinalNetWorth: last.RenterNetWorth,
			TotalBuyingCosts:    usd(2900 * float64(months)),
			TotalRentingCosts:   usd(2215 * float64(months)),
			FinalHomeValue:      last.HomeValue,
		},
		TaxSavings: []domain.TaxSavingsPoint{
			{Year: 1, DeductibleMortgageInterest: usd(20700), DeductiblePropertyTax: usd(4400), TotalTaxBenefit: usd(6024)},
			{Year: 2, DeductibleMortgageInterest: usd(20400), DeductiblePropertyTax: usd(4532), TotalTaxBenefit: usd(5983.68)},
		},
	}
}

func buildTestReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		Name:   "Fixture",
		Output: buildOutput(24, -3000, nil),
		Scenarios: []domain.ScenarioResult{
			{Name: "B", Output: buildOutput(24, 12000, intPtr(14))},
			{Name: "A", Output: buildOutput(24, 5000, intPtr(20))},
		},
		Sensitivity: []domain.SensitivityResult{
			{Variant: "interest-", Output: buildOutput(24, 1000, intPtr(22))},
			{Variant: "interest+", Output: buildOutput(24, -7000, nil)},
		},
		Heatmap: []domain.HeatmapPoint{
			{TimelineYears: 5, DownPaymentPercent: 10, BreakevenMonth: nil},
			{TimelineYears: 5, DownPaymentPercent: 20, BreakevenMonth: intPtr(48)},
			{TimelineYears: 10, DownPaymentPercent: 10, BreakevenMonth: intPtr(70)},
			{TimelineYears: 10, DownPaymentPercent: 20, BreakevenMonth: intPtr(52)},
		},
		MonteCarlo: &domain.MonteCarloResult{
			EnsembleID: "7d1e7f5e-1111-4c1b-9a53-000000000000",
			Seed:       42,
			Requested:  3,
			Excluded:   1,
			Runs: []domain.MonteCarloRun{
				{Run: 0, HomeAppreciationRate: 2.5, RentGrowthRate: 3.1, InvestmentReturnRate: 5, FinalBuyerNetWorth: usd(150000), FinalRenterNetWorth: usd(140000), BreakevenMonth: intPtr(30)},
				{Run: 2, HomeAppreciationRate: 1.2, RentGrowthRate: 2.0, InvestmentReturnRate: 8, FinalBuyerNetWorth: usd(120000), FinalRenterNetWorth: usd(160000)},
			},
			Summary: domain.PercentileSummary{Percentile10: usd(-32000), Percentile50: usd(-15000), Percentile90: usd(5000)},
		},
		PricePaths: &domain.HomePricePathSummary{
			Years: []int{0, 1, 2},
			P10:   usds(400000, 380000, 370000),
			P50:   usds(400000, 412000, 424360),
			P90:   usds(400000, 445000, 490000),
		},
	}
}
