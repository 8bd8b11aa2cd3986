package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
	"github.com/rvb/rent-vs-buy/pkg/dateutil"
)

const (
	// DefaultTaxBracket is the marginal rate used when none is configured.
	DefaultTaxBracket = 0.24
)

var (
	// MortgageInterestDeductionCap limits deductible mortgage interest per year.
	MortgageInterestDeductionCap = decimal.NewFromInt(750000)
	// SALTDeductionCap limits deductible property tax per year.
	SALTDeductionCap = decimal.NewFromInt(10000)
)

// ComputeSummary derives totals, break-even and final figures from a projection.
func ComputeSummary(snapshots []domain.MonthlySnapshot) domain.CalculatorSummary {
	summary := domain.CalculatorSummary{
		TotalInterestPaid:  decimal.Zero,
		TotalPrincipalPaid: decimal.Zero,
	}
	for _, s := range snapshots {
		summary.TotalInterestPaid = summary.TotalInterestPaid.Add(s.InterestPaid)
		summary.TotalPrincipalPaid = summary.TotalPrincipalPaid.Add(s.PrincipalPaid)
	}
	summary.BreakevenMonth = FindBreakEvenMonth(snapshots)

	if len(snapshots) > 0 {
		final := snapshots[len(snapshots)-1]
		summary.FinalBuyerNetWorth = final.BuyerNetWorth
		summary.FinalRenterNetWorth = final.RenterNetWorth
		summary.FinalNetWorthDelta = final.NetWorthDelta
	}
	return summary
}

// FindBreakEvenMonth returns the first month whose delta is non-negative, or
// nil when the buyer never catches up.
func FindBreakEvenMonth(snapshots []domain.MonthlySnapshot) *int {
	for _, s := range snapshots {
		if !s.NetWorthDelta.IsNegative() {
			month := s.Month
			return &month
		}
	}
	return nil
}

// CalculateTotals sums the recurring costs and copies the final balances.
func CalculateTotals(snapshots []domain.MonthlySnapshot) domain.TotalCostSummary {
	totals := domain.TotalCostSummary{
		TotalBuyingCosts:  decimal.Zero,
		TotalRentingCosts: decimal.Zero,
	}
	for _, s := range snapshots {
		totals.TotalBuyingCosts = totals.TotalBuyingCosts.Add(s.MonthlyBuyingCosts)
		totals.TotalRentingCosts = totals.TotalRentingCosts.Add(s.MonthlyRentingCosts)
	}
	if len(snapshots) > 0 {
		final := snapshots[len(snapshots)-1]
		totals.BuyerFinalNetWorth = final.BuyerNetWorth
		totals.RenterFinalNetWorth = final.RenterNetWorth
		totals.FinalHomeValue = final.HomeValue
		totals.FinalInvestmentValue = final.InvestedDownPayment
	}
	return totals
}

// CalculateCashFlow reports the monthly cost gap and the raw rent cost.
func CalculateCashFlow(snapshots []domain.MonthlySnapshot) []domain.CashFlowPoint {
	points := make([]domain.CashFlowPoint, 0, len(snapshots))
	for _, s := range snapshots {
		points = append(points, domain.CashFlowPoint{
			Month:             s.Month,
			HomeownerCashFlow: s.MonthlyRentingCosts.Sub(s.MonthlyBuyingCosts),
			RenterCashFlow:    s.MonthlyRentingCosts,
		})
	}
	return points
}

// CalculateCumulativeCosts returns running totals of both cost streams.
func CalculateCumulativeCosts(snapshots []domain.MonthlySnapshot) []domain.CumulativeCostPoint {
	points := make([]domain.CumulativeCostPoint, 0, len(snapshots))
	buy, rent := decimal.Zero, decimal.Zero
	for _, s := range snapshots {
		buy = buy.Add(s.MonthlyBuyingCosts)
		rent = rent.Add(s.MonthlyRentingCosts)
		points = append(points, domain.CumulativeCostPoint{
			Month:             s.Month,
			CumulativeBuying:  buy,
			CumulativeRenting: rent,
		})
	}
	return points
}

// CalculateLiquidityTimeline exposes the buyer's cash account against the
// renter's portfolio.
func CalculateLiquidityTimeline(snapshots []domain.MonthlySnapshot) []domain.LiquidityPoint {
	points := make([]domain.LiquidityPoint, 0, len(snapshots))
	for _, s := range snapshots {
		points = append(points, domain.LiquidityPoint{
			Month:                   s.Month,
			HomeownerCashAccount:    s.BuyerCashAccount,
			RenterInvestmentBalance: s.InvestedDownPayment,
		})
	}
	return points
}

// CalculateTaxSavings estimates the yearly itemized-deduction benefit. Months
// are grouped into 12-month buckets; a trailing partial year gets its own
// bucket. The bracket is applied as given, so zero yields no benefit.
func CalculateTaxSavings(snapshots []domain.MonthlySnapshot, bracket float64) []domain.TaxSavingsPoint {
	rate := decimal.NewFromFloat(bracket)

	years := (len(snapshots) + 11) / 12
	points := make([]domain.TaxSavingsPoint, 0, years)
	for year := 0; year < years; year++ {
		end := min((year+1)*12, len(snapshots))

		interest, propertyTax := decimal.Zero, decimal.Zero
		for _, s := range snapshots[year*12 : end] {
			interest = interest.Add(s.InterestPaid)
			propertyTax = propertyTax.Add(s.PropertyTax)
		}
		deductibleInterest := decimal.Min(interest, MortgageInterestDeductionCap)
		deductibleTax := decimal.Min(propertyTax, SALTDeductionCap)

		points = append(points, domain.TaxSavingsPoint{
			Year:                       year + 1,
			DeductibleMortgageInterest: deductibleInterest,
			DeductiblePropertyTax:      deductibleTax,
			TotalTaxBenefit:            deductibleInterest.Add(deductibleTax).Mul(rate),
		})
	}
	return points
}

// BuildAnalysisResult flattens a completed run into the unified chart timeline.
func BuildAnalysisResult(output *domain.CalculatorOutput, pricePaths *domain.HomePricePathSummary) *domain.AnalysisResult {
	result := &domain.AnalysisResult{
		Timeline:             make([]domain.TimelinePoint, 0, len(output.MonthlySnapshots)),
		TotalBuyCost:         output.Totals.TotalBuyingCosts,
		TotalRentCost:        output.Totals.TotalRentingCosts,
		HomeAppreciationRate: output.Inputs.HomeAppreciationRate,
		RentGrowthRate:       output.Inputs.RentGrowthRate,
		CostCrossover:        CalculateCostCrossover(output.CumulativeCosts),
		HomePricePaths:       pricePaths,
	}

	buyToDate, rentToDate := decimal.Zero, decimal.Zero
	for _, s := range output.MonthlySnapshots {
		buyToDate = buyToDate.Add(s.MonthlyBuyingCosts)
		rentToDate = rentToDate.Add(s.MonthlyRentingCosts)
		result.Timeline = append(result.Timeline, domain.TimelinePoint{
			MonthIndex:              s.Month,
			Year:                    dateutil.YearOfMonth(s.Month),
			NetWorthBuy:             s.BuyerNetWorth,
			NetWorthRent:            s.RenterNetWorth,
			TotalCostBuyToDate:      buyToDate,
			TotalCostRentToDate:     rentToDate,
			BuyMonthlyOutflow:       s.MonthlyBuyingCosts,
			RentMonthlyOutflow:      s.MonthlyRentingCosts,
			MortgagePayment:         s.MortgagePayment,
			PropertyTaxMonthly:      s.PropertyTax,
			InsuranceMonthly:        s.Insurance,
			MaintenanceMonthly:      s.Maintenance,
			HOAMonthly:              s.HOA,
			PMIMonthly:              s.PMI,
			PrincipalPaid:           s.PrincipalPaid,
			InterestPaid:            s.InterestPaid,
			RemainingBalance:        s.RemainingBalance,
			HomeValue:               s.HomeValue,
			HomeEquity:              s.HomeEquity,
			RenterInvestmentBalance: s.InvestedDownPayment,
			BuyerCashAccount:        s.BuyerCashAccount,
		})
	}

	if month := output.Summary.BreakevenMonth; month != nil {
		m := *month
		y := dateutil.YearOfMonth(m)
		result.BreakEven = domain.BreakEvenInfo{MonthIndex: &m, Year: &y}
	}

	return result
}
