package domain

import "github.com/shopspring/decimal"

// AmortizationMonth is one row of a fixed-payment loan schedule.
type AmortizationMonth struct {
	Month            int             `json:"month"`
	Payment          decimal.Decimal `json:"payment"`
	PrincipalPaid    decimal.Decimal `json:"principalPaid"`
	InterestPaid     decimal.Decimal `json:"interestPaid"`
	RemainingBalance decimal.Decimal `json:"remainingBalance"`
}

// MonthlySnapshot captures both trajectories at the end of one simulated month.
type MonthlySnapshot struct {
	Month               int             `json:"month"`
	MortgagePayment     decimal.Decimal `json:"mortgagePayment"`
	PrincipalPaid       decimal.Decimal `json:"principalPaid"`
	InterestPaid        decimal.Decimal `json:"interestPaid"`
	RemainingBalance    decimal.Decimal `json:"remainingBalance"`
	HomeValue           decimal.Decimal `json:"homeValue"`
	HomeEquity          decimal.Decimal `json:"homeEquity"`
	MonthlyBuyingCosts  decimal.Decimal `json:"monthlyBuyingCosts"`
	MonthlyRent         decimal.Decimal `json:"monthlyRent"`
	MonthlyRentingCosts decimal.Decimal `json:"monthlyRentingCosts"`
	InvestedDownPayment decimal.Decimal `json:"investedDownPayment"`
	BuyerNetWorth       decimal.Decimal `json:"buyerNetWorth"`
	RenterNetWorth      decimal.Decimal `json:"renterNetWorth"`
	NetWorthDelta       decimal.Decimal `json:"netWorthDelta"`

	// Owner cost breakdown and the buyer's reinvestment account
	PropertyTax      decimal.Decimal `json:"propertyTax"`
	Insurance        decimal.Decimal `json:"insurance"`
	Maintenance      decimal.Decimal `json:"maintenance"`
	HOA              decimal.Decimal `json:"hoa"`
	PMI              decimal.Decimal `json:"pmi"`
	BuyerCashAccount decimal.Decimal `json:"buyerCashAccount"`
}

// MonthlyCosts is the static first-month ownership cost breakdown.
type MonthlyCosts struct {
	Mortgage    decimal.Decimal `json:"mortgage"`
	PropertyTax decimal.Decimal `json:"propertyTax"`
	Insurance   decimal.Decimal `json:"insurance"`
	HOA         decimal.Decimal `json:"hoa"`
	Maintenance decimal.Decimal `json:"maintenance"`
	PMI         decimal.Decimal `json:"pmi"`
	Total       decimal.Decimal `json:"total"`
}

// RentingCosts is the rental cost breakdown for a given month.
type RentingCosts struct {
	Rent      decimal.Decimal `json:"rent"`
	Insurance decimal.Decimal `json:"insurance"`
	Total     decimal.Decimal `json:"total"`
}

// TotalCostSummary aggregates the full horizon.
type TotalCostSummary struct {
	BuyerFinalNetWorth   decimal.Decimal `json:"buyerFinalNetWorth"`
	RenterFinalNetWorth  decimal.Decimal `json:"renterFinalNetWorth"`
	TotalBuyingCosts     decimal.Decimal `json:"totalBuyingCosts"`
	TotalRentingCosts    decimal.Decimal `json:"totalRentingCosts"`
	FinalHomeValue       decimal.Decimal `json:"finalHomeValue"`
	FinalInvestmentValue decimal.Decimal `json:"finalInvestmentValue"`
}

// CalculatorSummary holds the headline figures of a completed projection.
type CalculatorSummary struct {
	TotalInterestPaid   decimal.Decimal `json:"totalInterestPaid"`
	TotalPrincipalPaid  decimal.Decimal `json:"totalPrincipalPaid"`
	BreakevenMonth      *int            `json:"breakevenMonth"`
	FinalBuyerNetWorth  decimal.Decimal `json:"finalBuyerNetWorth"`
	FinalRenterNetWorth decimal.Decimal `json:"finalRenterNetWorth"`
	FinalNetWorthDelta  decimal.Decimal `json:"finalNetWorthDelta"`
}

// CashFlowPoint is the monthly cost difference between the two paths.
type CashFlowPoint struct {
	Month             int             `json:"month"`
	HomeownerCashFlow decimal.Decimal `json:"homeownerCashFlow"`
	RenterCashFlow    decimal.Decimal `json:"renterCashFlow"`
}

// CumulativeCostPoint is the running total of recurring costs.
type CumulativeCostPoint struct {
	Month             int             `json:"month"`
	CumulativeBuying  decimal.Decimal `json:"cumulativeBuying"`
	CumulativeRenting decimal.Decimal `json:"cumulativeRenting"`
}

// LiquidityPoint exposes the liquid account of each party.
type LiquidityPoint struct {
	Month                   int             `json:"month"`
	HomeownerCashAccount    decimal.Decimal `json:"homeownerCashAccount"`
	RenterInvestmentBalance decimal.Decimal `json:"renterInvestmentBalance"`
}

// TaxSavingsPoint is the estimated itemized-deduction benefit for one year.
type TaxSavingsPoint struct {
	Year                       int             `json:"year"`
	DeductibleMortgageInterest decimal.Decimal `json:"deductibleMortgageInterest"`
	DeductiblePropertyTax      decimal.Decimal `json:"deductiblePropertyTax"`
	TotalTaxBenefit            decimal.Decimal `json:"totalTaxBenefit"`
}

// CalculatorOutput is the complete result of one deterministic pipeline run.
type CalculatorOutput struct {
	Inputs            ScenarioInputs        `json:"inputs"`
	MonthlySnapshots  []MonthlySnapshot     `json:"monthlySnapshots"`
	Summary           CalculatorSummary     `json:"summary"`
	MonthlyCosts      MonthlyCosts          `json:"monthlyCosts"`
	RentingCosts      RentingCosts          `json:"rentingCosts"`
	Totals            TotalCostSummary      `json:"totals"`
	CashFlow          []CashFlowPoint       `json:"cashFlow,omitempty"`
	CumulativeCosts   []CumulativeCostPoint `json:"cumulativeCosts,omitempty"`
	LiquidityTimeline []LiquidityPoint      `json:"liquidityTimeline,omitempty"`
	TaxSavings        []TaxSavingsPoint     `json:"taxSavings,omitempty"`
}

// FinalSnapshot returns the last month of the projection, or the zero value when empty.
func (o *CalculatorOutput) FinalSnapshot() MonthlySnapshot {
	if len(o.MonthlySnapshots) == 0 {
		return MonthlySnapshot{}
	}
	return o.MonthlySnapshots[len(o.MonthlySnapshots)-1]
}
