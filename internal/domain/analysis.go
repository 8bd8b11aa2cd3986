package domain

import "github.com/shopspring/decimal"

// NamedScenario pairs caller-supplied inputs with a display label.
type NamedScenario struct {
	Name   string         `yaml:"name" json:"name" toml:"name"`
	Inputs ScenarioInputs `yaml:"inputs" json:"inputs" toml:"inputs"`
}

// ScenarioResult is one entry of a scenario overlay.
type ScenarioResult struct {
	Name     string            `json:"name"`
	Scenario ScenarioInputs    `json:"scenario"`
	Output   *CalculatorOutput `json:"output"`
}

// SensitivityDeltas are the symmetric perturbations applied to the base case.
type SensitivityDeltas struct {
	InterestRate float64         `yaml:"interest_rate" json:"interestRateDelta" toml:"interest_rate"`
	HomePrice    decimal.Decimal `yaml:"home_price" json:"homePriceDelta" toml:"home_price"`
	Rent         decimal.Decimal `yaml:"rent" json:"rentDelta" toml:"rent"`
}

// SensitivityResult is one labelled variant of a sensitivity sweep.
type SensitivityResult struct {
	Variant string            `json:"variant"`
	Output  *CalculatorOutput `json:"output"`
}

// HeatmapPoint is one cell of the break-even surface.
type HeatmapPoint struct {
	TimelineYears      int     `json:"timelineYears"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	BreakevenMonth     *int    `json:"breakevenMonth"`
}

// TimelinePoint is the unified per-month view consumed by charts.
type TimelinePoint struct {
	MonthIndex int `json:"month_index"`
	Year       int `json:"year"`

	NetWorthBuy  decimal.Decimal `json:"net_worth_buy"`
	NetWorthRent decimal.Decimal `json:"net_worth_rent"`

	TotalCostBuyToDate  decimal.Decimal `json:"total_cost_buy_to_date"`
	TotalCostRentToDate decimal.Decimal `json:"total_cost_rent_to_date"`

	BuyMonthlyOutflow  decimal.Decimal `json:"buy_monthly_outflow"`
	RentMonthlyOutflow decimal.Decimal `json:"rent_monthly_outflow"`

	MortgagePayment    decimal.Decimal `json:"mortgage_payment"`
	PropertyTaxMonthly decimal.Decimal `json:"property_tax_monthly"`
	InsuranceMonthly   decimal.Decimal `json:"insurance_monthly"`
	MaintenanceMonthly decimal.Decimal `json:"maintenance_monthly"`
	HOAMonthly         decimal.Decimal `json:"hoa_monthly"`
	PMIMonthly         decimal.Decimal `json:"pmi_monthly"`

	PrincipalPaid           decimal.Decimal `json:"principal_paid"`
	InterestPaid            decimal.Decimal `json:"interest_paid"`
	RemainingBalance        decimal.Decimal `json:"remaining_balance"`
	HomeValue               decimal.Decimal `json:"home_value"`
	HomeEquity              decimal.Decimal `json:"home_equity"`
	RenterInvestmentBalance decimal.Decimal `json:"renter_investment_balance"`
	BuyerCashAccount        decimal.Decimal `json:"buyer_cash_account"`
}

// BreakEvenInfo locates the first month the buyer is no longer behind.
type BreakEvenInfo struct {
	MonthIndex *int `json:"month_index"`
	Year       *int `json:"year"`
}

// AnalysisResult is the unified analysis view: timeline, break-even and rates used.
type AnalysisResult struct {
	Timeline             []TimelinePoint       `json:"timeline"`
	BreakEven            BreakEvenInfo         `json:"break_even"`
	TotalBuyCost         decimal.Decimal       `json:"total_buy_cost"`
	TotalRentCost        decimal.Decimal       `json:"total_rent_cost"`
	HomeAppreciationRate float64               `json:"home_appreciation_rate"`
	RentGrowthRate       float64               `json:"rent_growth_rate"`
	CostCrossover        *CostCrossover        `json:"cost_crossover,omitempty"`
	HomePricePaths       *HomePricePathSummary `json:"monte_carlo_home_prices,omitempty"`
}

// AnalysisReport is what the output formatters render: one analysis plus
// whichever optional extensions were requested.
type AnalysisReport struct {
	Name        string                `json:"name"`
	Location    string                `json:"location,omitempty"`
	Output      *CalculatorOutput     `json:"output"`
	Analysis    *AnalysisResult       `json:"analysis,omitempty"`
	Sensitivity []SensitivityResult   `json:"sensitivity,omitempty"`
	Scenarios   []ScenarioResult      `json:"scenarios,omitempty"`
	Heatmap     []HeatmapPoint        `json:"heatmap,omitempty"`
	MonteCarlo  *MonteCarloResult     `json:"monte_carlo,omitempty"`
	PricePaths  *HomePricePathSummary `json:"price_paths,omitempty"`
}

// CostCrossover marks where cumulative ownership costs meet cumulative rent.
type CostCrossover struct {
	Month           int             `json:"month"`
	FractionalMonth float64         `json:"fractional_month"`
	CumulativeCost  decimal.Decimal `json:"cumulative_cost"`
	// BuyingCheaper is true when buying is the cheaper path after the crossing.
	BuyingCheaper bool `json:"buying_cheaper"`
}
