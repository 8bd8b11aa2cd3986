package domain

import "github.com/shopspring/decimal"

// MonteCarloRun is the terminal outcome of one resampled pipeline run. Rates
// are the drawn whole-number percentages.
type MonteCarloRun struct {
	Run                  int             `json:"run"`
	HomeAppreciationRate float64         `json:"homeAppreciationRate"`
	RentGrowthRate       float64         `json:"rentGrowthRate"`
	InvestmentReturnRate float64         `json:"investmentReturnRate"`
	FinalBuyerNetWorth   decimal.Decimal `json:"finalBuyerNetWorth"`
	FinalRenterNetWorth  decimal.Decimal `json:"finalRenterNetWorth"`
	BreakevenMonth       *int            `json:"breakevenMonth"`
}

// FinalDelta is buyer minus renter terminal net worth.
func (r MonteCarloRun) FinalDelta() decimal.Decimal {
	return r.FinalBuyerNetWorth.Sub(r.FinalRenterNetWorth)
}

// PercentileSummary holds the 10th/50th/90th percentile of a distribution.
type PercentileSummary struct {
	Percentile10 decimal.Decimal `json:"percentile10"`
	Percentile50 decimal.Decimal `json:"percentile50"`
	Percentile90 decimal.Decimal `json:"percentile90"`
}

// MonteCarloResult is the write-once aggregate of a full-scenario ensemble.
type MonteCarloResult struct {
	EnsembleID string            `json:"ensembleId"`
	Seed       int64             `json:"seed"`
	Requested  int               `json:"requested"`
	Excluded   int               `json:"excluded"`
	Runs       []MonteCarloRun   `json:"runs"`
	Summary    PercentileSummary `json:"summary"`
}

// HomePricePathSummary holds per-year percentile bands across GBM paths.
type HomePricePathSummary struct {
	Years []int             `json:"years"`
	P10   []decimal.Decimal `json:"p10"`
	P50   []decimal.Decimal `json:"p50"`
	P90   []decimal.Decimal `json:"p90"`
}
