package calculation

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

const (
	// DefaultPricePaths is the number of GBM paths when none is configured.
	DefaultPricePaths = 500
	// DefaultPriceVolatility is the annual sigma used when no location data exists.
	DefaultPriceVolatility = 0.15
	// minHomePrice floors simulated prices after the first year.
	minHomePrice = 1e-6
)

// PricePathConfig configures one GBM price path simulation.
type PricePathConfig struct {
	Paths      int        // 0 uses DefaultPricePaths
	Years      int        // 0 uses the scenario horizon
	Seed       int64      // 0 draws a fresh seed from SeedSource
	Sigma      float64    // annual volatility as a decimal
	SeedSource SeedSource // nil uses TimeSeed
}

// PricePathConfigFromSettings maps file settings and a resolved sigma onto a config.
func PricePathConfigFromSettings(s domain.PricePathSettings, sigma float64) PricePathConfig {
	return PricePathConfig{
		Paths: s.Paths,
		Years: s.Years,
		Seed:  s.Seed,
		Sigma: sigma,
	}
}

// SimulateHomePricePaths generates n annual geometric Brownian motion paths of
// years+1 points each. mu and sigma are decimals. path[0] is exactly initial.
// The paths stay in float64 because every step takes an exponential.
func SimulateHomePricePaths(rng *rand.Rand, initial, mu, sigma float64, years, n int) ([][]float64, error) {
	switch {
	case rng == nil:
		return nil, fmt.Errorf("random source is required")
	case initial <= 0 || !isFinite(initial):
		return nil, fmt.Errorf("initial price must be positive, got %v", initial)
	case !isFinite(mu):
		return nil, fmt.Errorf("drift must be finite, got %v", mu)
	case sigma < 0 || !isFinite(sigma):
		return nil, fmt.Errorf("volatility must be finite and non-negative, got %v", sigma)
	case years < 0:
		return nil, fmt.Errorf("years cannot be negative, got %d", years)
	case n < 1:
		return nil, fmt.Errorf("path count must be at least 1, got %d", n)
	}

	drift := mu - 0.5*sigma*sigma
	paths := make([][]float64, n)
	for p := range paths {
		path := make([]float64, years+1)
		path[0] = initial
		for t := 0; t < years; t++ {
			next := path[t] * math.Exp(drift+sigma*rng.NormFloat64())
			switch {
			case math.IsInf(next, 1):
				next = math.MaxFloat64
			case !(next > minHomePrice):
				next = minHomePrice
			}
			path[t+1] = next
		}
		paths[p] = path
	}
	return paths, nil
}

// SummarizePaths computes p10/p50/p90 across paths for each year index. The
// number of years is taken from the first path.
func SummarizePaths(paths [][]float64) *domain.HomePricePathSummary {
	summary := &domain.HomePricePathSummary{
		Years: []int{},
		P10:   []decimal.Decimal{},
		P50:   []decimal.Decimal{},
		P90:   []decimal.Decimal{},
	}
	if len(paths) == 0 {
		return summary
	}

	column := make([]decimal.Decimal, len(paths))
	for t := range paths[0] {
		for p, path := range paths {
			column[p] = finiteDecimal(path[t])
		}
		band := SummarizePercentiles(column)

		summary.Years = append(summary.Years, t)
		summary.P10 = append(summary.P10, band.Percentile10)
		summary.P50 = append(summary.P50, band.Percentile50)
		summary.P90 = append(summary.P90, band.Percentile90)
	}
	return summary
}

// CalculateHomePricePaths simulates and summarises price paths for a scenario.
// Drift comes from the scenario's appreciation rate.
func (ce *CalculationEngine) CalculateHomePricePaths(ctx context.Context, inputs domain.ScenarioInputs, config PricePathConfig) (*domain.HomePricePathSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := config.Paths
	if n <= 0 {
		n = DefaultPricePaths
	}
	years := config.Years
	if years <= 0 {
		years = inputs.TimeHorizonYears
	}
	seed := resolveSeed(config.Seed, config.SeedSource)

	rng := rand.New(rand.NewSource(seed))
	paths, err := SimulateHomePricePaths(rng, inputs.HomePrice.InexactFloat64(), inputs.HomeAppreciationRate/100, config.Sigma, years, n)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate home price paths: %w", err)
	}

	ce.Logger.Debugf("simulated %d price paths over %d years (sigma %.4f, seed %d)", n, years, config.Sigma, seed)
	return SummarizePaths(paths), nil
}
