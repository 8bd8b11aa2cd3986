package calculation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// Default ensemble parameters. Standard deviations are in percentage points.
const (
	DefaultMonteCarloRuns         = 500
	DefaultAppreciationStdDev     = 1.5
	DefaultRentGrowthStdDev       = 1.5
	DefaultInvestmentReturnStdDev = 2.5
)

// ErrNoValidRuns is returned when every run of an ensemble was excluded.
var ErrNoValidRuns = errors.New("monte carlo produced no valid runs")

// MonteCarloConfig holds configuration for a full-scenario Monte Carlo ensemble
type MonteCarloConfig struct {
	NumSimulations         int
	Seed                   int64 // 0 draws a fresh seed from SeedSource
	AppreciationStdDev     float64
	RentGrowthStdDev       float64
	InvestmentReturnStdDev float64
	SeedSource             SeedSource // nil uses TimeSeed
}

// DefaultMonteCarloConfig returns the standard ensemble settings.
func DefaultMonteCarloConfig() MonteCarloConfig {
	return MonteCarloConfig{
		NumSimulations:         DefaultMonteCarloRuns,
		AppreciationStdDev:     DefaultAppreciationStdDev,
		RentGrowthStdDev:       DefaultRentGrowthStdDev,
		InvestmentReturnStdDev: DefaultInvestmentReturnStdDev,
	}
}

// MonteCarloConfigFromSettings maps file settings onto a config. Zero values
// are kept; the config loader is responsible for defaults.
func MonteCarloConfigFromSettings(s domain.MonteCarloSettings) MonteCarloConfig {
	return MonteCarloConfig{
		NumSimulations:         s.Runs,
		Seed:                   s.Seed,
		AppreciationStdDev:     s.AppreciationStdDev,
		RentGrowthStdDev:       s.RentGrowthStdDev,
		InvestmentReturnStdDev: s.InvestmentReturnStdDev,
	}
}

// MonteCarloSimulator resamples the macro rates of a base scenario and runs
// the deterministic pipeline once per draw.
type MonteCarloSimulator struct {
	Engine *CalculationEngine
	Config MonteCarloConfig
}

// NewMonteCarloSimulator creates a new Monte Carlo simulator. A zero seed is
// replaced here so the result can report the seed that was used.
func NewMonteCarloSimulator(engine *CalculationEngine, config MonteCarloConfig) *MonteCarloSimulator {
	if engine == nil {
		engine = NewCalculationEngine()
	}
	if config.NumSimulations <= 0 {
		config.NumSimulations = DefaultMonteCarloRuns
	}
	config.Seed = resolveSeed(config.Seed, config.SeedSource)

	return &MonteCarloSimulator{Engine: engine, Config: config}
}

// RunSimulation executes the ensemble against base. Runs that fail or produce
// non-finite results are excluded and counted; the call fails only when
// nothing survives.
func (mcs *MonteCarloSimulator) RunSimulation(ctx context.Context, base domain.ScenarioInputs) (*domain.MonteCarloResult, error) {
	if err := base.Validate(); err != nil {
		return nil, err
	}
	cfg := mcs.Config
	for _, sd := range []float64{cfg.AppreciationStdDev, cfg.RentGrowthStdDev, cfg.InvestmentReturnStdDev} {
		if sd < 0 || math.IsNaN(sd) || math.IsInf(sd, 0) {
			return nil, fmt.Errorf("standard deviations must be finite and non-negative, got %v", sd)
		}
	}

	type runOutcome struct {
		run domain.MonteCarloRun
		ok  bool
	}

	jobs := make([]int, cfg.NumSimulations)
	for i := range jobs {
		jobs[i] = i
	}

	mcs.Engine.Logger.Infof("running %d Monte Carlo simulations (seed %d)", cfg.NumSimulations, cfg.Seed)
	outcomes, err := parallelMap(ctx, mcs.Engine.workers(), jobs, func(_ int, i int) (runOutcome, error) {
		run, ok := mcs.runSingleSimulation(base, i)
		return runOutcome{run: run, ok: ok}, nil
	})
	if err != nil {
		return nil, err
	}

	result := &domain.MonteCarloResult{
		EnsembleID: uuid.NewString(),
		Seed:       cfg.Seed,
		Requested:  cfg.NumSimulations,
		Runs:       make([]domain.MonteCarloRun, 0, len(outcomes)),
	}
	deltas := make([]decimal.Decimal, 0, len(outcomes))
	for _, o := range outcomes {
		if !o.ok {
			result.Excluded++
			continue
		}
		result.Runs = append(result.Runs, o.run)
		deltas = append(deltas, o.run.FinalDelta())
	}
	if len(deltas) == 0 {
		return nil, fmt.Errorf("%w: all %d runs excluded", ErrNoValidRuns, cfg.NumSimulations)
	}
	if result.Excluded > 0 {
		mcs.Engine.Logger.Warnf("excluded %d of %d Monte Carlo runs", result.Excluded, cfg.NumSimulations)
	}

	result.Summary = SummarizePercentiles(deltas)
	return result, nil
}

// runSingleSimulation draws one set of rates and runs the pipeline. The
// second return is false when the run must be excluded.
func (mcs *MonteCarloSimulator) runSingleSimulation(base domain.ScenarioInputs, index int) (domain.MonteCarloRun, bool) {
	rng := rand.New(rand.NewSource(streamSeed(mcs.Config.Seed, index)))

	inputs := base
	inputs.HomeAppreciationRate = drawRate(rng, base.HomeAppreciationRate, mcs.Config.AppreciationStdDev)
	inputs.RentGrowthRate = drawRate(rng, base.RentGrowthRate, mcs.Config.RentGrowthStdDev)
	inputs.InvestmentReturnRate = drawRate(rng, base.InvestmentReturnRate, mcs.Config.InvestmentReturnStdDev)

	run := domain.MonteCarloRun{
		Run:                  index + 1,
		HomeAppreciationRate: inputs.HomeAppreciationRate,
		RentGrowthRate:       inputs.RentGrowthRate,
		InvestmentReturnRate: inputs.InvestmentReturnRate,
	}
	if err := inputs.Validate(); err != nil {
		mcs.Engine.Logger.Debugf("run %d excluded: %v", run.Run, err)
		return run, false
	}

	snapshots := CalculateNetWorthComparison(inputs)
	if len(snapshots) == 0 {
		return run, false
	}
	final := snapshots[len(snapshots)-1]
	if !isFiniteAmount(final.BuyerNetWorth) || !isFiniteAmount(final.RenterNetWorth) {
		mcs.Engine.Logger.Debugf("run %d excluded: non-finite net worth", run.Run)
		return run, false
	}

	run.FinalBuyerNetWorth = final.BuyerNetWorth
	run.FinalRenterNetWorth = final.RenterNetWorth
	run.BreakevenMonth = FindBreakEvenMonth(snapshots)
	return run, true
}

// RunMonteCarlo is a convenience wrapper building a simulator on this engine.
func (ce *CalculationEngine) RunMonteCarlo(ctx context.Context, base domain.ScenarioInputs, config MonteCarloConfig) (*domain.MonteCarloResult, error) {
	return NewMonteCarloSimulator(ce, config).RunSimulation(ctx, base)
}

// drawRate samples Normal(mean, sd), clamped at -100%.
func drawRate(rng *rand.Rand, mean, sd float64) float64 {
	return math.Max(domain.MinGrowthRate, mean+rng.NormFloat64()*sd)
}
