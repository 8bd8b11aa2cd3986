package calculation

import (
	"context"
	"fmt"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// DefaultWorkers bounds concurrent pipeline runs.
const DefaultWorkers = 10

// CalculationEngine orchestrates the deterministic rent-vs-buy pipeline and
// the fan-out analyses built on top of it.
type CalculationEngine struct {
	TaxBracket float64    // marginal rate for the tax-savings estimate, applied as given
	Workers    int        // concurrent runs for sensitivity, scenarios, heatmap and Monte Carlo
	SeedSource SeedSource // seeds unseeded ensembles in RunConfiguration; nil uses TimeSeed
	Logger     Logger
}

// NewCalculationEngine creates a new calculation engine with default settings
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		TaxBracket: DefaultTaxBracket,
		Workers:    DefaultWorkers,
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// CalculateAnalysis validates the inputs and runs one full pipeline:
// projection followed by every aggregate view.
func (ce *CalculationEngine) CalculateAnalysis(ctx context.Context, inputs domain.ScenarioInputs) (*domain.CalculatorOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := inputs.Validate(); err != nil {
		return nil, err
	}
	return ce.runPipeline(inputs)
}

// runPipeline assumes validated inputs.
func (ce *CalculationEngine) runPipeline(inputs domain.ScenarioInputs) (*domain.CalculatorOutput, error) {
	snapshots := CalculateNetWorthComparison(inputs)
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("projection produced no months for horizon %d", inputs.TimeHorizonYears)
	}

	rentingCosts, err := CalculateRentingCosts(inputs, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate renting costs: %w", err)
	}

	output := &domain.CalculatorOutput{
		Inputs:            inputs,
		MonthlySnapshots:  snapshots,
		Summary:           ComputeSummary(snapshots),
		MonthlyCosts:      CalculateBuyingCosts(inputs),
		RentingCosts:      rentingCosts,
		Totals:            CalculateTotals(snapshots),
		CashFlow:          CalculateCashFlow(snapshots),
		CumulativeCosts:   CalculateCumulativeCosts(snapshots),
		LiquidityTimeline: CalculateLiquidityTimeline(snapshots),
		TaxSavings:        CalculateTaxSavings(snapshots, ce.TaxBracket),
	}

	ce.Logger.Debugf("projection complete: %d months, final delta %s", len(snapshots), output.Summary.FinalNetWorthDelta.StringFixed(2))
	return output, nil
}

func (ce *CalculationEngine) workers() int {
	if ce.Workers <= 0 {
		return DefaultWorkers
	}
	return ce.Workers
}
