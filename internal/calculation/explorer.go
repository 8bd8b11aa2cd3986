package calculation

import (
	"context"
	"fmt"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// Sensitivity variant labels, in output order.
const (
	VariantInterestDown = "interest-"
	VariantInterestUp   = "interest+"
	VariantPriceDown    = "price-"
	VariantPriceUp      = "price+"
	VariantRentDown     = "rent-"
	VariantRentUp       = "rent+"
)

type sensitivityJob struct {
	variant string
	inputs  domain.ScenarioInputs
}

// CalculateSensitivity runs six variants of base, each with exactly one input
// shifted by the matching delta. Every variant is validated before any run.
func (ce *CalculationEngine) CalculateSensitivity(ctx context.Context, base domain.ScenarioInputs, deltas domain.SensitivityDeltas) ([]domain.SensitivityResult, error) {
	perturb := func(variant string, apply func(*domain.ScenarioInputs)) sensitivityJob {
		inputs := base
		apply(&inputs)
		return sensitivityJob{variant: variant, inputs: inputs}
	}

	jobs := []sensitivityJob{
		perturb(VariantInterestDown, func(s *domain.ScenarioInputs) { s.InterestRate -= deltas.InterestRate }),
		perturb(VariantInterestUp, func(s *domain.ScenarioInputs) { s.InterestRate += deltas.InterestRate }),
		perturb(VariantPriceDown, func(s *domain.ScenarioInputs) { s.HomePrice = s.HomePrice.Sub(deltas.HomePrice) }),
		perturb(VariantPriceUp, func(s *domain.ScenarioInputs) { s.HomePrice = s.HomePrice.Add(deltas.HomePrice) }),
		perturb(VariantRentDown, func(s *domain.ScenarioInputs) { s.MonthlyRent = s.MonthlyRent.Sub(deltas.Rent) }),
		perturb(VariantRentUp, func(s *domain.ScenarioInputs) { s.MonthlyRent = s.MonthlyRent.Add(deltas.Rent) }),
	}
	for _, job := range jobs {
		if err := job.inputs.Validate(); err != nil {
			return nil, fmt.Errorf("sensitivity variant %s: %w", job.variant, err)
		}
	}

	ce.Logger.Infof("running %d sensitivity variants", len(jobs))
	return parallelMap(ctx, ce.workers(), jobs, func(_ int, job sensitivityJob) (domain.SensitivityResult, error) {
		output, err := ce.runPipeline(job.inputs)
		if err != nil {
			return domain.SensitivityResult{}, fmt.Errorf("sensitivity variant %s: %w", job.variant, err)
		}
		return domain.SensitivityResult{Variant: job.variant, Output: output}, nil
	})
}

// CalculateScenarios runs the pipeline once per named scenario.
func (ce *CalculationEngine) CalculateScenarios(ctx context.Context, scenarios []domain.NamedScenario) ([]domain.ScenarioResult, error) {
	for i, sc := range scenarios {
		if err := sc.Inputs.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i+1, sc.Name, err)
		}
	}

	ce.Logger.Infof("running %d scenarios", len(scenarios))
	return parallelMap(ctx, ce.workers(), scenarios, func(i int, sc domain.NamedScenario) (domain.ScenarioResult, error) {
		output, err := ce.runPipeline(sc.Inputs)
		if err != nil {
			return domain.ScenarioResult{}, fmt.Errorf("scenario %d (%s): %w", i+1, sc.Name, err)
		}
		return domain.ScenarioResult{Name: sc.Name, Scenario: sc.Inputs, Output: output}, nil
	})
}

// CalculateHeatmap records the break-even month for every (timeline, down
// payment) pair. Points are ordered timeline-major.
func (ce *CalculationEngine) CalculateHeatmap(ctx context.Context, base domain.ScenarioInputs, timelines []int, downPayments []float64) ([]domain.HeatmapPoint, error) {
	jobs := make([]domain.ScenarioInputs, 0, len(timelines)*len(downPayments))
	for _, years := range timelines {
		for _, dp := range downPayments {
			inputs := base
			inputs.TimeHorizonYears = years
			inputs.DownPaymentPercent = dp
			if err := inputs.Validate(); err != nil {
				return nil, fmt.Errorf("heatmap cell (%d years, %.2f%% down): %w", years, dp, err)
			}
			jobs = append(jobs, inputs)
		}
	}

	ce.Logger.Infof("running %d heatmap cells", len(jobs))
	return parallelMap(ctx, ce.workers(), jobs, func(_ int, inputs domain.ScenarioInputs) (domain.HeatmapPoint, error) {
		snapshots := CalculateNetWorthComparison(inputs)
		return domain.HeatmapPoint{
			TimelineYears:      inputs.TimeHorizonYears,
			DownPaymentPercent: inputs.DownPaymentPercent,
			BreakevenMonth:     FindBreakEvenMonth(snapshots),
		}, nil
	})
}
