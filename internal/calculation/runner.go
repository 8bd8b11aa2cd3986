package calculation

import (
	"context"
	"fmt"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// RunOptions selects which optional analyses RunConfiguration performs on
// top of the base projection. Blocks missing from the configuration are
// skipped even when requested.
type RunOptions struct {
	Sensitivity bool
	Scenarios   bool
	Heatmap     bool
	MonteCarlo  bool
	PricePaths  bool

	// PriceVolatility is the GBM sigma (decimal). Zero uses the
	// configuration's fallback sigma.
	PriceVolatility float64
}

// AllAnalyses enables every optional analysis.
func AllAnalyses() RunOptions {
	return RunOptions{Sensitivity: true, Scenarios: true, Heatmap: true, MonteCarlo: true, PricePaths: true}
}

// RunConfiguration runs the base case of a loaded configuration plus the
// requested analyses and assembles the report the output formatters render.
// A bracket set on the configuration applies to this run only; the engine
// itself is not modified.
func (ce *CalculationEngine) RunConfiguration(ctx context.Context, cfg *domain.Configuration, opts RunOptions) (*domain.AnalysisReport, error) {
	if cfg == nil {
		return nil, fmt.Errorf("run configuration: nil configuration")
	}
	run := *ce
	if cfg.TaxBracket != nil {
		run.TaxBracket = *cfg.TaxBracket
	}

	base, err := run.CalculateAnalysis(ctx, cfg.Base)
	if err != nil {
		return nil, fmt.Errorf("base scenario: %w", err)
	}
	log := withPrefix(run.Logger, cfg.Name)
	report := &domain.AnalysisReport{
		Name:     cfg.Name,
		Location: cfg.Location,
		Output:   base,
	}

	if opts.Sensitivity && cfg.Sensitivity != nil {
		log.Infof("running sensitivity sweep")
		if report.Sensitivity, err = run.CalculateSensitivity(ctx, cfg.Base, *cfg.Sensitivity); err != nil {
			return nil, err
		}
	}
	if opts.Scenarios && len(cfg.Scenarios) > 0 {
		log.Infof("running %d scenarios", len(cfg.Scenarios))
		if report.Scenarios, err = run.CalculateScenarios(ctx, cfg.Scenarios); err != nil {
			return nil, err
		}
	}
	if opts.Heatmap && cfg.Heatmap != nil {
		log.Infof("running %dx%d break-even heatmap", len(cfg.Heatmap.Timelines), len(cfg.Heatmap.DownPayments))
		if report.Heatmap, err = run.CalculateHeatmap(ctx, cfg.Base, cfg.Heatmap.Timelines, cfg.Heatmap.DownPayments); err != nil {
			return nil, err
		}
	}
	if opts.MonteCarlo {
		log.Infof("running Monte Carlo ensemble of %d runs", cfg.MonteCarlo.Runs)
		mc := MonteCarloConfigFromSettings(cfg.MonteCarlo)
		mc.SeedSource = run.SeedSource
		if report.MonteCarlo, err = run.RunMonteCarlo(ctx, cfg.Base, mc); err != nil {
			return nil, err
		}
	}
	if opts.PricePaths {
		sigma := opts.PriceVolatility
		if sigma <= 0 {
			sigma = cfg.PricePaths.FallbackSigma
		}
		if sigma <= 0 {
			sigma = DefaultPriceVolatility
		}
		paths := PricePathConfigFromSettings(cfg.PricePaths, sigma)
		paths.SeedSource = run.SeedSource
		if report.PricePaths, err = run.CalculateHomePricePaths(ctx, cfg.Base, paths); err != nil {
			return nil, err
		}
	}

	report.Analysis = BuildAnalysisResult(base, report.PricePaths)
	log.Debugf("report assembled: final delta %s", base.Summary.FinalNetWorthDelta.StringFixed(2))
	return report, nil
}
