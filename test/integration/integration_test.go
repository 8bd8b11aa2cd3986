package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvb/rent-vs-buy/internal/calculation"
	"github.com/rvb/rent-vs-buy/internal/config"
	"github.com/rvb/rent-vs-buy/internal/domain"
	"github.com/rvb/rent-vs-buy/internal/growth"
)

func loadExample(t *testing.T) *domain.Configuration {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	return cfg
}

func TestEndToEndCalculation(t *testing.T) {
	cfg := loadExample(t)
	assert.Equal(t, "Cambridge condo", cfg.Name)
	assert.Len(t, cfg.Scenarios, 2)

	engine := calculation.NewCalculationEngine()
	report, err := engine.RunConfiguration(context.Background(), cfg, calculation.AllAnalyses())
	require.NoError(t, err)

	out := report.Output
	require.Len(t, out.MonthlySnapshots, 120)
	assert.Len(t, out.TaxSavings, 10)
	for _, s := range out.MonthlySnapshots {
		assert.True(t, s.BuyerNetWorth.Sub(s.RenterNetWorth).Equal(s.NetWorthDelta), "month %d", s.Month)
		assert.False(t, s.RemainingBalance.IsNegative(), "month %d", s.Month)
	}

	assert.Len(t, report.Sensitivity, 6)
	assert.Len(t, report.Scenarios, 2)
	assert.Len(t, report.Heatmap, 6)

	mc := report.MonteCarlo
	require.NotNil(t, mc)
	assert.Equal(t, int64(20240101), mc.Seed)
	assert.Equal(t, 200, len(mc.Runs)+mc.Excluded)
	assert.True(t, mc.Summary.Percentile10.LessThanOrEqual(mc.Summary.Percentile50))
	assert.True(t, mc.Summary.Percentile50.LessThanOrEqual(mc.Summary.Percentile90))

	paths := report.PricePaths
	require.NotNil(t, paths)
	assert.Len(t, paths.Years, 11)
	assert.Equal(t, "600000", paths.P50[0].String())
	for i := range paths.Years {
		assert.True(t, paths.P10[i].LessThanOrEqual(paths.P50[i]), "year %d", i)
		assert.True(t, paths.P50[i].LessThanOrEqual(paths.P90[i]), "year %d", i)
	}
}

func TestSeededEnsemblesReproduce(t *testing.T) {
	cfg := loadExample(t)
	engine := calculation.NewCalculationEngine()
	opts := calculation.RunOptions{MonteCarlo: true, PricePaths: true}

	first, err := engine.RunConfiguration(context.Background(), cfg, opts)
	require.NoError(t, err)
	engine.Workers = 1
	second, err := engine.RunConfiguration(context.Background(), cfg, opts)
	require.NoError(t, err)

	require.Len(t, second.MonteCarlo.Runs, len(first.MonteCarlo.Runs))
	for i, run := range first.MonteCarlo.Runs {
		other := second.MonteCarlo.Runs[i]
		assert.Equal(t, run.Run, other.Run)
		assert.Equal(t, run.HomeAppreciationRate, other.HomeAppreciationRate)
		assert.True(t, run.FinalBuyerNetWorth.Equal(other.FinalBuyerNetWorth), "run %d", run.Run)
		assert.True(t, run.FinalRenterNetWorth.Equal(other.FinalRenterNetWorth), "run %d", run.Run)
	}
	assert.Equal(t, summaryStrings(first.MonteCarlo.Summary), summaryStrings(second.MonteCarlo.Summary))
	assert.NotEqual(t, first.MonteCarlo.EnsembleID, second.MonteCarlo.EnsembleID)

	assert.Equal(t, first.PricePaths.Years, second.PricePaths.Years)
	for i := range first.PricePaths.Years {
		assert.True(t, first.PricePaths.P10[i].Equal(second.PricePaths.P10[i]), "year %d", i)
		assert.True(t, first.PricePaths.P50[i].Equal(second.PricePaths.P50[i]), "year %d", i)
		assert.True(t, first.PricePaths.P90[i].Equal(second.PricePaths.P90[i]), "year %d", i)
	}
}

func summaryStrings(s domain.PercentileSummary) [3]string {
	return [3]string{s.Percentile10.String(), s.Percentile50.String(), s.Percentile90.String()}
}

func TestLocationGrowthSubstitution(t *testing.T) {
	cfg := loadExample(t)
	ds, err := growth.LoadLocationDataset("../testdata/locations.csv")
	require.NoError(t, err)
	provider := growth.NewTableProvider(ds)

	known := growth.ApplyGrowthRates(provider, cfg.Location, cfg.Base)
	assert.Equal(t, 4.5, known.HomeAppreciationRate)
	assert.Equal(t, 3.8, known.RentGrowthRate)
	assert.Equal(t, 0.12, provider.HomeVolatility(cfg.Location, cfg.PricePaths.FallbackSigma))

	// known location without rates borrows from its neighbours
	imputed := growth.ApplyGrowthRates(provider, "02141", cfg.Base)
	assert.NotEqual(t, cfg.Base.HomeAppreciationRate, imputed.HomeAppreciationRate)
	assert.Greater(t, imputed.HomeAppreciationRate, 0.0)

	unknown := growth.ApplyGrowthRates(provider, "00000", cfg.Base)
	assert.Equal(t, cfg.Base, unknown)

	engine := calculation.NewCalculationEngine()
	cfg.Base = known
	report, err := engine.RunConfiguration(context.Background(), cfg, calculation.RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 4.5, report.Analysis.HomeAppreciationRate)
}
