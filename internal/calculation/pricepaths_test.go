package calculation

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

func TestSimulateHomePricePaths(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	paths, err := SimulateHomePricePaths(rng, 350000, 0.03, 0.15, 30, 200)
	require.NoError(t, err)
	require.Len(t, paths, 200)

	for _, path := range paths {
		require.Len(t, path, 31)
		assert.Equal(t, 350000.0, path[0])
		for _, price := range path[1:] {
			assert.Greater(t, price, 0.0)
		}
	}
}

func TestSimulateHomePricePaths_ExtremeDrawsStayPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	paths, err := SimulateHomePricePaths(rng, 100000, -20, 5, 50, 100)
	require.NoError(t, err)

	for _, path := range paths {
		assert.Equal(t, 100000.0, path[0])
		for _, price := range path[1:] {
			assert.Greater(t, price, 0.0)
			assert.False(t, math.IsNaN(price))
		}
	}
}

func TestSimulateHomePricePaths_ZeroVolatility(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	paths, err := SimulateHomePricePaths(rng, 200000, 0.04, 0, 10, 3)
	require.NoError(t, err)

	for _, path := range paths {
		for year, price := range path {
			assert.InDelta(t, 200000*math.Exp(0.04*float64(year)), price, 1e-6)
		}
	}
}

func TestSimulateHomePricePaths_Validation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := map[string]func() error{
		"nil rng":          func() error { _, err := SimulateHomePricePaths(nil, 1, 0, 0.1, 1, 1); return err },
		"zero price":       func() error { _, err := SimulateHomePricePaths(rng, 0, 0, 0.1, 1, 1); return err },
		"negative years":   func() error { _, err := SimulateHomePricePaths(rng, 1, 0, 0.1, -1, 1); return err },
		"no paths":         func() error { _, err := SimulateHomePricePaths(rng, 1, 0, 0.1, 1, 0); return err },
		"negative sigma":   func() error { _, err := SimulateHomePricePaths(rng, 1, 0, -0.1, 1, 1); return err },
		"non-finite drift": func() error { _, err := SimulateHomePricePaths(rng, 1, math.NaN(), 0.1, 1, 1); return err },
	}
	for name, run := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, run())
		})
	}

	paths, err := SimulateHomePricePaths(rng, 1, 0, 0.1, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1}, {1}}, paths)
}

func TestSummarizePaths(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		summary := SummarizePaths(nil)
		assert.Empty(t, summary.Years)
		assert.NotNil(t, summary.Years)
		assert.Empty(t, summary.P50)
	})

	t.Run("per-year bands", func(t *testing.T) {
		paths := [][]float64{
			{100, 90, 80},
			{100, 110, 120},
			{100, 100, 100},
		}
		summary := SummarizePaths(paths)

		assert.Equal(t, []int{0, 1, 2}, summary.Years)
		for _, p50 := range summary.P50 {
			assert.True(t, p50.Equal(dec(100)), "got %s", p50)
		}
		assert.True(t, summary.P10[1].Equal(dec(92)), "got %s", summary.P10[1])
		assert.True(t, summary.P90[1].Equal(dec(108)), "got %s", summary.P90[1])
		for i := range summary.Years {
			assert.True(t, summary.P10[i].LessThanOrEqual(summary.P50[i]))
			assert.True(t, summary.P50[i].LessThanOrEqual(summary.P90[i]))
		}
	})

	t.Run("overflowing prices saturate", func(t *testing.T) {
		summary := SummarizePaths([][]float64{{1, math.Inf(1)}})
		assert.True(t, summary.P50[1].Equal(dec(math.MaxFloat64)))
	})
}

func TestCalculateHomePricePaths(t *testing.T) {
	engine := NewCalculationEngine()
	inputs := testInputs()
	config := PricePathConfig{Paths: 100, Seed: 11, Sigma: 0.12}

	first, err := engine.CalculateHomePricePaths(context.Background(), inputs, config)
	require.NoError(t, err)
	require.Len(t, first.Years, inputs.TimeHorizonYears+1)
	assert.True(t, inputs.HomePrice.Equal(first.P10[0]))
	assert.True(t, inputs.HomePrice.Equal(first.P90[0]))

	second, err := engine.CalculateHomePricePaths(context.Background(), inputs, config)
	require.NoError(t, err)
	for i := range first.Years {
		assert.True(t, first.P50[i].Equal(second.P50[i]), "year %d", i)
	}

	config.Years = 3
	short, err := engine.CalculateHomePricePaths(context.Background(), inputs, config)
	require.NoError(t, err)
	assert.Len(t, short.Years, 4)
}

func TestCalculateHomePricePaths_SeedSource(t *testing.T) {
	engine := NewCalculationEngine()
	inputs := testInputs()
	calls := 0
	config := PricePathConfig{Paths: 20, Sigma: 0.12, SeedSource: func() int64 { calls++; return 11 }}

	fromSource, err := engine.CalculateHomePricePaths(context.Background(), inputs, config)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	fixed, err := engine.CalculateHomePricePaths(context.Background(), inputs, PricePathConfig{Paths: 20, Sigma: 0.12, Seed: 11})
	require.NoError(t, err)
	for i := range fixed.Years {
		assert.True(t, fixed.P50[i].Equal(fromSource.P50[i]), "year %d", i)
	}
}

func TestPricePathConfigFromSettings(t *testing.T) {
	config := PricePathConfigFromSettings(domain.PricePathSettings{Paths: 50, Years: 7, Seed: 3}, 0.2)
	assert.Equal(t, PricePathConfig{Paths: 50, Years: 7, Seed: 3, Sigma: 0.2}, config)
}
