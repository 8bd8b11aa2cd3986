package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvb/rent-vs-buy/internal/calculation"
	"github.com/rvb/rent-vs-buy/internal/domain"
)

const minimalYAML = `name: "Starter Home"
base:
  home_price: 350000
  down_payment_percent: 10
  interest_rate: 6.25
  time_horizon_years: 7
  monthly_rent: 1900
  property_tax_rate: 1.2
  home_insurance_annual: 1400
  hoa_monthly: 0
  maintenance_rate: 1
  renter_insurance_annual: 150
  home_appreciation_rate: 3
  rent_growth_rate: 3
  investment_return_rate: 6
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_YAMLAppliesDefaults(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeTemp(t, "config.yaml", minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "Starter Home", config.Name)
	assert.True(t, config.Base.HomePrice.Equal(decimal.NewFromInt(350000)), "got %s", config.Base.HomePrice)
	assert.Equal(t, 30, config.Base.LoanTermYears, "loan term defaults to 30 years")
	assert.Nil(t, config.TaxBracket, "an absent bracket leaves the engine default in place")
	assert.Equal(t, calculation.DefaultMonteCarloRuns, config.MonteCarlo.Runs)
	assert.Equal(t, calculation.DefaultInvestmentReturnStdDev, config.MonteCarlo.InvestmentReturnStdDev)
	assert.Equal(t, calculation.DefaultPricePaths, config.PricePaths.Paths)
	assert.Equal(t, calculation.DefaultPriceVolatility, config.PricePaths.FallbackSigma)
	assert.Nil(t, config.Sensitivity)
	assert.Nil(t, config.Heatmap)
}

func TestLoadFromFile_TOML(t *testing.T) {
	content := `name = "TOML case"
location = "02139"
tax_bracket = 0.32

[base]
home_price = 600000.0
down_payment_percent = 20.0
interest_rate = 6.0
loan_term_years = 15
time_horizon_years = 12
monthly_rent = 3000.0
property_tax_rate = 1.0
home_insurance_annual = 2000.0
hoa_monthly = 100.0
maintenance_rate = 1.0
renter_insurance_annual = 200.0
home_appreciation_rate = 4.0
rent_growth_rate = 3.5
investment_return_rate = 7.0

[sensitivity]
interest_rate = 0.25
home_price = 10000.0
rent = 100.0

[monte_carlo]
runs = 50
seed = 42
`
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "config.toml", content))
	require.NoError(t, err)

	assert.Equal(t, "02139", config.Location)
	require.NotNil(t, config.TaxBracket)
	assert.Equal(t, 0.32, *config.TaxBracket)
	assert.True(t, config.Base.MonthlyRent.Equal(decimal.NewFromInt(3000)), "got %s", config.Base.MonthlyRent)
	assert.Equal(t, 15, config.Base.LoanTermYears)
	require.NotNil(t, config.Sensitivity)
	assert.Equal(t, 0.25, config.Sensitivity.InterestRate)
	assert.True(t, config.Sensitivity.HomePrice.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, 50, config.MonteCarlo.Runs)
	assert.Equal(t, int64(42), config.MonteCarlo.Seed)
	assert.Equal(t, calculation.DefaultAppreciationStdDev, config.MonteCarlo.AppreciationStdDev)
}

func TestLoadFromFile_ZeroTaxBracketKept(t *testing.T) {
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "config.yaml", minimalYAML+"tax_bracket: 0\n"))
	require.NoError(t, err)
	require.NotNil(t, config.TaxBracket)
	assert.Equal(t, 0.0, *config.TaxBracket)
}

func TestLoadFromFile_CentAmounts(t *testing.T) {
	content := `{"base": {"homePrice": "350000.10", "downPaymentPercent": 10, "interestRate": 6,
	  "timeHorizonYears": 5, "monthlyRent": 1899.99, "homeInsuranceAnnual": 1400}}`
	config, err := NewInputParser().LoadFromFile(writeTemp(t, "config.json", content))
	require.NoError(t, err)
	assert.Equal(t, "350000.1", config.Base.HomePrice.String())
	assert.Equal(t, "1899.99", config.Base.MonthlyRent.String())
}

func TestValidateTaxBracket(t *testing.T) {
	assert.NoError(t, ValidateTaxBracket(0))
	assert.NoError(t, ValidateTaxBracket(0.37))
	assert.Error(t, ValidateTaxBracket(1))
	assert.Error(t, ValidateTaxBracket(-0.1))
}

func TestLoadFromFile_Errors(t *testing.T) {
	parser := NewInputParser()

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := parser.LoadFromFile(writeTemp(t, "bad.yaml", "base: [unclosed"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse YAML")
	})

	t.Run("malformed TOML", func(t *testing.T) {
		_, err := parser.LoadFromFile(writeTemp(t, "bad.toml", "base = = 1"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse TOML")
	})

	t.Run("invalid base inputs", func(t *testing.T) {
		_, err := parser.LoadFromFile(writeTemp(t, "config.yml", "base:\n  home_price: 0\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidScenario)
	})
}

func TestValidateConfiguration(t *testing.T) {
	parser := NewInputParser()

	cases := map[string]func(*domain.Configuration){
		"tax bracket above one":  func(c *domain.Configuration) { v := 1.5; c.TaxBracket = &v },
		"negative tax bracket":   func(c *domain.Configuration) { v := -0.2; c.TaxBracket = &v },
		"unnamed scenario":       func(c *domain.Configuration) { c.Scenarios[0].Name = "" },
		"duplicate scenario":     func(c *domain.Configuration) { c.Scenarios[1].Name = c.Scenarios[0].Name },
		"invalid scenario":       func(c *domain.Configuration) { c.Scenarios[2].Inputs.MonthlyRent = decimal.NewFromInt(-1) },
		"negative delta":         func(c *domain.Configuration) { c.Sensitivity.Rent = decimal.NewFromInt(-10) },
		"empty heatmap axis":     func(c *domain.Configuration) { c.Heatmap.Timelines = nil },
		"heatmap down > 100":     func(c *domain.Configuration) { c.Heatmap.DownPayments = []float64{110} },
		"heatmap zero timeline":  func(c *domain.Configuration) { c.Heatmap.Timelines = []int{0} },
		"zero runs":              func(c *domain.Configuration) { c.MonteCarlo.Runs = 0 },
		"negative std dev":       func(c *domain.Configuration) { c.MonteCarlo.RentGrowthStdDev = -1 },
		"zero paths":             func(c *domain.Configuration) { c.PricePaths.Paths = 0 },
		"negative fallback vol":  func(c *domain.Configuration) { c.PricePaths.FallbackSigma = -0.1 },
		"negative path years":    func(c *domain.Configuration) { c.PricePaths.Years = -2 },
		"invalid base horizon":   func(c *domain.Configuration) { c.Base.TimeHorizonYears = 0 },
		"invalid base appreciat": func(c *domain.Configuration) { c.Base.HomeAppreciationRate = -150 },
	}

	require.NoError(t, parser.ValidateConfiguration(parser.CreateExampleConfiguration()))

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := parser.CreateExampleConfiguration()
			mutate(config)
			assert.Error(t, parser.ValidateConfiguration(config))
		})
	}
}

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := NewInputParser()
	example := parser.CreateExampleConfiguration()

	for _, name := range []string{"example.yaml", "example.json", "example.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, parser.SaveConfiguration(example, path))

			loaded, err := parser.LoadFromFile(path)
			require.NoError(t, err)

			want, err := json.Marshal(example)
			require.NoError(t, err)
			got, err := json.Marshal(loaded)
			require.NoError(t, err)
			assert.JSONEq(t, string(want), string(got))
		})
	}
}

func TestSaveConfiguration_BadPath(t *testing.T) {
	parser := NewInputParser()
	err := parser.SaveConfiguration(parser.CreateExampleConfiguration(), filepath.Join(t.TempDir(), "missing", "x.yaml"))
	assert.Error(t, err)
}

func TestFormatFromFilename(t *testing.T) {
	assert.Equal(t, "toml", formatFromFilename("a.TOML"))
	assert.Equal(t, "json", formatFromFilename("a.json"))
	assert.Equal(t, "yaml", formatFromFilename("a.yml"))
	assert.Equal(t, "yaml", formatFromFilename("a"))
}
