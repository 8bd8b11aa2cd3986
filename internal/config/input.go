package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rvb/rent-vs-buy/internal/calculation"
	"github.com/rvb/rent-vs-buy/internal/domain"
)

// DefaultName is used when a configuration does not name itself.
const DefaultName = "Rent vs Buy"

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML, JSON or TOML file. The format
// is chosen by extension; anything unrecognised is read as YAML.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data, formatFromFilename(filename))
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Parse decodes, defaults and validates a configuration document.
func (ip *InputParser) Parse(data []byte, format string) (*domain.Configuration, error) {
	var config domain.Configuration
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	ip.ApplyDefaults(&config)

	// Validate the configuration
	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills optional settings left at their zero value. An absent
// tax bracket stays nil so the engine default applies; an explicit zero is
// kept.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if strings.TrimSpace(config.Name) == "" {
		config.Name = DefaultName
	}
	if config.Base.LoanTermYears == 0 {
		config.Base.LoanTermYears = 30
	}
	for i := range config.Scenarios {
		if config.Scenarios[i].Inputs.LoanTermYears == 0 {
			config.Scenarios[i].Inputs.LoanTermYears = 30
		}
	}

	mc := &config.MonteCarlo
	if mc.Runs == 0 {
		mc.Runs = calculation.DefaultMonteCarloRuns
	}
	if mc.AppreciationStdDev == 0 {
		mc.AppreciationStdDev = calculation.DefaultAppreciationStdDev
	}
	if mc.RentGrowthStdDev == 0 {
		mc.RentGrowthStdDev = calculation.DefaultRentGrowthStdDev
	}
	if mc.InvestmentReturnStdDev == 0 {
		mc.InvestmentReturnStdDev = calculation.DefaultInvestmentReturnStdDev
	}

	pp := &config.PricePaths
	if pp.Paths == 0 {
		pp.Paths = calculation.DefaultPricePaths
	}
	if pp.FallbackSigma == 0 {
		pp.FallbackSigma = calculation.DefaultPriceVolatility
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Base.Validate(); err != nil {
		return fmt.Errorf("base scenario: %w", err)
	}

	if config.TaxBracket != nil {
		if err := ValidateTaxBracket(*config.TaxBracket); err != nil {
			return err
		}
	}

	seen := map[string]bool{}
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(i, &scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i+1, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate name %q", i+1, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	if config.Sensitivity != nil {
		if err := ip.validateSensitivity(config.Sensitivity); err != nil {
			return fmt.Errorf("sensitivity validation failed: %w", err)
		}
	}

	if config.Heatmap != nil {
		if err := ip.validateHeatmap(config.Heatmap); err != nil {
			return fmt.Errorf("heatmap validation failed: %w", err)
		}
	}

	if err := ip.validateMonteCarlo(&config.MonteCarlo); err != nil {
		return fmt.Errorf("monte carlo validation failed: %w", err)
	}

	if err := ip.validatePricePaths(&config.PricePaths); err != nil {
		return fmt.Errorf("price path validation failed: %w", err)
	}

	return nil
}

// ValidateTaxBracket accepts a marginal rate in [0, 1). Zero means no tax
// benefit.
func ValidateTaxBracket(bracket float64) error {
	if !(bracket >= 0 && bracket < 1) {
		return fmt.Errorf("tax bracket must be a decimal in [0, 1), got %v", bracket)
	}
	return nil
}

func (ip *InputParser) validateScenario(_ int, scenario *domain.NamedScenario) error {
	if strings.TrimSpace(scenario.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return scenario.Inputs.Validate()
}

func (ip *InputParser) validateSensitivity(deltas *domain.SensitivityDeltas) error {
	if v := deltas.InterestRate; v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("interest rate delta must be a non-negative number, got %v", v)
	}
	for name, v := range map[string]decimal.Decimal{
		"home price": deltas.HomePrice,
		"rent":       deltas.Rent,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%s delta must be a non-negative number, got %s", name, v)
		}
	}
	return nil
}

func (ip *InputParser) validateHeatmap(heatmap *domain.HeatmapSettings) error {
	if len(heatmap.Timelines) == 0 || len(heatmap.DownPayments) == 0 {
		return fmt.Errorf("timelines and down payments must both be non-empty")
	}
	for _, years := range heatmap.Timelines {
		if years <= 0 {
			return fmt.Errorf("timeline years must be positive, got %d", years)
		}
	}
	for _, dp := range heatmap.DownPayments {
		if dp < 0 || dp > 100 {
			return fmt.Errorf("down payment percent must be between 0 and 100, got %v", dp)
		}
	}
	return nil
}

func (ip *InputParser) validateMonteCarlo(mc *domain.MonteCarloSettings) error {
	if mc.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, got %d", mc.Runs)
	}
	if mc.AppreciationStdDev < 0 || mc.RentGrowthStdDev < 0 || mc.InvestmentReturnStdDev < 0 {
		return fmt.Errorf("standard deviations cannot be negative")
	}
	return nil
}

func (ip *InputParser) validatePricePaths(pp *domain.PricePathSettings) error {
	if pp.Paths < 1 {
		return fmt.Errorf("paths must be at least 1, got %d", pp.Paths)
	}
	if pp.Years < 0 {
		return fmt.Errorf("years cannot be negative, got %d", pp.Years)
	}
	if pp.FallbackSigma < 0 {
		return fmt.Errorf("fallback sigma cannot be negative, got %v", pp.FallbackSigma)
	}
	return nil
}

// SaveConfiguration writes config to filename in the format implied by its
// extension.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	var data []byte
	var err error

	switch formatFromFilename(filename) {
	case "toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(config)
		data = buf.Bytes()
	case "json":
		data, err = json.MarshalIndent(config, "", "  ")
	default:
		data, err = yaml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	base := domain.ScenarioInputs{
		HomePrice:             decimal.NewFromInt(450000),
		DownPaymentPercent:    20,
		InterestRate:          6.5,
		LoanTermYears:         30,
		TimeHorizonYears:      10,
		MonthlyRent:           decimal.NewFromInt(2400),
		PropertyTaxRate:       1.1,
		HomeInsuranceAnnual:   decimal.NewFromInt(1800),
		HOAMonthly:            decimal.NewFromInt(150),
		MaintenanceRate:       1,
		RenterInsuranceAnnual: decimal.NewFromInt(180),
		HomeAppreciationRate:  3.5,
		RentGrowthRate:        3,
		InvestmentReturnRate:  7,
	}

	lowDown := base
	lowDown.DownPaymentPercent = 10
	lowDown.InterestRate = 6.75

	cheaperHome := base
	cheaperHome.HomePrice = decimal.NewFromInt(350000)
	cheaperHome.MonthlyRent = decimal.NewFromInt(2000)

	bracket := calculation.DefaultTaxBracket
	return &domain.Configuration{
		Name:       "Example Rent vs Buy",
		TaxBracket: &bracket,
		Base:       base,
		Scenarios: []domain.NamedScenario{
			{Name: "Base", Inputs: base},
			{Name: "10% Down", Inputs: lowDown},
			{Name: "Smaller Home", Inputs: cheaperHome},
		},
		Sensitivity: &domain.SensitivityDeltas{
			InterestRate: 0.5,
			HomePrice:    decimal.NewFromInt(25000),
			Rent:         decimal.NewFromInt(200),
		},
		Heatmap: &domain.HeatmapSettings{
			Timelines:    []int{5, 7, 10, 15, 20},
			DownPayments: []float64{5, 10, 15, 20, 25},
		},
		MonteCarlo: domain.MonteCarloSettings{
			Runs:                   calculation.DefaultMonteCarloRuns,
			AppreciationStdDev:     calculation.DefaultAppreciationStdDev,
			RentGrowthStdDev:       calculation.DefaultRentGrowthStdDev,
			InvestmentReturnStdDev: calculation.DefaultInvestmentReturnStdDev,
		},
		PricePaths: domain.PricePathSettings{
			Paths:         calculation.DefaultPricePaths,
			FallbackSigma: calculation.DefaultPriceVolatility,
		},
	}
}

// formatFromFilename maps an extension to "yaml", "json" or "toml".
func formatFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	default:
		return "yaml"
	}
}
