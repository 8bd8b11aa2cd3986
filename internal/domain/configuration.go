package domain

// Configuration is the document loaded from a scenario file. Only Base is
// required; every other block switches on an optional analysis. A nil
// TaxBracket uses the engine default; zero is honoured as no tax benefit.
type Configuration struct {
	Name        string             `yaml:"name" json:"name" toml:"name"`
	Location    string             `yaml:"location,omitempty" json:"location,omitempty" toml:"location,omitempty"`
	TaxBracket  *float64           `yaml:"tax_bracket,omitempty" json:"tax_bracket,omitempty" toml:"tax_bracket,omitempty"`
	Base        ScenarioInputs     `yaml:"base" json:"base" toml:"base"`
	Scenarios   []NamedScenario    `yaml:"scenarios,omitempty" json:"scenarios,omitempty" toml:"scenarios,omitempty"`
	Sensitivity *SensitivityDeltas `yaml:"sensitivity,omitempty" json:"sensitivity,omitempty" toml:"sensitivity,omitempty"`
	Heatmap     *HeatmapSettings   `yaml:"heatmap,omitempty" json:"heatmap,omitempty" toml:"heatmap,omitempty"`
	MonteCarlo  MonteCarloSettings `yaml:"monte_carlo" json:"monte_carlo" toml:"monte_carlo"`
	PricePaths  PricePathSettings  `yaml:"price_paths" json:"price_paths" toml:"price_paths"`
}

// HeatmapSettings are the two axes of the break-even surface.
type HeatmapSettings struct {
	Timelines    []int     `yaml:"timelines" json:"timelines" toml:"timelines"`
	DownPayments []float64 `yaml:"down_payments" json:"down_payments" toml:"down_payments"`
}

// MonteCarloSettings configures the full-scenario ensemble. Std devs are in
// percentage points.
type MonteCarloSettings struct {
	Runs                   int     `yaml:"runs" json:"runs" toml:"runs"`
	Seed                   int64   `yaml:"seed,omitempty" json:"seed,omitempty" toml:"seed,omitempty"`
	AppreciationStdDev     float64 `yaml:"appreciation_std_dev" json:"appreciation_std_dev" toml:"appreciation_std_dev"`
	RentGrowthStdDev       float64 `yaml:"rent_growth_std_dev" json:"rent_growth_std_dev" toml:"rent_growth_std_dev"`
	InvestmentReturnStdDev float64 `yaml:"investment_return_std_dev" json:"investment_return_std_dev" toml:"investment_return_std_dev"`
}

// PricePathSettings configures the GBM home price generator. FallbackSigma is
// a decimal (0.15 = 15%).
type PricePathSettings struct {
	Paths         int     `yaml:"paths" json:"paths" toml:"paths"`
	Years         int     `yaml:"years,omitempty" json:"years,omitempty" toml:"years,omitempty"`
	Seed          int64   `yaml:"seed,omitempty" json:"seed,omitempty" toml:"seed,omitempty"`
	FallbackSigma float64 `yaml:"fallback_sigma" json:"fallback_sigma" toml:"fallback_sigma"`
}
