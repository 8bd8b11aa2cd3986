package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// ErrInvalidScenario is wrapped by every ScenarioInputs validation failure.
var ErrInvalidScenario = errors.New("invalid scenario inputs")

// MinGrowthRate is the lowest annual rate, in percent, the simulator accepts
// for appreciation, rent growth and investment return.
const MinGrowthRate = -100.0

// ScenarioInputs holds the fully specified parameters for one rent-vs-buy run.
// Money amounts are decimals; rates are whole-number percentages (3.0 means 3%).
type ScenarioInputs struct {
	HomePrice             decimal.Decimal `yaml:"home_price" json:"homePrice" toml:"home_price"`
	DownPaymentPercent    float64         `yaml:"down_payment_percent" json:"downPaymentPercent" toml:"down_payment_percent"`
	InterestRate          float64         `yaml:"interest_rate" json:"interestRate" toml:"interest_rate"`
	LoanTermYears         int             `yaml:"loan_term_years" json:"loanTermYears" toml:"loan_term_years"`
	TimeHorizonYears      int             `yaml:"time_horizon_years" json:"timeHorizonYears" toml:"time_horizon_years"`
	MonthlyRent           decimal.Decimal `yaml:"monthly_rent" json:"monthlyRent" toml:"monthly_rent"`
	PropertyTaxRate       float64         `yaml:"property_tax_rate" json:"propertyTaxRate" toml:"property_tax_rate"`
	HomeInsuranceAnnual   decimal.Decimal `yaml:"home_insurance_annual" json:"homeInsuranceAnnual" toml:"home_insurance_annual"`
	HOAMonthly            decimal.Decimal `yaml:"hoa_monthly" json:"hoaMonthly" toml:"hoa_monthly"`
	MaintenanceRate       float64         `yaml:"maintenance_rate" json:"maintenanceRate" toml:"maintenance_rate"`
	RenterInsuranceAnnual decimal.Decimal `yaml:"renter_insurance_annual" json:"renterInsuranceAnnual" toml:"renter_insurance_annual"`
	HomeAppreciationRate  float64         `yaml:"home_appreciation_rate" json:"homeAppreciationRate" toml:"home_appreciation_rate"`
	RentGrowthRate        float64         `yaml:"rent_growth_rate" json:"rentGrowthRate" toml:"rent_growth_rate"`
	InvestmentReturnRate  float64         `yaml:"investment_return_rate" json:"investmentReturnRate" toml:"investment_return_rate"`
}

// Validate checks every range constraint. It must pass before any simulation starts.
func (s ScenarioInputs) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"down payment percent", s.DownPaymentPercent},
		{"interest rate", s.InterestRate},
		{"property tax rate", s.PropertyTaxRate},
		{"maintenance rate", s.MaintenanceRate},
		{"home appreciation rate", s.HomeAppreciationRate},
		{"rent growth rate", s.RentGrowthRate},
		{"investment return rate", s.InvestmentReturnRate},
	}
	for _, r := range rates {
		if math.IsNaN(r.value) || math.IsInf(r.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidScenario, r.name)
		}
	}

	if !s.HomePrice.IsPositive() {
		return fmt.Errorf("%w: home price must be positive", ErrInvalidScenario)
	}
	if s.DownPaymentPercent < 0 || s.DownPaymentPercent > 100 {
		return fmt.Errorf("%w: down payment percent must be between 0 and 100", ErrInvalidScenario)
	}
	if s.InterestRate < 0 {
		return fmt.Errorf("%w: interest rate cannot be negative", ErrInvalidScenario)
	}
	if s.LoanTermYears <= 0 {
		return fmt.Errorf("%w: loan term years must be positive", ErrInvalidScenario)
	}
	if s.TimeHorizonYears <= 0 {
		return fmt.Errorf("%w: time horizon years must be positive", ErrInvalidScenario)
	}

	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"monthly rent", s.MonthlyRent},
		{"home insurance", s.HomeInsuranceAnnual},
		{"HOA", s.HOAMonthly},
		{"renter insurance", s.RenterInsuranceAnnual},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return fmt.Errorf("%w: %s cannot be negative", ErrInvalidScenario, a.name)
		}
	}

	if s.PropertyTaxRate < 0 {
		return fmt.Errorf("%w: property tax rate cannot be negative", ErrInvalidScenario)
	}
	if s.MaintenanceRate < 0 {
		return fmt.Errorf("%w: maintenance rate cannot be negative", ErrInvalidScenario)
	}
	if s.HomeAppreciationRate < MinGrowthRate {
		return fmt.Errorf("%w: home appreciation rate cannot be less than -100%%", ErrInvalidScenario)
	}
	if s.RentGrowthRate < MinGrowthRate {
		return fmt.Errorf("%w: rent growth rate cannot be less than -100%%", ErrInvalidScenario)
	}
	if s.InvestmentReturnRate < MinGrowthRate {
		return fmt.Errorf("%w: investment return rate cannot be less than -100%%", ErrInvalidScenario)
	}

	return nil
}

// DownPaymentAmount returns the cash paid up front toward the purchase price.
func (s ScenarioInputs) DownPaymentAmount() decimal.Decimal {
	return s.HomePrice.Mul(decimal.NewFromFloat(s.DownPaymentPercent)).Div(decimal.NewFromInt(100))
}

// LoanAmount returns the financed amount, floored at zero.
func (s ScenarioInputs) LoanAmount() decimal.Decimal {
	return decimal.Max(decimal.Zero, s.HomePrice.Sub(s.DownPaymentAmount()))
}

// HorizonMonths is the number of simulated months.
func (s ScenarioInputs) HorizonMonths() int {
	return s.TimeHorizonYears * 12
}
