package calculation

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

const (
	// PMIAnnualRate is charged on the original loan amount.
	PMIAnnualRate = 0.005
	// PMILoanToValueThreshold is the LTV above which PMI applies.
	PMILoanToValueThreshold = 0.80
	// BuyClosingCostRate is paid up front as a share of the purchase price.
	BuyClosingCostRate = 0.03
	// SellClosingCostRate is charged against home value on the final month.
	SellClosingCostRate = 0.08
)

var (
	pmiAnnualRate       = decimal.NewFromFloat(PMIAnnualRate)
	pmiLTVThreshold     = decimal.NewFromFloat(PMILoanToValueThreshold)
	buyClosingCostRate  = decimal.NewFromFloat(BuyClosingCostRate)
	sellClosingCostRate = decimal.NewFromFloat(SellClosingCostRate)
)

// AnnualStepGrowth grows base once per completed year of the horizon:
// months 1-12 use the base value, months 13-24 one year of growth, and so on.
// The standalone renting-cost breakdown uses this model.
func AnnualStepGrowth(base decimal.Decimal, annualRatePct float64, month int) decimal.Decimal {
	years := (month - 1) / 12
	if years <= 0 {
		return base
	}
	factor := finiteDecimal(math.Pow(1+annualRatePct/100, float64(years)))
	return base.Mul(factor).Round(moneyPrecision)
}

// MonthlyCompoundFactor is the per-month multiplier the projection applies to
// home value and rent (annual rate divided by twelve, compounded monthly).
func MonthlyCompoundFactor(annualRatePct float64) decimal.Decimal {
	return one.Add(monthlyRate(annualRatePct))
}

// CalculatePMI returns the monthly PMI premium. It is based on the original
// loan amount, not the current balance.
func CalculatePMI(loanAmount decimal.Decimal) decimal.Decimal {
	return loanAmount.Mul(pmiAnnualRate).Div(twelve)
}

// HasPMI reports whether the loan-to-value ratio exceeds the PMI threshold.
// A non-positive home value skips the ratio test.
func HasPMI(balance, homeValue decimal.Decimal) bool {
	if !homeValue.IsPositive() {
		return false
	}
	return balance.GreaterThan(homeValue.Mul(pmiLTVThreshold))
}

// PropertyTaxMonthly is one month of property tax on the given home value.
func PropertyTaxMonthly(homeValue decimal.Decimal, taxRatePct float64) decimal.Decimal {
	return homeValue.Mul(pctOf(taxRatePct)).Div(twelve)
}

// MaintenanceMonthly is one month of upkeep on the given home value.
func MaintenanceMonthly(homeValue decimal.Decimal, maintenanceRatePct float64) decimal.Decimal {
	return homeValue.Mul(pctOf(maintenanceRatePct)).Div(twelve)
}

// CalculateBuyingCosts returns the first-month ownership costs, valued at the
// purchase price.
func CalculateBuyingCosts(inputs domain.ScenarioInputs) domain.MonthlyCosts {
	loanAmount := inputs.LoanAmount()

	costs := domain.MonthlyCosts{
		Mortgage:    CalculateMonthlyPayment(loanAmount, inputs.InterestRate, inputs.LoanTermYears),
		PropertyTax: PropertyTaxMonthly(inputs.HomePrice, inputs.PropertyTaxRate),
		Insurance:   inputs.HomeInsuranceAnnual.Div(twelve),
		HOA:         inputs.HOAMonthly,
		Maintenance: MaintenanceMonthly(inputs.HomePrice, inputs.MaintenanceRate),
		PMI:         decimal.Zero,
	}
	if HasPMI(loanAmount, inputs.HomePrice) {
		costs.PMI = CalculatePMI(loanAmount)
	}
	costs.Total = decimal.Sum(costs.Mortgage, costs.PropertyTax, costs.Insurance, costs.HOA, costs.Maintenance, costs.PMI)

	return costs
}

// CalculateRentingCosts returns the rental costs for a 1-based month using
// annual step rent growth.
func CalculateRentingCosts(inputs domain.ScenarioInputs, month int) (domain.RentingCosts, error) {
	if month < 1 {
		return domain.RentingCosts{}, fmt.Errorf("month must be >= 1, got %d", month)
	}

	rent := AnnualStepGrowth(inputs.MonthlyRent, inputs.RentGrowthRate, month)
	insurance := inputs.RenterInsuranceAnnual.Div(twelve)

	return domain.RentingCosts{
		Rent:      rent,
		Insurance: insurance,
		Total:     rent.Add(insurance),
	}, nil
}
