package output

import (
	"fmt"

	"github.com/rvb/rent-vs-buy/internal/calculation"
	"github.com/rvb/rent-vs-buy/internal/domain"
	"github.com/rvb/rent-vs-buy/pkg/decimal"
)

// DefaultAssumptions lists the fixed modeling rules rendered in detailed outputs.
var DefaultAssumptions = []string{
	fmt.Sprintf("Buyer closing costs: %s of purchase price, paid up front", decimal.Rate(calculation.BuyClosingCostRate)),
	fmt.Sprintf("Selling costs: %s of home value, charged in the final month", decimal.Rate(calculation.SellClosingCostRate)),
	fmt.Sprintf("PMI: %s of the original loan per year while loan-to-value exceeds %s",
		decimal.Rate(calculation.PMIAnnualRate), decimal.Rate(calculation.PMILoanToValueThreshold)),
	"Home value, rent and owner costs step up once per year",
	"Monthly savings of the cheaper path are invested at the investment return rate",
}

// GenerateAssumptions combines the fixed rules with the rates of one scenario.
func GenerateAssumptions(inputs domain.ScenarioInputs) []string {
	out := []string{
		fmt.Sprintf("Home appreciation: %s annually", FormatPercentage(inputs.HomeAppreciationRate)),
		fmt.Sprintf("Rent growth: %s annually", FormatPercentage(inputs.RentGrowthRate)),
		fmt.Sprintf("Investment return: %s annually", FormatPercentage(inputs.InvestmentReturnRate)),
		fmt.Sprintf("Mortgage: %s over %d years", FormatPercentage(inputs.InterestRate), inputs.LoanTermYears),
	}
	return append(out, DefaultAssumptions...)
}
