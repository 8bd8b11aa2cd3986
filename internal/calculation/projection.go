package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// projectionState is the balance carried from one month to the next.
type projectionState struct {
	homeValue        decimal.Decimal
	remainingBalance decimal.Decimal
	rent             decimal.Decimal
	buyerCashAccount decimal.Decimal
	renterPortfolio  decimal.Decimal
}

// CalculateNetWorthComparison runs the month-by-month buy vs rent simulation.
// Inputs are expected to be validated; each snapshot depends only on the
// previous month's balances and the static inputs.
func CalculateNetWorthComparison(inputs domain.ScenarioInputs) []domain.MonthlySnapshot {
	downPayment := inputs.DownPaymentAmount()
	loanAmount := inputs.LoanAmount()
	schedule := GenerateAmortizationSchedule(loanAmount, inputs.InterestRate, inputs.LoanTermYears)
	horizonMonths := inputs.HorizonMonths()

	monthlyInterestRate := monthlyRate(inputs.InterestRate)
	investmentFactor := MonthlyCompoundFactor(inputs.InvestmentReturnRate)
	appreciationFactor := MonthlyCompoundFactor(inputs.HomeAppreciationRate)
	rentGrowthFactor := MonthlyCompoundFactor(inputs.RentGrowthRate)

	insurance := inputs.HomeInsuranceAnnual.Div(twelve)
	pmi := CalculatePMI(loanAmount)

	// Both parties start with the same net capital: the buyer's equity equals
	// the down payment the renter invests instead.
	state := projectionState{
		homeValue:        inputs.HomePrice,
		remainingBalance: loanAmount,
		rent:             inputs.MonthlyRent,
		buyerCashAccount: downPayment.Add(inputs.HomePrice.Mul(buyClosingCostRate)).Neg(),
		renterPortfolio:  downPayment,
	}

	snapshots := make([]domain.MonthlySnapshot, 0, horizonMonths)
	for month := 1; month <= horizonMonths; month++ {
		state.homeValue = state.homeValue.Mul(appreciationFactor).Round(moneyPrecision)
		state.rent = state.rent.Mul(rentGrowthFactor).Round(moneyPrecision)

		payment := decimal.Zero
		if month <= len(schedule) {
			payment = schedule[month-1].Payment
		}
		interest := state.remainingBalance.Mul(monthlyInterestRate).Round(moneyPrecision)
		principal := decimal.Max(decimal.Zero, payment.Sub(interest))
		state.remainingBalance = decimal.Max(decimal.Zero, state.remainingBalance.Sub(principal))
		equity := state.homeValue.Sub(state.remainingBalance)

		propertyTax := PropertyTaxMonthly(state.homeValue, inputs.PropertyTaxRate)
		maintenance := MaintenanceMonthly(state.homeValue, inputs.MaintenanceRate)
		monthPMI := decimal.Zero
		if HasPMI(state.remainingBalance, state.homeValue) {
			monthPMI = pmi
		}

		// Principal builds equity, so only the unrecoverable costs count.
		ownerCost := decimal.Sum(interest, propertyTax, insurance, maintenance, inputs.HOAMonthly, monthPMI)
		renterCost := state.rent

		// Whoever pays less this month invests the difference.
		diff := renterCost.Sub(ownerCost)
		if diff.IsPositive() {
			state.renterPortfolio = state.renterPortfolio.Add(diff).Mul(investmentFactor).Round(moneyPrecision)
		} else {
			state.buyerCashAccount = state.buyerCashAccount.Sub(diff).Mul(investmentFactor).Round(moneyPrecision)
		}

		sellingCosts := decimal.Zero
		if month == horizonMonths {
			sellingCosts = state.homeValue.Mul(sellClosingCostRate)
		}

		buyerNetWorth := equity.Sub(sellingCosts).Add(state.buyerCashAccount)
		renterNetWorth := state.renterPortfolio

		snapshots = append(snapshots, domain.MonthlySnapshot{
			Month:               month,
			MortgagePayment:     payment,
			PrincipalPaid:       principal,
			InterestPaid:        interest,
			RemainingBalance:    state.remainingBalance,
			HomeValue:           state.homeValue,
			HomeEquity:          equity,
			MonthlyBuyingCosts:  ownerCost,
			MonthlyRent:         state.rent,
			MonthlyRentingCosts: renterCost,
			InvestedDownPayment: state.renterPortfolio,
			BuyerNetWorth:       buyerNetWorth,
			RenterNetWorth:      renterNetWorth,
			NetWorthDelta:       buyerNetWorth.Sub(renterNetWorth),
			PropertyTax:         propertyTax,
			Insurance:           insurance,
			Maintenance:         maintenance,
			HOA:                 inputs.HOAMonthly,
			PMI:                 monthPMI,
			BuyerCashAccount:    state.buyerCashAccount,
		})
	}

	return snapshots
}
