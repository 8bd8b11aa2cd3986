package calculation

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// CalculateMonthlyPayment returns the fixed annuity payment for a loan.
// annualRatePct is a whole-number percentage.
func CalculateMonthlyPayment(principal decimal.Decimal, annualRatePct float64, termYears int) decimal.Decimal {
	if !principal.IsPositive() || termYears <= 0 {
		return decimal.Zero
	}

	numPayments := termYears * 12
	if annualRatePct == 0 {
		return principal.Div(decimal.NewFromInt(int64(numPayments)))
	}
	return principal.Mul(annuityFactor(annualRatePct, numPayments)).Round(moneyPrecision)
}

// annuityFactor is the payment per unit of principal, r(1+r)^n / ((1+r)^n - 1).
// The power is taken in float64.
func annuityFactor(annualRatePct float64, numPayments int) decimal.Decimal {
	r := annualRatePct / 100 / 12
	growth := math.Pow(1+r, float64(numPayments))
	switch {
	case math.IsInf(growth, 1):
		return decimal.NewFromFloat(r)
	case growth <= 1:
		return one.Div(decimal.NewFromInt(int64(numPayments)))
	}
	return finiteDecimal(r * (growth / (growth - 1)))
}

// GenerateAmortizationSchedule produces exactly termYears*12 rows, even when
// the balance reaches zero early.
func GenerateAmortizationSchedule(principal decimal.Decimal, annualRatePct float64, termYears int) []domain.AmortizationMonth {
	if termYears <= 0 {
		return nil
	}

	payment := CalculateMonthlyPayment(principal, annualRatePct, termYears)
	rate := monthlyRate(annualRatePct)
	numPayments := termYears * 12
	balance := decimal.Max(decimal.Zero, principal)

	schedule := make([]domain.AmortizationMonth, 0, numPayments)
	for month := 1; month <= numPayments; month++ {
		interest := balance.Mul(rate).Round(moneyPrecision)
		principalPaid := decimal.Max(decimal.Zero, payment.Sub(interest))
		balance = decimal.Max(decimal.Zero, balance.Sub(principalPaid))

		schedule = append(schedule, domain.AmortizationMonth{
			Month:            month,
			Payment:          payment,
			PrincipalPaid:    principalPaid,
			InterestPaid:     interest,
			RemainingBalance: balance,
		})
	}

	return schedule
}
