package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateNetWorthComparison_Length(t *testing.T) {
	inputs := testInputs()
	snapshots := CalculateNetWorthComparison(inputs)

	require.Len(t, snapshots, 120)
	for i, s := range snapshots {
		assert.Equal(t, i+1, s.Month)
	}
}

func TestCalculateNetWorthComparison_Idempotent(t *testing.T) {
	inputs := testInputs()
	first := CalculateNetWorthComparison(inputs)
	second := CalculateNetWorthComparison(inputs)

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].NetWorthDelta.Equal(second[i].NetWorthDelta), "month %d", first[i].Month)
		assert.True(t, first[i].BuyerCashAccount.Equal(second[i].BuyerCashAccount), "month %d", first[i].Month)
	}
}

func TestCalculateNetWorthComparison_PMIFollowsLTV(t *testing.T) {
	inputs := testInputs()
	inputs.DownPaymentPercent = 5
	inputs.HomeAppreciationRate = 4
	inputs.TimeHorizonYears = 15

	snapshots := CalculateNetWorthComparison(inputs)
	threshold := dec(PMILoanToValueThreshold)

	var sawPMI, sawNoPMI bool
	for _, s := range snapshots {
		if s.RemainingBalance.GreaterThan(s.HomeValue.Mul(threshold)) {
			sawPMI = true
			assert.True(t, s.PMI.IsPositive(), "month %d", s.Month)
		} else {
			sawNoPMI = true
			assert.True(t, s.PMI.IsZero(), "month %d", s.Month)
		}
	}
	assert.True(t, sawPMI, "expected PMI early in the loan")
	assert.True(t, sawNoPMI, "expected PMI to drop off")
}

func TestCalculateNetWorthComparison_CashSweep(t *testing.T) {
	inputs := testInputs()
	snapshots := CalculateNetWorthComparison(inputs)

	factor := MonthlyCompoundFactor(inputs.InvestmentReturnRate)
	renter := inputs.DownPaymentAmount()
	buyerCash := inputs.DownPaymentAmount().Add(inputs.HomePrice.Mul(dec(BuyClosingCostRate))).Neg()

	for _, s := range snapshots {
		diff := s.MonthlyRentingCosts.Sub(s.MonthlyBuyingCosts)
		if diff.IsPositive() {
			renter = renter.Add(diff).Mul(factor)
		} else {
			buyerCash = buyerCash.Sub(diff).Mul(factor)
		}
		assertNear(t, renter, s.InvestedDownPayment, 1e-6, "month %d", s.Month)
		assertNear(t, buyerCash, s.BuyerCashAccount, 1e-6, "month %d", s.Month)
		assert.True(t, s.InvestedDownPayment.Equal(s.RenterNetWorth), "month %d", s.Month)
	}
}

func TestCalculateNetWorthComparison_SellingCostsOnFinalMonth(t *testing.T) {
	inputs := testInputs()
	snapshots := CalculateNetWorthComparison(inputs)
	last := len(snapshots) - 1

	for _, s := range snapshots[:last] {
		assert.True(t, s.HomeEquity.Add(s.BuyerCashAccount).Equal(s.BuyerNetWorth), "month %d", s.Month)
	}

	final := snapshots[last]
	expected := final.HomeEquity.Sub(final.HomeValue.Mul(dec(SellClosingCostRate))).Add(final.BuyerCashAccount)
	assert.True(t, expected.Equal(final.BuyerNetWorth), "want %s, got %s", expected, final.BuyerNetWorth)
	assert.True(t, final.BuyerNetWorth.Sub(final.RenterNetWorth).Equal(final.NetWorthDelta))
}

func TestCalculateNetWorthComparison_HorizonBeyondLoanTerm(t *testing.T) {
	inputs := testInputs()
	inputs.LoanTermYears = 5
	inputs.TimeHorizonYears = 8

	snapshots := CalculateNetWorthComparison(inputs)
	require.Len(t, snapshots, 96)

	assert.True(t, snapshots[59].MortgagePayment.IsPositive())
	for _, s := range snapshots[60:] {
		assert.True(t, s.MortgagePayment.IsZero(), "month %d", s.Month)
		assertNear(t, decimal.Zero, s.RemainingBalance, 1e-4, "month %d", s.Month)
	}
}

func TestCalculateNetWorthComparison_AllCash(t *testing.T) {
	inputs := testInputs()
	inputs.DownPaymentPercent = 100

	snapshots := CalculateNetWorthComparison(inputs)
	for _, s := range snapshots {
		assert.True(t, s.MortgagePayment.IsZero())
		assert.True(t, s.InterestPaid.IsZero())
		assert.True(t, s.PMI.IsZero())
		assert.True(t, s.HomeValue.Equal(s.HomeEquity))
	}
}

func TestCalculateNetWorthComparison_GrowthIsMonthlyCompounded(t *testing.T) {
	inputs := testInputs()
	snapshots := CalculateNetWorthComparison(inputs)

	rent := inputs.MonthlyRent.Mul(MonthlyCompoundFactor(inputs.RentGrowthRate))
	home := inputs.HomePrice.Mul(MonthlyCompoundFactor(inputs.HomeAppreciationRate))
	assertNear(t, rent, snapshots[0].MonthlyRent, 1e-9)
	assertNear(t, home, snapshots[0].HomeValue, 1e-9)
}

func TestCalculateNetWorthComparison_CentsSurviveLongHorizons(t *testing.T) {
	inputs := testInputs()
	inputs.MonthlyRent = dec(2200.10)
	inputs.TimeHorizonYears = 30
	inputs.RentGrowthRate = 0

	snapshots := CalculateNetWorthComparison(inputs)
	total := decimal.Zero
	for _, s := range snapshots {
		total = total.Add(s.MonthlyRentingCosts)
	}
	// 360 months of an unchanged rent sum exactly.
	assert.True(t, total.Equal(dec(2200.10).Mul(decimal.NewFromInt(360))), "got %s", total)
}
