package calculation

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// testInputs is a typical 20%-down purchase compared over ten years.
func testInputs() domain.ScenarioInputs {
	return domain.ScenarioInputs{
		HomePrice:             decimal.NewFromInt(400000),
		DownPaymentPercent:    20,
		InterestRate:          6.5,
		LoanTermYears:         30,
		TimeHorizonYears:      10,
		MonthlyRent:           decimal.NewFromInt(2200),
		PropertyTaxRate:       1.1,
		HomeInsuranceAnnual:   decimal.NewFromInt(1500),
		HOAMonthly:            decimal.Zero,
		MaintenanceRate:       1,
		RenterInsuranceAnnual: decimal.NewFromInt(180),
		HomeAppreciationRate:  3,
		RentGrowthRate:        3,
		InvestmentReturnRate:  6,
	}
}

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func snapshotsWithDeltas(deltas ...float64) []domain.MonthlySnapshot {
	snapshots := make([]domain.MonthlySnapshot, len(deltas))
	for i, d := range deltas {
		snapshots[i] = domain.MonthlySnapshot{Month: i + 1, NetWorthDelta: dec(d)}
	}
	return snapshots
}

// assertNear fails when got is more than tol away from want.
func assertNear(t *testing.T, want, got decimal.Decimal, tol float64, msgAndArgs ...interface{}) bool {
	t.Helper()
	if got.Sub(want).Abs().LessThanOrEqual(dec(tol)) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("want %s, got %s (tolerance %v)", want, got, tol), msgAndArgs...)
}
