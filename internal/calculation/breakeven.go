package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// crossoverTolerance treats cumulative totals within one cent as equal.
var crossoverTolerance = decimal.New(1, -2)

// CalculateCostCrossover finds the first point where cumulative buying and
// renting costs meet. Within a month the gap is interpolated linearly. A tie
// in the first month is ignored as trivial. Returns nil when the curves never
// cross.
func CalculateCostCrossover(points []domain.CumulativeCostPoint) *domain.CostCrossover {
	prevDiff, prevBuy := decimal.Zero, decimal.Zero
	for i, p := range points {
		currDiff := p.CumulativeBuying.Sub(p.CumulativeRenting)

		if currDiff.Abs().LessThan(crossoverTolerance) {
			if i == 0 {
				prevDiff, prevBuy = currDiff, p.CumulativeBuying
				continue
			}
			return &domain.CostCrossover{
				Month:           p.Month,
				FractionalMonth: float64(p.Month),
				CumulativeCost:  p.CumulativeBuying,
				BuyingCheaper:   prevDiff.IsPositive(),
			}
		}

		if i > 0 && prevDiff.Sign()*currDiff.Sign() < 0 {
			t := decimal.NewFromFloat(0.5)
			if denom := currDiff.Sub(prevDiff); !denom.IsZero() {
				t = decimal.Min(one, decimal.Max(decimal.Zero, prevDiff.Neg().Div(denom)))
			}
			return &domain.CostCrossover{
				Month:           p.Month,
				FractionalMonth: float64(p.Month-1) + t.InexactFloat64(),
				CumulativeCost:  prevBuy.Add(p.CumulativeBuying.Sub(prevBuy).Mul(t)),
				BuyingCheaper:   currDiff.IsNegative(),
			}
		}

		prevDiff, prevBuy = currDiff, p.CumulativeBuying
	}
	return nil
}
