package calculation

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// Percentile returns the p-th percentile (0-100) of values using linear
// interpolation between closest ranks. values must be sorted ascending and
// non-empty.
func Percentile(sorted []decimal.Decimal, p float64) decimal.Decimal {
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := decimal.NewFromFloat(rank - float64(lower))
	return sorted[lower].Add(sorted[upper].Sub(sorted[lower]).Mul(frac))
}

// SummarizePercentiles returns the 10th/50th/90th percentiles of values.
// The input slice is not modified; an empty slice yields the zero summary.
func SummarizePercentiles(values []decimal.Decimal) domain.PercentileSummary {
	if len(values) == 0 {
		return domain.PercentileSummary{}
	}
	sorted := append([]decimal.Decimal(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })

	return domain.PercentileSummary{
		Percentile10: Percentile(sorted, 10),
		Percentile50: Percentile(sorted, 50),
		Percentile90: Percentile(sorted, 90),
	}
}
