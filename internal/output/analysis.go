package output

import (
	"sort"

	stddec "github.com/shopspring/decimal"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// Choices reported by a Recommendation.
const (
	ChoiceBuy  = "buy"
	ChoiceRent = "rent"
	ChoiceEven = "even"
)

// evenTolerance treats terminal deltas within a dollar as a tie.
var evenTolerance = stddec.NewFromInt(1)

// Recommendation summarizes which path comes out ahead and, when scenarios
// were compared, which overlay leaves the buyer furthest ahead.
type Recommendation struct {
	Choice         string
	FinalDelta     stddec.Decimal
	BreakevenMonth *int

	ScenarioName   string
	ScenarioDelta  stddec.Decimal
	ScenarioChange stddec.Decimal
}

// AnalyzeReport determines the winning path for the base case and ranks any
// scenario overlays by their final net worth delta.
func AnalyzeReport(report *domain.AnalysisReport) Recommendation {
	if report == nil || report.Output == nil {
		return Recommendation{}
	}
	summary := report.Output.Summary
	rec := Recommendation{
		Choice:         choiceFor(summary.FinalNetWorthDelta),
		FinalDelta:     summary.FinalNetWorthDelta,
		BreakevenMonth: summary.BreakevenMonth,
	}

	type ranked struct {
		name  string
		delta stddec.Decimal
	}
	var ranks []ranked
	for _, sc := range report.Scenarios {
		if sc.Output == nil {
			continue
		}
		ranks = append(ranks, ranked{sc.Name, sc.Output.Summary.FinalNetWorthDelta})
	}
	if len(ranks) == 0 {
		return rec
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].delta.GreaterThan(ranks[j].delta) })
	best := ranks[0]
	rec.ScenarioName = best.name
	rec.ScenarioDelta = best.delta
	rec.ScenarioChange = best.delta.Sub(summary.FinalNetWorthDelta)
	return rec
}

func choiceFor(delta stddec.Decimal) string {
	switch {
	case delta.GreaterThan(evenTolerance):
		return ChoiceBuy
	case delta.LessThan(evenTolerance.Neg()):
		return ChoiceRent
	default:
		return ChoiceEven
	}
}

// Headline is a one-sentence verdict for console and HTML output.
func (r Recommendation) Headline() string {
	switch r.Choice {
	case ChoiceBuy:
		return "Buying comes out ahead by " + FormatWholeCurrency(r.FinalDelta)
	case ChoiceRent:
		return "Renting comes out ahead by " + FormatWholeCurrency(r.FinalDelta.Neg())
	case ChoiceEven:
		return "Buying and renting finish roughly even"
	default:
		return ""
	}
}
