package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":      FormatCurrency,
	"whole":     FormatWholeCurrency,
	"pct":       FormatPercentage,
	"breakeven": FormatBreakeven,
	"month":     optionalMonth,
	"signed":    signed,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.AnalysisReport) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.AnalysisReport
		Recommendation Recommendation
		Assumptions    []string
		YearEnd        [][]string
		PricePaths     *domain.HomePricePathSummary
	}{
		AnalysisReport: report,
		Recommendation: AnalyzeReport(report),
		Assumptions:    GenerateAssumptions(report.Output.Inputs),
		YearEnd:        yearEndRows(report.Output.MonthlySnapshots),
		PricePaths:     pricePaths(report),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
