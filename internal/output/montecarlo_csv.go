package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// MonteCarloCSVReport generates CSV exports for Monte Carlo ensembles and
// home price path bands.
type MonteCarloCSVReport struct {
	Result     *domain.MonteCarloResult
	PricePaths *domain.HomePricePathSummary
}

func writeCSVFile(outputPath string, header []string, rows [][]string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write data row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// GenerateSummaryCSV creates a summary CSV with aggregate statistics
func (m *MonteCarloCSVReport) GenerateSummaryCSV(outputPath string) error {
	r := m.Result
	rows := [][]string{
		{"Ensemble ID", r.EnsembleID, "Identifier of this ensemble"},
		{"Seed", strconv.FormatInt(r.Seed, 10), "Master seed; rerun with it to reproduce"},
		{"Requested Runs", strconv.Itoa(r.Requested), "Simulations requested"},
		{"Valid Runs", strconv.Itoa(len(r.Runs)), "Simulations with finite results"},
		{"Excluded Runs", strconv.Itoa(r.Excluded), "Simulations dropped for non-finite results"},
		{"10th Percentile Delta", money(r.Summary.Percentile10), "Buyer minus renter net worth, worst 10%"},
		{"Median Delta", money(r.Summary.Percentile50), "Buyer minus renter net worth, typical run"},
		{"90th Percentile Delta", money(r.Summary.Percentile90), "Buyer minus renter net worth, best 10%"},
		{"Buy Wins", fmt.Sprintf("%.2f%%", buyWinRate(r.Runs)), "Share of runs where buying finishes ahead"},
	}
	return writeCSVFile(outputPath, []string{"Metric", "Value", "Description"}, rows)
}

// GenerateDetailedCSV creates a detailed CSV with individual simulation results
func (m *MonteCarloCSVReport) GenerateDetailedCSV(outputPath string) error {
	header := []string{
		"Run",
		"HomeAppreciationRate",
		"RentGrowthRate",
		"InvestmentReturnRate",
		"FinalBuyerNetWorth",
		"FinalRenterNetWorth",
		"FinalNetWorthDelta",
		"BreakevenMonth",
	}
	rows := make([][]string, 0, len(m.Result.Runs))
	for _, run := range m.Result.Runs {
		rows = append(rows, []string{
			strconv.Itoa(run.Run),
			strconv.FormatFloat(run.HomeAppreciationRate, 'f', 4, 64),
			strconv.FormatFloat(run.RentGrowthRate, 'f', 4, 64),
			strconv.FormatFloat(run.InvestmentReturnRate, 'f', 4, 64),
			money(run.FinalBuyerNetWorth),
			money(run.FinalRenterNetWorth),
			money(run.FinalDelta()),
			optionalInt(run.BreakevenMonth),
		})
	}
	return writeCSVFile(outputPath, header, rows)
}

// GeneratePercentileCSV creates a CSV with the per-year home price bands.
func (m *MonteCarloCSVReport) GeneratePercentileCSV(outputPath string) error {
	p := m.PricePaths
	rows := make([][]string, 0, len(p.Years))
	for i, y := range p.Years {
		rows = append(rows, []string{strconv.Itoa(y), money(p.P10[i]), money(p.P50[i]), money(p.P90[i])})
	}
	return writeCSVFile(outputPath, []string{"Year", "P10", "P50", "P90"}, rows)
}

// GenerateAllCSVReports creates every available CSV report in a single
// directory and returns the paths written.
func (m *MonteCarloCSVReport) GenerateAllCSVReports(outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	if m.Result != nil {
		summaryPath := filepath.Join(outputDir, "monte_carlo_summary.csv")
		if err := m.GenerateSummaryCSV(summaryPath); err != nil {
			return written, fmt.Errorf("failed to generate summary CSV: %w", err)
		}
		detailedPath := filepath.Join(outputDir, "monte_carlo_runs.csv")
		if err := m.GenerateDetailedCSV(detailedPath); err != nil {
			return written, fmt.Errorf("failed to generate detailed CSV: %w", err)
		}
		written = append(written, summaryPath, detailedPath)
	}
	if m.PricePaths != nil {
		percentilePath := filepath.Join(outputDir, "home_price_percentiles.csv")
		if err := m.GeneratePercentileCSV(percentilePath); err != nil {
			return written, fmt.Errorf("failed to generate percentile CSV: %w", err)
		}
		written = append(written, percentilePath)
	}
	return written, nil
}

func buyWinRate(runs []domain.MonteCarloRun) float64 {
	if len(runs) == 0 {
		return 0
	}
	wins := 0
	for _, r := range runs {
		if r.FinalDelta().IsPositive() {
			wins++
		}
	}
	return float64(wins) / float64(len(runs)) * 100
}
