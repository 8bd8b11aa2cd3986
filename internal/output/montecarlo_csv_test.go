package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestMonteCarloCSVReport_All(t *testing.T) {
	report := buildTestReport()
	r := &MonteCarloCSVReport{Result: report.MonteCarlo, PricePaths: report.PricePaths}

	dir := filepath.Join(t.TempDir(), "mc")
	written, err := r.GenerateAllCSVReports(dir)
	require.NoError(t, err)
	require.Len(t, written, 3)

	summary := readCSV(t, filepath.Join(dir, "monte_carlo_summary.csv"))
	values := map[string]string{}
	for _, row := range summary[1:] {
		values[row[0]] = row[1]
	}
	assert.Equal(t, "42", values["Seed"])
	assert.Equal(t, "2", values["Valid Runs"])
	assert.Equal(t, "1", values["Excluded Runs"])
	assert.Equal(t, "-15000.00", values["Median Delta"])
	assert.Equal(t, "50.00%", values["Buy Wins"])

	runs := readCSV(t, filepath.Join(dir, "monte_carlo_runs.csv"))
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"0", "2.5000", "3.1000", "5.0000", "150000.00", "140000.00", "10000.00", "30"}, runs[1])
	assert.Equal(t, "", runs[2][7])

	bands := readCSV(t, filepath.Join(dir, "home_price_percentiles.csv"))
	require.Len(t, bands, 4)
	assert.Equal(t, []string{"2", "370000.00", "424360.00", "490000.00"}, bands[3])
}

func TestMonteCarloCSVReport_PricePathsOnly(t *testing.T) {
	r := &MonteCarloCSVReport{PricePaths: buildTestReport().PricePaths}
	written, err := r.GenerateAllCSVReports(t.TempDir())
	require.NoError(t, err)
	require.Len(t, written, 1)
	assert.Equal(t, "home_price_percentiles.csv", filepath.Base(written[0]))
}
