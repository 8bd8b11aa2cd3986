package growth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rvb/rent-vs-buy/internal/domain"
)

// ErrLocationNotFound is returned by dataset lookups for unknown keys.
var ErrLocationNotFound = errors.New("location not found")

// Dataset columns with fixed meaning. Every other column except the
// descriptive ones is treated as a numeric similarity feature.
const (
	columnZIP        = "zip"
	columnHomeGrowth = "home_growth"
	columnRentGrowth = "rent_growth"
	columnVolatility = "home_vol_5y"
)

var descriptiveColumns = map[string]bool{"state": true, "city": true}

// LocationRecord is one row of the dataset. Missing values are NaN.
type LocationRecord struct {
	ZIP        string
	HomeGrowth float64 // percent
	RentGrowth float64 // percent
	Volatility float64 // decimal sigma
}

// HasGrowth reports whether both growth rates are usable: present, finite
// and no lower than the simulator's floor.
func (r LocationRecord) HasGrowth() bool {
	return usableRate(r.HomeGrowth) && usableRate(r.RentGrowth)
}

func usableRate(v float64) bool {
	return isFinite(v) && v >= domain.MinGrowthRate
}

// LocationDataset is an in-memory table of locations loaded once and shared
// read-only. Feature vectors are standardised at load time so distances are
// comparable across columns.
type LocationDataset struct {
	records      []LocationRecord
	features     [][]float64
	featureNames []string
	index        map[string]int
}

// LoadLocationDataset reads a dataset CSV from disk.
func LoadLocationDataset(path string) (*LocationDataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open location dataset %s: %w", path, err)
	}
	defer f.Close()

	ds, err := ParseLocationDataset(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse location dataset %s: %w", path, err)
	}
	return ds, nil
}

// ParseLocationDataset reads a dataset CSV with a header row.
func ParseLocationDataset(r io.Reader) (*LocationDataset, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := map[string]int{}
	var featureCols []int
	var featureNames []string
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case columnZIP, columnHomeGrowth, columnRentGrowth, columnVolatility:
			cols[name] = i
		default:
			if !descriptiveColumns[name] {
				featureCols = append(featureCols, i)
				featureNames = append(featureNames, name)
			}
		}
	}
	if _, ok := cols[columnZIP]; !ok {
		return nil, fmt.Errorf("missing required column %q", columnZIP)
	}

	ds := &LocationDataset{
		featureNames: featureNames,
		index:        map[string]int{},
	}

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		zip := NormalizeZIP(row[cols[columnZIP]])
		if zip == "" {
			return nil, fmt.Errorf("line %d: empty zip", line)
		}
		if _, dup := ds.index[zip]; dup {
			return nil, fmt.Errorf("line %d: duplicate zip %s", line, zip)
		}

		record := LocationRecord{
			ZIP:        zip,
			HomeGrowth: cell(row, cols, columnHomeGrowth),
			RentGrowth: cell(row, cols, columnRentGrowth),
			Volatility: cell(row, cols, columnVolatility),
		}
		features := make([]float64, len(featureCols))
		for j, c := range featureCols {
			features[j] = parseFloat(row[c])
		}

		ds.index[zip] = len(ds.records)
		ds.records = append(ds.records, record)
		ds.features = append(ds.features, features)
	}

	ds.standardize()
	return ds, nil
}

// Len is the number of locations.
func (ds *LocationDataset) Len() int { return len(ds.records) }

// FeatureNames lists the similarity features in column order.
func (ds *LocationDataset) FeatureNames() []string {
	return append([]string(nil), ds.featureNames...)
}

// Lookup returns the record for zip.
func (ds *LocationDataset) Lookup(zip string) (LocationRecord, error) {
	i, ok := ds.index[NormalizeZIP(zip)]
	if !ok {
		return LocationRecord{}, fmt.Errorf("%w: %s", ErrLocationNotFound, zip)
	}
	return ds.records[i], nil
}

// Neighbor is a location and its distance from a query location.
type Neighbor struct {
	Record   LocationRecord
	Distance float64
}

// Nearest returns up to k other locations ordered by Euclidean distance in
// standardised feature space. Ties keep dataset order.
func (ds *LocationDataset) Nearest(zip string, k int) ([]Neighbor, error) {
	q, ok := ds.index[NormalizeZIP(zip)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocationNotFound, zip)
	}
	if k <= 0 {
		return nil, nil
	}

	neighbors := make([]Neighbor, 0, len(ds.records)-1)
	for i, rec := range ds.records {
		if i == q {
			continue
		}
		neighbors = append(neighbors, Neighbor{Record: rec, Distance: euclidean(ds.features[q], ds.features[i])})
	}
	sort.SliceStable(neighbors, func(a, b int) bool {
		return neighbors[a].Distance < neighbors[b].Distance
	})
	if len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors, nil
}

// standardize fills missing features with the column median, then rescales
// every column to zero mean and unit variance. Constant columns become zero.
func (ds *LocationDataset) standardize() {
	if len(ds.features) == 0 {
		return
	}
	for j := range ds.featureNames {
		present := make([]float64, 0, len(ds.features))
		for _, f := range ds.features {
			if isFinite(f[j]) {
				present = append(present, f[j])
			}
		}
		fill := median(present)

		var sum float64
		for _, f := range ds.features {
			if !isFinite(f[j]) {
				f[j] = fill
			}
			sum += f[j]
		}
		mean := sum / float64(len(ds.features))

		var variance float64
		for _, f := range ds.features {
			variance += (f[j] - mean) * (f[j] - mean)
		}
		std := math.Sqrt(variance / float64(len(ds.features)))

		for _, f := range ds.features {
			if std == 0 {
				f[j] = 0
				continue
			}
			f[j] = (f[j] - mean) / std
		}
	}
}

// NormalizeZIP trims whitespace and left-pads purely numeric keys to five
// digits, so "2139" and "02139" name the same location.
func NormalizeZIP(zip string) string {
	zip = strings.TrimSpace(zip)
	if zip == "" {
		return ""
	}
	if n, err := strconv.Atoi(zip); err == nil && n >= 0 && len(zip) < 5 {
		return fmt.Sprintf("%05d", n)
	}
	return zip
}

func cell(row []string, cols map[string]int, name string) float64 {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return math.NaN()
	}
	return parseFloat(row[i])
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
