package growth

import (
	"log/slog"
)

// DefaultNeighbors is how many similar locations are averaged when a
// location has no usable rates of its own.
const DefaultNeighbors = 10

// TableProvider serves lookups from a LocationDataset.
type TableProvider struct {
	Dataset   *LocationDataset
	Neighbors int
	Logger    *slog.Logger
}

// NewTableProvider creates a provider over ds with default settings.
func NewTableProvider(ds *LocationDataset) *TableProvider {
	return &TableProvider{
		Dataset:   ds,
		Neighbors: DefaultNeighbors,
		Logger:    slog.Default(),
	}
}

// GrowthRates returns the location's own rates when usable. A known location
// with missing rates gets the average of its nearest neighbours that have
// rates. Unknown locations, and everything else, get the fallbacks.
func (p *TableProvider) GrowthRates(location string, fallbackHome, fallbackRent float64) (float64, float64) {
	if p.Dataset == nil {
		return fallbackHome, fallbackRent
	}

	record, err := p.Dataset.Lookup(location)
	if err != nil {
		p.logger().Debug("location not in dataset, using fallback growth", "location", location)
		return fallbackHome, fallbackRent
	}
	if record.HasGrowth() {
		return record.HomeGrowth, record.RentGrowth
	}

	k := p.Neighbors
	if k <= 0 {
		k = DefaultNeighbors
	}
	neighbors, err := p.Dataset.Nearest(location, k)
	if err != nil {
		p.logger().Warn("neighbour search failed, using fallback growth", "location", location, "err", err)
		return fallbackHome, fallbackRent
	}

	var home, rent float64
	var used int
	for _, n := range neighbors {
		if !n.Record.HasGrowth() {
			continue
		}
		home += n.Record.HomeGrowth
		rent += n.Record.RentGrowth
		used++
	}
	if used == 0 {
		p.logger().Debug("no neighbours with growth data, using fallback growth", "location", location)
		return fallbackHome, fallbackRent
	}

	p.logger().Debug("using neighbour growth average", "location", location, "neighbours", used)
	return home / float64(used), rent / float64(used)
}

// HomeVolatility returns the location's five-year volatility, or fallbackSigma
// when the location or its value is missing.
func (p *TableProvider) HomeVolatility(location string, fallbackSigma float64) float64 {
	if p.Dataset == nil {
		return fallbackSigma
	}
	record, err := p.Dataset.Lookup(location)
	if err != nil || !isFinite(record.Volatility) || record.Volatility < 0 {
		return fallbackSigma
	}
	return record.Volatility
}

func (p *TableProvider) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
