// Package growth supplies location-specific growth rates and home price
// volatility to the simulator. Providers never fail: every lookup problem
// degrades to the caller's fallback values.
package growth

import (
	"github.com/rvb/rent-vs-buy/internal/domain"
)

// GrowthProvider returns annual home appreciation and rent growth, in
// whole-number percent, for a location key.
type GrowthProvider interface {
	GrowthRates(location string, fallbackHome, fallbackRent float64) (home, rent float64)
}

// VolatilityProvider returns an annual home price volatility as a decimal.
type VolatilityProvider interface {
	HomeVolatility(location string, fallbackSigma float64) float64
}

// Provider is implemented by sources that serve both lookups.
type Provider interface {
	GrowthProvider
	VolatilityProvider
}

// StaticProvider always answers with the fallbacks.
type StaticProvider struct{}

func (StaticProvider) GrowthRates(_ string, fallbackHome, fallbackRent float64) (float64, float64) {
	return fallbackHome, fallbackRent
}

func (StaticProvider) HomeVolatility(_ string, fallbackSigma float64) float64 {
	return fallbackSigma
}

// ApplyGrowthRates returns inputs with appreciation and rent growth replaced
// by the provider's values for location. The inputs' own rates are the
// fallback. An empty location leaves inputs unchanged.
func ApplyGrowthRates(provider GrowthProvider, location string, inputs domain.ScenarioInputs) domain.ScenarioInputs {
	if provider == nil || location == "" {
		return inputs
	}
	inputs.HomeAppreciationRate, inputs.RentGrowthRate = provider.GrowthRates(location, inputs.HomeAppreciationRate, inputs.RentGrowthRate)
	return inputs
}
