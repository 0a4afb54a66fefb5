// Package marketplace derives pricing signals and market rollups from
// competitor listings. All functions are pure over the collections
// they receive; nothing here fetches or caches.
package marketplace

import (
	"math"

	"github.com/guarzo/merchforecast/internal/model"
	"github.com/guarzo/merchforecast/internal/pricing"
)

// Pricing policy knobs.
const (
	// DefaultMarketDiscountMult undercuts the market average by 10%.
	DefaultMarketDiscountMult = 0.9

	// DefaultPriceFloorMult keeps the suggested price at or above
	// 2.5x production cost, a minimum viable margin independent of
	// market conditions.
	DefaultPriceFloorMult = 2.5
)

// Pricer turns an observed market average into a suggested sell price.
type Pricer struct {
	Pricing            pricing.Model
	MarketDiscountMult float64
	PriceFloorMult     float64
}

// DefaultPricer returns a pricer with stock policy values.
func DefaultPricer() Pricer {
	return Pricer{
		Pricing:            pricing.Default(),
		MarketDiscountMult: DefaultMarketDiscountMult,
		PriceFloorMult:     DefaultPriceFloorMult,
	}
}

// SuggestPrice undercuts the market average by the discount multiplier
// without going below the cost floor.
func (p Pricer) SuggestPrice(avgPrice float64) float64 {
	floor := p.Pricing.CostPerUnit * p.PriceFloorMult
	return round2(math.Max(avgPrice*p.MarketDiscountMult, floor))
}

// CompetitorSummary is the price signal derived from the listings
// matched to one artist or event.
type CompetitorSummary struct {
	ProductCount   int
	TotalSold      int
	AvgPrice       float64
	SuggestedPrice float64
	BestSeller     *model.MarketplaceProduct // nil when no listings matched
}

// Summarize computes the representative market price and suggested
// sell price over a set of competitor listings. An empty set yields a
// zero summary; the caller falls back to its default price policy.
// Best-seller ties keep the first-encountered listing.
func (p Pricer) Summarize(products []model.MarketplaceProduct) CompetitorSummary {
	s := CompetitorSummary{ProductCount: len(products)}
	if len(products) == 0 {
		return s
	}

	var total float64
	best := 0
	for i := range products {
		total += products[i].Price
		s.TotalSold += products[i].SoldCount
		if products[i].SoldCount > products[best].SoldCount {
			best = i
		}
	}

	avg := total / float64(len(products))
	s.AvgPrice = round2(avg)
	s.SuggestedPrice = p.SuggestPrice(avg)
	s.BestSeller = &products[best]
	return s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
