package query

import (
	"strings"

	"github.com/guarzo/merchforecast/internal/model"
)

// Product sort keys. Missing ratings sort below any real rating.

func ProductPriceKey(p model.MarketplaceProduct) float64 { return p.Price }
func ProductSoldKey(p model.MarketplaceProduct) int      { return p.SoldCount }

func ProductRatingKey(p model.MarketplaceProduct) float64 {
	if p.Rating == nil {
		return -1
	}
	return *p.Rating
}

// Product predicates.

func ProductSearch(needle string) func(model.MarketplaceProduct) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	return func(p model.MarketplaceProduct) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.RelatedArtist), needle)
	}
}

func ProductForArtist(artist string) func(model.MarketplaceProduct) bool {
	key := model.JoinKey(artist)
	return func(p model.MarketplaceProduct) bool {
		return model.JoinKey(p.RelatedArtist) == key
	}
}

func ProductInCategory(cat model.Category) func(model.MarketplaceProduct) bool {
	return func(p model.MarketplaceProduct) bool {
		return p.CategoryOrDefault() == cat
	}
}

func ProductMinSold(n int) func(model.MarketplaceProduct) bool {
	return func(p model.MarketplaceProduct) bool { return p.SoldCount >= n }
}

// ProductPriceBetween keeps min <= price <= max. A max of zero means
// no upper bound.
func ProductPriceBetween(min, max float64) func(model.MarketplaceProduct) bool {
	return func(p model.MarketplaceProduct) bool {
		if p.Price < min {
			return false
		}
		if max > 0 && p.Price > max {
			return false
		}
		return true
	}
}
