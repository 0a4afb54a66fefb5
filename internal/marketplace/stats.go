package marketplace

import (
	"math"
	"sort"
	"strings"

	"github.com/guarzo/merchforecast/internal/model"
)

// topN bounds the seller and artist leaderboards in Stats.
const topN = 10

// SellerStat summarizes one seller's footprint.
type SellerStat struct {
	Seller       string  `json:"seller"`
	ProductCount int     `json:"products"`
	TotalSold    int     `json:"total_sold"`
	AvgSold      float64 `json:"avg_sold"`
}

// ArtistStat summarizes one artist's listing footprint.
type ArtistStat struct {
	Artist       string  `json:"artist"`
	ProductCount int     `json:"products"`
	AvgPrice     float64 `json:"avg_price"`
	TotalSold    int     `json:"total_sold"`
}

// CategoryCount is a simple category tally.
type CategoryCount struct {
	Category model.Category `json:"category"`
	Count    int            `json:"count"`
}

// Stats is the top-level marketplace overview.
type Stats struct {
	TotalProducts     int             `json:"total_products"`
	AvgPrice          float64         `json:"avg_price"`
	PriceMin          float64         `json:"price_min"`
	PriceMax          float64         `json:"price_max"`
	TopSellers        []SellerStat    `json:"top_sellers"`
	TopArtists        []ArtistStat    `json:"top_artists"`
	CategoryBreakdown []CategoryCount `json:"category_breakdown"`
}

// Summary computes the marketplace overview: price range, seller and
// artist leaderboards ranked by units sold, and a category tally.
func Summary(products []model.MarketplaceProduct) Stats {
	s := Stats{
		TotalProducts:     len(products),
		TopSellers:        []SellerStat{},
		TopArtists:        []ArtistStat{},
		CategoryBreakdown: []CategoryCount{},
	}
	if len(products) == 0 {
		return s
	}

	s.PriceMin = math.Inf(1)
	var priceTotal float64
	for _, p := range products {
		priceTotal += p.Price
		if p.Price < s.PriceMin {
			s.PriceMin = p.Price
		}
		if p.Price > s.PriceMax {
			s.PriceMax = p.Price
		}
	}
	s.AvgPrice = round2(priceTotal / float64(len(products)))
	s.PriceMin = round2(s.PriceMin)
	s.PriceMax = round2(s.PriceMax)

	for _, g := range groupBy(products, func(p model.MarketplaceProduct) string {
		return model.JoinKey(p.SellerName)
	}) {
		sold := sumSold(g.products)
		s.TopSellers = append(s.TopSellers, SellerStat{
			Seller:       strings.TrimSpace(g.products[0].SellerName),
			ProductCount: len(g.products),
			TotalSold:    sold,
			AvgSold:      math.Round(float64(sold) / float64(len(g.products))),
		})
	}
	sort.SliceStable(s.TopSellers, func(i, j int) bool {
		if s.TopSellers[i].TotalSold != s.TopSellers[j].TotalSold {
			return s.TopSellers[i].TotalSold > s.TopSellers[j].TotalSold
		}
		return s.TopSellers[i].Seller < s.TopSellers[j].Seller
	})
	if len(s.TopSellers) > topN {
		s.TopSellers = s.TopSellers[:topN]
	}

	for _, g := range groupBy(products, func(p model.MarketplaceProduct) string {
		return model.JoinKey(p.RelatedArtist)
	}) {
		s.TopArtists = append(s.TopArtists, ArtistStat{
			Artist:       strings.TrimSpace(g.products[0].RelatedArtist),
			ProductCount: len(g.products),
			AvgPrice:     round2(avgPrice(g.products)),
			TotalSold:    sumSold(g.products),
		})
	}
	sort.SliceStable(s.TopArtists, func(i, j int) bool {
		if s.TopArtists[i].TotalSold != s.TopArtists[j].TotalSold {
			return s.TopArtists[i].TotalSold > s.TopArtists[j].TotalSold
		}
		return s.TopArtists[i].Artist < s.TopArtists[j].Artist
	})
	if len(s.TopArtists) > topN {
		s.TopArtists = s.TopArtists[:topN]
	}

	for _, g := range groupBy(products, func(p model.MarketplaceProduct) string {
		return string(p.CategoryOrDefault())
	}) {
		s.CategoryBreakdown = append(s.CategoryBreakdown, CategoryCount{
			Category: g.products[0].CategoryOrDefault(),
			Count:    len(g.products),
		})
	}
	sort.SliceStable(s.CategoryBreakdown, func(i, j int) bool {
		if s.CategoryBreakdown[i].Count != s.CategoryBreakdown[j].Count {
			return s.CategoryBreakdown[i].Count > s.CategoryBreakdown[j].Count
		}
		return s.CategoryBreakdown[i].Category < s.CategoryBreakdown[j].Category
	})

	return s
}
