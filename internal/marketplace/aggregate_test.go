package marketplace

import (
	"math"
	"testing"

	"github.com/guarzo/merchforecast/internal/model"
)

func product(artist string, price float64, sold int) model.MarketplaceProduct {
	return model.MarketplaceProduct{
		ID:            artist + "-p",
		Title:         artist + " shirt",
		ProductURL:    "https://market.example/" + artist,
		Price:         price,
		SoldCount:     sold,
		RelatedArtist: artist,
	}
}

func TestSuggestPrice_UndercutsMarket(t *testing.T) {
	p := DefaultPricer()

	// avg 60 -> 54, above the 37.50 floor
	if got := p.SuggestPrice(60); got != 54 {
		t.Errorf("SuggestPrice(60) = %.2f, want 54", got)
	}
}

func TestSuggestPrice_FloorHolds(t *testing.T) {
	p := DefaultPricer()

	// avg 30 -> 27 would be below 2.5*15 = 37.50
	if got := p.SuggestPrice(30); got != 37.50 {
		t.Errorf("SuggestPrice(30) = %.2f, want 37.50", got)
	}
	if got := p.SuggestPrice(0); got != 37.50 {
		t.Errorf("SuggestPrice(0) = %.2f, want 37.50", got)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := DefaultPricer().Summarize(nil)

	if s.ProductCount != 0 || s.AvgPrice != 0 || s.SuggestedPrice != 0 {
		t.Errorf("empty summary should be zero, got %+v", s)
	}
	if s.BestSeller != nil {
		t.Errorf("empty summary should have no best seller")
	}
}

func TestSummarize(t *testing.T) {
	products := []model.MarketplaceProduct{
		product("iron maiden", 50, 1200),
		product("iron maiden", 70, 3400),
		product("iron maiden", 60, 800),
	}

	s := DefaultPricer().Summarize(products)

	if s.ProductCount != 3 {
		t.Errorf("ProductCount = %d, want 3", s.ProductCount)
	}
	if s.AvgPrice != 60 {
		t.Errorf("AvgPrice = %.2f, want 60", s.AvgPrice)
	}
	// 60 * 0.9 = 54
	if s.SuggestedPrice != 54 {
		t.Errorf("SuggestedPrice = %.2f, want 54", s.SuggestedPrice)
	}
	if s.TotalSold != 5400 {
		t.Errorf("TotalSold = %d, want 5400", s.TotalSold)
	}
	if s.BestSeller == nil || s.BestSeller.SoldCount != 3400 {
		t.Errorf("BestSeller should be the 3400-sold listing, got %+v", s.BestSeller)
	}
}

func TestSummarize_BestSellerTieKeepsFirst(t *testing.T) {
	first := product("a", 40, 500)
	first.ID = "first"
	second := product("a", 45, 500)
	second.ID = "second"

	s := DefaultPricer().Summarize([]model.MarketplaceProduct{first, second})

	if s.BestSeller.ID != "first" {
		t.Errorf("tie should keep first-encountered listing, got %s", s.BestSeller.ID)
	}
}

func TestSummarize_AvgPriceRounding(t *testing.T) {
	products := []model.MarketplaceProduct{
		product("x", 10, 1),
		product("x", 10, 1),
		product("x", 11, 1),
	}

	s := DefaultPricer().Summarize(products)

	// 31/3 = 10.333..., displayed as 10.33
	if math.Abs(s.AvgPrice-10.33) > 1e-9 {
		t.Errorf("AvgPrice = %.4f, want 10.33", s.AvgPrice)
	}
}
