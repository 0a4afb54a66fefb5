package query

import (
	"testing"

	"github.com/guarzo/merchforecast/internal/model"
)

func sampleProducts() []model.MarketplaceProduct {
	lowRating := 3.2
	highRating := 4.8
	return []model.MarketplaceProduct{
		{ID: "p-1", Title: "Iron Maiden Legacy Tee", RelatedArtist: "Iron Maiden", Price: 32.99, SoldCount: 1200, Category: model.CategoryBandShirt, Rating: &highRating},
		{ID: "p-2", Title: "Riot Fest 2026 Lineup", RelatedArtist: "", Price: 27.50, SoldCount: 340, Category: model.CategoryFestivalShirt},
		{ID: "p-3", Title: "iron maiden vintage", RelatedArtist: "Iron Maiden ", Price: 18.00, SoldCount: 90, Rating: &lowRating},
		{ID: "p-4", Title: "Plain Black Tee", Price: 9.99, SoldCount: 5000},
	}
}

func TestProductForArtistNormalizes(t *testing.T) {
	got := Filter(sampleProducts(), ProductForArtist("  IRON MAIDEN"))
	if len(got) != 2 {
		t.Fatalf("ProductForArtist matched %d products, want 2", len(got))
	}
	if got[0].ID != "p-1" || got[1].ID != "p-3" {
		t.Errorf("ProductForArtist order = %s, %s", got[0].ID, got[1].ID)
	}
}

func TestProductInCategoryDefault(t *testing.T) {
	// Products without a category fall into uncategorized.
	got := Filter(sampleProducts(), ProductInCategory(model.CategoryUncategorized))
	if len(got) != 2 {
		t.Errorf("uncategorized matched %d, want 2", len(got))
	}
}

func TestProductPriceBetween(t *testing.T) {
	products := sampleProducts()

	mid := Filter(products, ProductPriceBetween(15, 30))
	if len(mid) != 2 {
		t.Errorf("range 15-30 matched %d, want 2", len(mid))
	}

	// Zero max means unbounded above.
	open := Filter(products, ProductPriceBetween(20, 0))
	if len(open) != 2 {
		t.Errorf("open range matched %d, want 2", len(open))
	}
}

func TestProductRatingKeyMissingSortsLast(t *testing.T) {
	sorted := SortBy(sampleProducts(), ProductRatingKey, Desc)
	if sorted[0].ID != "p-1" || sorted[1].ID != "p-3" {
		t.Errorf("rated products should lead: %s, %s", sorted[0].ID, sorted[1].ID)
	}
	// Unrated products keep input order at the tail.
	if sorted[2].ID != "p-2" || sorted[3].ID != "p-4" {
		t.Errorf("unrated tail = %s, %s", sorted[2].ID, sorted[3].ID)
	}
}

func TestProductMinSoldWithPaging(t *testing.T) {
	products := sampleProducts()
	popular := SortBy(Filter(products, ProductMinSold(100)), ProductSoldKey, Desc)
	if len(popular) != 3 {
		t.Fatalf("ProductMinSold(100) kept %d, want 3", len(popular))
	}
	page := Page(popular, 2, 2)
	if len(page) != 1 || page[0].ID != "p-2" {
		t.Errorf("page 2 = %v", page)
	}
}
