package marketplace

import (
	"sort"
	"strings"

	"github.com/guarzo/merchforecast/internal/model"
)

// Tier is a qualitative three-step rating.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Aggregation policy knobs.
const (
	// DefaultSalesWindowMonths: scraped sold counts are treated as
	// roughly this many months of sales when estimating monthly
	// volume.
	DefaultSalesWindowMonths = 3

	// DefaultSeedUnitsPerArtist sizes the recommended initial
	// production run per artist.
	DefaultSeedUnitsPerArtist = 50
)

// GrowthThresholds decide the growth-potential tier of an artist
// group. High wants both volume and an established product spread;
// medium takes either.
type GrowthThresholds struct {
	HighSold       int
	HighProducts   int
	MediumSold     int
	MediumProducts int
}

// DefaultGrowthThresholds returns the stock cutoffs.
func DefaultGrowthThresholds() GrowthThresholds {
	return GrowthThresholds{
		HighSold:       10000,
		HighProducts:   3,
		MediumSold:     5000,
		MediumProducts: 3,
	}
}

// OpportunityThresholds size up the market as a whole.
type OpportunityThresholds struct {
	LargeMarketSold  int
	MediumMarketSold int
	HighCompetition  int
	MedCompetition   int
}

// DefaultOpportunityThresholds returns the stock cutoffs.
func DefaultOpportunityThresholds() OpportunityThresholds {
	return OpportunityThresholds{
		LargeMarketSold:  50000,
		MediumMarketSold: 20000,
		HighCompetition:  50,
		MedCompetition:   20,
	}
}

// Aggregator groups competitor listings into artist and category
// rollups and a market-level opportunity read.
type Aggregator struct {
	Pricer             Pricer
	Growth             GrowthThresholds
	Opportunity        OpportunityThresholds
	SalesWindowMonths  int
	SeedUnitsPerArtist int
}

// DefaultAggregator returns an aggregator with stock policy values.
func DefaultAggregator() Aggregator {
	return Aggregator{
		Pricer:             DefaultPricer(),
		Growth:             DefaultGrowthThresholds(),
		Opportunity:        DefaultOpportunityThresholds(),
		SalesWindowMonths:  DefaultSalesWindowMonths,
		SeedUnitsPerArtist: DefaultSeedUnitsPerArtist,
	}
}

// ArtistAggregate is the market read for one artist.
type ArtistAggregate struct {
	Artist            string  `json:"artist"`
	ProductCount      int     `json:"products_count"`
	TotalSold         int     `json:"total_sold"`
	AvgPrice          float64 `json:"avg_price"`
	MarketSharePct    float64 `json:"market_share_pct"`
	EstMonthlyUnits   int     `json:"estimated_units_per_month"`
	EstMonthlyRevenue float64 `json:"estimated_monthly_revenue"`
	SuggestedPrice    float64 `json:"suggested_price"`
	ProfitMarginPct   float64 `json:"profit_margin_pct"`
	GrowthPotential   Tier    `json:"growth_potential"`
}

// CategoryAggregate is the market read for one listing category.
type CategoryAggregate struct {
	Category        model.Category `json:"category"`
	ProductCount    int            `json:"products"`
	TotalSold       int            `json:"total_sold"`
	AvgPrice        float64        `json:"avg_price"`
	MarketSharePct  float64        `json:"market_share_pct"`
	RevenueEstimate float64        `json:"revenue_estimate"`
}

// Opportunity is a qualitative summary of the whole market.
type Opportunity struct {
	MarketSize            Tier    `json:"market_size"`
	CompetitionLevel      Tier    `json:"competition_level"`
	AvgProfitMarginPct    float64 `json:"avg_profit_margin"`
	RecommendedInvestment float64 `json:"recommended_investment"`
	ProjectedROIPct       float64 `json:"projected_roi_pct"`
}

// MarketProjection bundles the per-artist and per-category rollups
// with market-level totals. Recomputed fresh from the input slice on
// every call.
type MarketProjection struct {
	TotalMarketRevenue float64             `json:"total_market_revenue"`
	TotalUnitsSold     int                 `json:"total_units_sold"`
	AvgTicket          float64             `json:"avg_ticket"`
	Artists            []ArtistAggregate   `json:"projections"`
	Categories         []CategoryAggregate `json:"category_breakdown"`
	Opportunity        Opportunity         `json:"opportunity_score"`
}

type group struct {
	name     string
	products []model.MarketplaceProduct
}

// ProjectSales groups listings by artist and category and derives
// revenue estimates, market shares, growth tiers, and the overall
// opportunity read.
func (a Aggregator) ProjectSales(products []model.MarketplaceProduct) MarketProjection {
	out := MarketProjection{
		Artists:    []ArtistAggregate{},
		Categories: []CategoryAggregate{},
	}

	window := a.SalesWindowMonths
	if window <= 0 {
		window = DefaultSalesWindowMonths
	}

	// Artist rollups. Listings without a related artist contribute to
	// market totals but not to any artist group.
	artistGroups := groupBy(products, func(p model.MarketplaceProduct) string {
		return model.JoinKey(p.RelatedArtist)
	})
	artistTotalSold := 0
	for _, g := range artistGroups {
		artistTotalSold += sumSold(g.products)
	}

	for _, g := range artistGroups {
		totalSold := sumSold(g.products)
		avg := round2(avgPrice(g.products))
		suggested := a.Pricer.SuggestPrice(avg)

		monthlyUnits := totalSold / window
		monthlyRevenue := round2(float64(monthlyUnits) * avg)
		out.TotalMarketRevenue += monthlyRevenue

		share := 0.0
		if artistTotalSold > 0 {
			share = float64(totalSold) / float64(artistTotalSold) * 100
		}

		out.Artists = append(out.Artists, ArtistAggregate{
			Artist:            strings.TrimSpace(g.products[0].RelatedArtist),
			ProductCount:      len(g.products),
			TotalSold:         totalSold,
			AvgPrice:          avg,
			MarketSharePct:    round2(share),
			EstMonthlyUnits:   monthlyUnits,
			EstMonthlyRevenue: monthlyRevenue,
			SuggestedPrice:    suggested,
			ProfitMarginPct:   round2(a.Pricer.Pricing.UnitMarginPct(suggested)),
			GrowthPotential:   a.growthTier(totalSold, len(g.products)),
		})
	}
	sortAggregates(out.Artists)

	// Category rollups. Unclassified listings fold into the
	// uncategorized group so category shares cover every listing.
	catGroups := groupBy(products, func(p model.MarketplaceProduct) string {
		return string(p.CategoryOrDefault())
	})
	catTotalSold := sumSold(products)

	for _, g := range catGroups {
		totalSold := sumSold(g.products)
		avg := round2(avgPrice(g.products))

		share := 0.0
		if catTotalSold > 0 {
			share = float64(totalSold) / float64(catTotalSold) * 100
		}

		out.Categories = append(out.Categories, CategoryAggregate{
			Category:        g.products[0].CategoryOrDefault(),
			ProductCount:    len(g.products),
			TotalSold:       totalSold,
			AvgPrice:        avg,
			MarketSharePct:  round2(share),
			RevenueEstimate: round2(float64(totalSold) / float64(window) * avg),
		})
	}
	sort.SliceStable(out.Categories, func(i, j int) bool {
		if out.Categories[i].TotalSold != out.Categories[j].TotalSold {
			return out.Categories[i].TotalSold > out.Categories[j].TotalSold
		}
		return out.Categories[i].Category < out.Categories[j].Category
	})

	// Market-level figures span all listings, attributed or not.
	out.TotalUnitsSold = catTotalSold
	avgAll := avgPrice(products)
	out.AvgTicket = round2(avgAll)
	out.TotalMarketRevenue = round2(out.TotalMarketRevenue)
	out.Opportunity = a.opportunity(len(products), catTotalSold, avgAll, len(out.Artists))

	return out
}

func (a Aggregator) growthTier(totalSold, productCount int) Tier {
	switch {
	case totalSold > a.Growth.HighSold && productCount >= a.Growth.HighProducts:
		return TierHigh
	case totalSold > a.Growth.MediumSold || productCount >= a.Growth.MediumProducts:
		return TierMedium
	default:
		return TierLow
	}
}

func (a Aggregator) opportunity(productCount, totalSold int, avgPriceAll float64, artistCount int) Opportunity {
	op := Opportunity{MarketSize: TierLow, CompetitionLevel: TierLow}

	switch {
	case totalSold > a.Opportunity.LargeMarketSold:
		op.MarketSize = TierHigh
	case totalSold > a.Opportunity.MediumMarketSold:
		op.MarketSize = TierMedium
	}

	switch {
	case productCount > a.Opportunity.HighCompetition:
		op.CompetitionLevel = TierHigh
	case productCount > a.Opportunity.MedCompetition:
		op.CompetitionLevel = TierMedium
	}

	m := a.Pricer.Pricing
	op.AvgProfitMarginPct = round2(m.UnitMarginPct(avgPriceAll))
	op.RecommendedInvestment = round2(m.CostPerUnit * float64(a.SeedUnitsPerArtist) * float64(artistCount))
	if m.CostPerUnit > 0 {
		op.ProjectedROIPct = round2(m.NetPerUnit(avgPriceAll) / m.CostPerUnit * 100)
	}
	return op
}

// groupBy buckets products, skipping empty keys, and returns groups
// in first-encountered order so callers can sort deterministically.
func groupBy(products []model.MarketplaceProduct, key func(model.MarketplaceProduct) string) []group {
	index := map[string]int{}
	var groups []group
	for _, p := range products {
		k := key(p)
		if k == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{name: k})
		}
		groups[i].products = append(groups[i].products, p)
	}
	return groups
}

func sortAggregates(aggs []ArtistAggregate) {
	sort.SliceStable(aggs, func(i, j int) bool {
		if aggs[i].TotalSold != aggs[j].TotalSold {
			return aggs[i].TotalSold > aggs[j].TotalSold
		}
		return aggs[i].Artist < aggs[j].Artist
	})
}

func sumSold(products []model.MarketplaceProduct) int {
	total := 0
	for _, p := range products {
		total += p.SoldCount
	}
	return total
}

func avgPrice(products []model.MarketplaceProduct) float64 {
	if len(products) == 0 {
		return 0
	}
	var total float64
	for _, p := range products {
		total += p.Price
	}
	return total / float64(len(products))
}
