// Package forecast turns events and matched competitor listings into
// per-event production projections and time-bucketed plans.
package forecast

import (
	"math"
	"time"

	"github.com/guarzo/merchforecast/internal/demand"
	"github.com/guarzo/merchforecast/internal/marketplace"
	"github.com/guarzo/merchforecast/internal/model"
)

// PriorityTier labels how urgently production for an event should
// start.
type PriorityTier string

const (
	PriorityUrgent PriorityTier = "urgent"
	PriorityHigh   PriorityTier = "high"
	PriorityNormal PriorityTier = "normal"
	PriorityLow    PriorityTier = "low"
)

// PriorityThresholds are cutoffs on the profit-per-day score.
type PriorityThresholds struct {
	Urgent float64
	High   float64
}

// DefaultPriorityThresholds returns the stock cutoffs.
func DefaultPriorityThresholds() PriorityThresholds {
	return PriorityThresholds{Urgent: 50, High: 10}
}

// Fallback sell-price policy for events with no matched competitor
// listings: a ticket-price-anchored estimate when the minimum ticket
// price is known, a flat default otherwise.
const (
	DefaultFallbackTicketMult = 0.12
	DefaultFallbackBase       = 35.0
	DefaultFlatSellPrice      = 45.0
)

// FallbackPrice holds the no-market-signal price policy.
type FallbackPrice struct {
	TicketMult float64
	Base       float64
	Flat       float64
}

// DefaultFallbackPrice returns the stock policy.
func DefaultFallbackPrice() FallbackPrice {
	return FallbackPrice{
		TicketMult: DefaultFallbackTicketMult,
		Base:       DefaultFallbackBase,
		Flat:       DefaultFlatSellPrice,
	}
}

// Builder combines the demand model, the competitor pricer, and the
// fee model into per-event projections. It holds no state between
// calls.
type Builder struct {
	Demand   demand.Model
	Pricer   marketplace.Pricer
	Priority PriorityThresholds
	Fallback FallbackPrice
}

// DefaultBuilder returns a builder with stock policy values.
func DefaultBuilder() Builder {
	return Builder{
		Demand:   demand.Default(),
		Pricer:   marketplace.DefaultPricer(),
		Priority: DefaultPriorityThresholds(),
		Fallback: DefaultFallbackPrice(),
	}
}

// Projection is the production recommendation for one event. Derived
// fresh per request, never persisted.
type Projection struct {
	EventID    string             `json:"event_id"`
	EventTitle string             `json:"event_title"`
	Artist     string             `json:"artist"`
	Venue      string             `json:"venue"`
	City       string             `json:"city"`
	EventDate  time.Time          `json:"event_date"`
	DaysUntil  int                `json:"days_until"`
	Audience   int                `json:"audience"`
	Status     model.TicketStatus `json:"ticket_status"`
	HypeScore  float64            `json:"hype_score"`
	Potential  float64            `json:"sales_potential"`
	IsFestival bool               `json:"is_festival"`

	MatchingProducts int     `json:"matching_products"`
	MarketAvgPrice   float64 `json:"marketplace_avg_price"`
	MarketTotalSold  int     `json:"marketplace_total_sold"`
	BestSellerTitle  string  `json:"best_seller_title,omitempty"`
	BestSellerSold   int     `json:"best_seller_sold"`
	BestSellerURL    string  `json:"best_seller_url,omitempty"`

	ConversionPct    float64      `json:"conversion_rate_pct"`
	ProjectedUnits   int          `json:"projected_units"`
	SuggestedPrice   float64      `json:"suggested_price"`
	Investment       float64      `json:"investment"`
	ProjectedRevenue float64      `json:"projected_revenue"`
	ProjectedProfit  float64      `json:"projected_profit"`
	PriorityScore    float64      `json:"priority_score"`
	Priority         PriorityTier `json:"priority"`

	ProductionStart    time.Time `json:"production_start,omitzero"`
	ProductionDeadline time.Time `json:"production_deadline,omitzero"`
}

// Totals sums a projection set.
type Totals struct {
	Events           int     `json:"total_events"`
	Audience         int     `json:"total_audience"`
	Units            int     `json:"total_projected_units"`
	Investment       float64 `json:"total_investment"`
	Revenue          float64 `json:"total_projected_revenue"`
	Profit           float64 `json:"total_projected_profit"`
	AvgConversionPct float64 `json:"avg_conversion_rate_pct"`
	AvgTicket        float64 `json:"avg_ticket"`
}

// Result is the full forecast for one working set of events.
type Result struct {
	Projections []Projection `json:"events"`
	Totals      Totals       `json:"totals"`
	Weekly      []WeekBucket `json:"weekly_forecast"`
}

// IndexByArtist buckets listings by normalized related-artist key for
// event matching.
func IndexByArtist(products []model.MarketplaceProduct) map[string][]model.MarketplaceProduct {
	index := make(map[string][]model.MarketplaceProduct)
	for _, p := range products {
		key := model.JoinKey(p.RelatedArtist)
		if key == "" {
			continue
		}
		index[key] = append(index[key], p)
	}
	return index
}

// Build produces one projection per valid event, in input order, plus
// totals and the weekly production plan. Events missing an identifier
// or date are excluded rather than producing malformed records; a bad
// record never fails the batch.
func (b Builder) Build(events []model.Event, products []model.MarketplaceProduct, now time.Time) Result {
	index := IndexByArtist(products)

	res := Result{Projections: []Projection{}}
	for _, ev := range events {
		if !ev.Valid() {
			continue
		}
		p := b.project(ev, matchListings(index, ev), now)
		res.Projections = append(res.Projections, p)

		res.Totals.Events++
		res.Totals.Audience += p.Audience
		res.Totals.Units += p.ProjectedUnits
		res.Totals.Investment += p.Investment
		res.Totals.Revenue += p.ProjectedRevenue
		res.Totals.Profit += p.ProjectedProfit
	}

	if res.Totals.Audience > 0 {
		res.Totals.AvgConversionPct = round2(float64(res.Totals.Units) / float64(res.Totals.Audience) * 100)
	}
	if res.Totals.Units > 0 {
		res.Totals.AvgTicket = round2(res.Totals.Revenue / float64(res.Totals.Units))
	}
	res.Totals.Investment = round2(res.Totals.Investment)
	res.Totals.Revenue = round2(res.Totals.Revenue)
	res.Totals.Profit = round2(res.Totals.Profit)

	res.Weekly = WeeklyPlan(res.Projections)
	return res
}

func (b Builder) project(ev model.Event, listings []model.MarketplaceProduct, now time.Time) Projection {
	summary := b.Pricer.Summarize(listings)

	price := summary.SuggestedPrice
	if summary.ProductCount == 0 {
		price = b.fallbackPrice(ev)
	}

	units := b.Demand.Units(ev)
	m := b.Pricer.Pricing
	profit := round2(m.Profit(units, price))

	daysUntil := daysBetween(now, ev.Date)
	score := profit / float64(max(daysUntil, 1))

	p := Projection{
		EventID:    ev.ID,
		EventTitle: ev.Title,
		Artist:     ev.ArtistName(),
		City:       ev.City(),
		EventDate:  ev.Date,
		DaysUntil:  max(daysUntil, 0),
		Audience:   ev.EstimatedAudience,
		Status:     ev.TicketStatus,
		HypeScore:  model.ClampScore(ev.HypeScore),
		Potential:  model.ClampScore(ev.SalesPotentialScore),
		IsFestival: ev.IsFestival,

		MatchingProducts: summary.ProductCount,
		MarketAvgPrice:   summary.AvgPrice,
		MarketTotalSold:  summary.TotalSold,

		ConversionPct:    b.Demand.ConversionPct(ev),
		ProjectedUnits:   units,
		SuggestedPrice:   price,
		Investment:       round2(m.Investment(units)),
		ProjectedRevenue: round2(float64(units) * price),
		ProjectedProfit:  profit,
		PriorityScore:    round2(score),
		Priority:         b.priorityTier(score, units),

		ProductionStart:    ev.ProductionStart,
		ProductionDeadline: ev.ProductionDeadline,
	}
	if ev.Venue != nil {
		p.Venue = ev.Venue.Name
	}
	if summary.BestSeller != nil {
		p.BestSellerTitle = summary.BestSeller.Title
		p.BestSellerSold = summary.BestSeller.SoldCount
		p.BestSellerURL = summary.BestSeller.ProductURL
	}
	return p
}

// fallbackPrice applies the no-market-signal policy: anchor on the
// minimum ticket price when known, flat default otherwise.
func (b Builder) fallbackPrice(ev model.Event) float64 {
	if ev.TicketPriceMin > 0 {
		return math.Round(ev.TicketPriceMin*b.Fallback.TicketMult + b.Fallback.Base)
	}
	return b.Fallback.Flat
}

func (b Builder) priorityTier(score float64, units int) PriorityTier {
	switch {
	case score > b.Priority.Urgent:
		return PriorityUrgent
	case score > b.Priority.High:
		return PriorityHigh
	case units > 0:
		return PriorityNormal
	default:
		return PriorityLow
	}
}

// matchListings resolves the competitor listings for an event by
// artist key, extended with festival headliners, deduplicated by
// listing ID in first-encountered order.
func matchListings(index map[string][]model.MarketplaceProduct, ev model.Event) []model.MarketplaceProduct {
	artistKey := model.JoinKey(ev.ArtistName())

	var matched []model.MarketplaceProduct
	matched = append(matched, index[artistKey]...)

	if ev.IsFestival {
		for _, h := range ev.Headliners {
			key := model.JoinKey(h)
			if key == "" || key == artistKey {
				continue
			}
			matched = append(matched, index[key]...)
		}
	}

	if len(matched) < 2 {
		return matched
	}
	seen := make(map[string]bool, len(matched))
	unique := matched[:0]
	for _, p := range matched {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		unique = append(unique, p)
	}
	return unique
}

// daysBetween counts whole days from now to the event date. Past
// dates yield negative counts; callers clamp as needed.
func daysBetween(now, date time.Time) int {
	return int(date.Sub(now).Hours() / 24)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
