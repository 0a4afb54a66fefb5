package model

import (
	"strings"
	"time"
)

// TicketStatus reflects how ticket sales for an event are going at
// scrape time.
type TicketStatus string

const (
	TicketSoldOut     TicketStatus = "sold_out"
	TicketSellingFast TicketStatus = "selling_fast"
	TicketAvailable   TicketStatus = "available"
	TicketUnknown     TicketStatus = "unknown"
)

// ParseTicketStatus maps free-form status strings onto the known set.
// Anything unrecognized is treated as unknown rather than rejected.
func ParseTicketStatus(s string) TicketStatus {
	switch TicketStatus(strings.ToLower(strings.TrimSpace(s))) {
	case TicketSoldOut:
		return TicketSoldOut
	case TicketSellingFast:
		return TicketSellingFast
	case TicketAvailable:
		return TicketAvailable
	default:
		return TicketUnknown
	}
}

// Category classifies a marketplace listing.
type Category string

const (
	CategoryBandShirt     Category = "band_shirt"
	CategoryArtistShirt   Category = "artist_shirt"
	CategoryFestivalShirt Category = "festival_shirt"
	CategoryGenericShirt  Category = "generic_shirt"
	CategoryUncategorized Category = "uncategorized"
)

type Artist struct {
	Name            string  `json:"name"`
	Genre           string  `json:"genre,omitempty"`
	PopularityScore float64 `json:"popularity_score"`
}

type Venue struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Capacity int    `json:"capacity,omitempty"`
}

// Event is one scheduled performance as supplied by the data-fetch
// layer. The engine never mutates events.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"event_date"`

	Artist *Artist `json:"artist,omitempty"` // may be nil
	Venue  *Venue  `json:"venue,omitempty"`  // may be nil

	TicketStatus      TicketStatus `json:"ticket_status"`
	EstimatedAudience int          `json:"estimated_audience"` // 0 when unknown
	TicketPriceMin    float64      `json:"ticket_price_min"`   // 0 when unknown
	TicketPriceMax    float64      `json:"ticket_price_max"`

	EventType  string   `json:"event_type,omitempty"` // festival, concert, tour_stop
	IsFestival bool     `json:"is_festival"`
	Headliners []string `json:"headliners,omitempty"`

	HypeScore           float64 `json:"hype_score"`
	SalesPotentialScore float64 `json:"sales_potential_score"`

	ProductionStart    time.Time `json:"production_start_date,omitzero"`
	ProductionDeadline time.Time `json:"production_deadline,omitzero"`
}

// Valid reports whether the event carries the fields every derived
// record needs. Invalid events are excluded from output sets, they do
// not fail the batch.
func (e Event) Valid() bool {
	return e.ID != "" && !e.Date.IsZero()
}

// ArtistName returns the artist name or "" when no artist is attached.
func (e Event) ArtistName() string {
	if e.Artist == nil {
		return ""
	}
	return e.Artist.Name
}

// City returns the venue city or "" when no venue is attached.
func (e Event) City() string {
	if e.Venue == nil {
		return ""
	}
	return e.Venue.City
}

// Genre returns the artist genre or "" when unknown.
func (e Event) Genre() string {
	if e.Artist == nil {
		return ""
	}
	return e.Artist.Genre
}

// EventSnapshot is one historical observation of an event's ticket
// state, used to measure sell-out speed.
type EventSnapshot struct {
	TicketStatus      TicketStatus `json:"ticket_status"`
	EstimatedAudience int          `json:"estimated_audience,omitempty"`
	SnapshotAt        time.Time    `json:"snapshot_at"`
}

// MarketplaceProduct is one competitor listing, a snapshot of
// marketplace conditions at scrape time.
type MarketplaceProduct struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ProductURL string `json:"product_url"`

	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"` // pre-discount, may be nil

	SoldCount   int      `json:"sold_count"`
	Rating      *float64 `json:"rating,omitempty"` // 0-5, may be nil
	ReviewCount int      `json:"review_count"`

	SellerName     string `json:"seller_name,omitempty"`
	SellerLocation string `json:"seller_location,omitempty"`

	Category      Category `json:"category,omitempty"` // "" when unclassified
	RelatedArtist string   `json:"related_artist,omitempty"`
	RelatedEvent  string   `json:"related_event,omitempty"`
}

// CategoryOrDefault folds unclassified listings into the
// uncategorized group.
func (p MarketplaceProduct) CategoryOrDefault() Category {
	if p.Category == "" {
		return CategoryUncategorized
	}
	return p.Category
}

// JoinKey normalizes an artist or event name for matching between
// events and marketplace listings: case-folded and trimmed. Exact
// string matching proved too fragile against scraped data.
func JoinKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ClampScore bounds a 0-100 signal score. Upstream scores should
// already be in range but scraped inputs cannot be trusted.
func ClampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
