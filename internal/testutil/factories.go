// Package testutil generates deterministic fixture data for tests.
package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/guarzo/merchforecast/internal/model"
)

// Factory produces events and marketplace listings from a seeded
// random generator, so tests get varied but reproducible data.
type Factory struct {
	rand *rand.Rand
	now  time.Time
}

// NewFactory seeds a factory. A zero seed falls back to the clock,
// for throwaway data where reproducibility does not matter.
func NewFactory(seed int64, now time.Time) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{rand: rand.New(rand.NewSource(seed)), now: now}
}

var (
	artistNames = []string{"Iron Maiden", "Metallica", "Taylor Swift", "Turnstile", "Alok", "Ana Castela"}
	genres      = []string{"metal", "metal", "pop", "punk", "eletronica", "sertanejo"}
	cities      = []string{"São Paulo", "Rio de Janeiro", "Curitiba", "Porto Alegre", "Recife"}
	statuses    = []model.TicketStatus{
		model.TicketAvailable, model.TicketAvailable,
		model.TicketSellingFast, model.TicketSoldOut,
	}
)

// Event builds a plausible upcoming event 7-120 days out.
func (f *Factory) Event() model.Event {
	i := f.rand.Intn(len(artistNames))
	capacity := (f.rand.Intn(40) + 2) * 500
	audience := capacity * (f.rand.Intn(60) + 40) / 100
	minTicket := float64(f.rand.Intn(30)+4) * 10

	return model.Event{
		ID:                uuid.NewString(),
		Title:             fmt.Sprintf("%s Live %d", artistNames[i], f.rand.Intn(1000)),
		Date:              f.now.AddDate(0, 0, f.rand.Intn(114)+7),
		Artist:            &model.Artist{Name: artistNames[i], Genre: genres[i], PopularityScore: float64(f.rand.Intn(101))},
		Venue:             &model.Venue{Name: "Arena " + cities[f.rand.Intn(len(cities))], City: cities[f.rand.Intn(len(cities))], Capacity: capacity},
		TicketStatus:      statuses[f.rand.Intn(len(statuses))],
		EstimatedAudience: audience,
		TicketPriceMin:    minTicket,
		TicketPriceMax:    minTicket * 3,
		EventType:         "tour_stop",
		HypeScore:         float64(f.rand.Intn(101)),
	}
}

// Festival builds a festival with headliners drawn from the artist
// pool.
func (f *Factory) Festival(headliners int) model.Event {
	ev := f.Event()
	ev.Artist = nil
	ev.IsFestival = true
	ev.EventType = "festival"
	for i := 0; i < headliners && i < len(artistNames); i++ {
		ev.Headliners = append(ev.Headliners, artistNames[i])
	}
	return ev
}

// Product builds a marketplace listing attributed to an artist.
func (f *Factory) Product(artist string) model.MarketplaceProduct {
	return model.MarketplaceProduct{
		ID:            uuid.NewString(),
		Title:         artist + " Tour Tee",
		ProductURL:    fmt.Sprintf("https://shop.test.local/p/%d", f.rand.Int63()),
		Price:         float64(f.rand.Intn(4000)+1500) / 100,
		SoldCount:     f.rand.Intn(5000),
		ReviewCount:   f.rand.Intn(800),
		SellerName:    fmt.Sprintf("seller-%03d", f.rand.Intn(500)),
		Category:      model.CategoryBandShirt,
		RelatedArtist: artist,
	}
}

// Products builds n listings spread across the artist pool.
func (f *Factory) Products(n int) []model.MarketplaceProduct {
	out := make([]model.MarketplaceProduct, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.Product(artistNames[i%len(artistNames)]))
	}
	return out
}

// Snapshots builds a status history that sells out after the given
// number of days.
func (f *Factory) Snapshots(start time.Time, daysToSellout int) []model.EventSnapshot {
	return []model.EventSnapshot{
		{TicketStatus: model.TicketAvailable, SnapshotAt: start},
		{TicketStatus: model.TicketSoldOut, SnapshotAt: start.AddDate(0, 0, daysToSellout)},
	}
}
