package query

import (
	"testing"
	"time"

	"github.com/guarzo/merchforecast/internal/model"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 20, 0, 0, 0, time.UTC)
}

func sampleEvents() []model.Event {
	return []model.Event{
		{
			ID:        "ev-1",
			Title:     "Iron Maiden: Run For Your Lives",
			Date:      day(2026, time.September, 12),
			Artist:    &model.Artist{Name: "Iron Maiden", Genre: "Metal"},
			Venue:     &model.Venue{City: "Chicago", State: "IL"},
			HypeScore: 85,
		},
		{
			ID:                  "ev-2",
			Title:               "Jazz in the Park",
			Date:                day(2026, time.September, 20),
			Artist:              &model.Artist{Name: "Norah Jones", Genre: "Jazz"},
			Venue:               &model.Venue{City: "Chicago", State: "IL"},
			HypeScore:           40,
			SalesPotentialScore: 75,
		},
		{
			ID:         "ev-3",
			Title:      "Riot Fest",
			Date:       day(2026, time.October, 3),
			Venue:      &model.Venue{City: "Denver", State: "CO"},
			IsFestival: true,
			HypeScore:  72,
		},
		{
			ID:    "ev-4",
			Title: "Acoustic Evening",
			Date:  day(2026, time.August, 1), // already happened
			Venue: &model.Venue{City: "Austin", State: "TX"},
		},
	}
}

func eventIDs(events []model.Event) []string {
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return ids
}

func TestEventSearch(t *testing.T) {
	events := sampleEvents()

	byArtist := Filter(events, EventSearch("iron"))
	if len(byArtist) != 1 || byArtist[0].ID != "ev-1" {
		t.Errorf("search iron = %v", eventIDs(byArtist))
	}

	byCity := Filter(events, EventSearch("CHICAGO"))
	if len(byCity) != 2 {
		t.Errorf("search chicago matched %v", eventIDs(byCity))
	}

	blank := Filter(events, EventSearch("  "))
	if len(blank) != len(events) {
		t.Errorf("blank search should match everything, got %d", len(blank))
	}
}

func TestEventPredicates(t *testing.T) {
	events := sampleEvents()

	if got := Filter(events, EventInCity("chicago")); len(got) != 2 {
		t.Errorf("EventInCity = %v", eventIDs(got))
	}
	if got := Filter(events, EventInGenre("Jazz")); len(got) != 1 || got[0].ID != "ev-2" {
		t.Errorf("EventInGenre = %v", eventIDs(got))
	}
	if got := Filter(events, EventMinHype(70)); len(got) != 2 {
		t.Errorf("EventMinHype = %v", eventIDs(got))
	}
	if got := Filter(events, EventMinPotential(50)); len(got) != 1 || got[0].ID != "ev-2" {
		t.Errorf("EventMinPotential = %v", eventIDs(got))
	}
	if got := Filter(events, EventFestivalsOnly()); len(got) != 1 || got[0].ID != "ev-3" {
		t.Errorf("EventFestivalsOnly = %v", eventIDs(got))
	}
}

func TestEventBetweenHalfOpen(t *testing.T) {
	events := sampleEvents()
	from := day(2026, time.September, 12)
	to := day(2026, time.October, 3)

	got := Filter(events, EventBetween(from, to))
	// Inclusive of from, exclusive of to.
	if len(got) != 2 || got[0].ID != "ev-1" || got[1].ID != "ev-2" {
		t.Errorf("EventBetween = %v", eventIDs(got))
	}
}

func TestEventSortComposesWithFilter(t *testing.T) {
	events := sampleEvents()
	now := day(2026, time.September, 1)

	upcoming := Filter(events, EventUpcoming(now))
	byHype := SortBy(upcoming, EventHypeKey, Desc)
	want := []string{"ev-1", "ev-3", "ev-2"}
	for i, w := range want {
		if byHype[i].ID != w {
			t.Errorf("byHype[%d] = %s, want %s", i, byHype[i].ID, w)
		}
	}

	byDate := SortBy(upcoming, EventDateKey, Asc)
	if byDate[0].ID != "ev-1" || byDate[2].ID != "ev-3" {
		t.Errorf("byDate = %v", eventIDs(byDate))
	}
}
