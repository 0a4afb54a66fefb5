package query

import (
	"sort"
	"time"

	"github.com/guarzo/merchforecast/internal/model"
)

const (
	// DefaultHighScoreCutoff marks an event as high-interest on the
	// dashboard counters.
	DefaultHighScoreCutoff = 70.0

	dashboardTopN = 5
)

// CityCount tallies upcoming events per city.
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// GenreCount tallies upcoming events per genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// DashboardStats summarizes the upcoming event pipeline.
type DashboardStats struct {
	TotalUpcoming      int          `json:"total_upcoming"`
	HighHypeCount      int          `json:"high_hype_count"`
	HighPotentialCount int          `json:"high_potential_count"`
	EventsThisMonth    int          `json:"events_this_month"`
	EventsNextMonth    int          `json:"events_next_month"`
	TopCities          []CityCount  `json:"top_cities"`
	TopGenres          []GenreCount `json:"top_genres"`
}

// Dashboard computes headline counters over events on or after now.
// Past events are ignored entirely.
func Dashboard(events []model.Event, now time.Time) DashboardStats {
	upcoming := Filter(events, EventUpcoming(now))

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)
	monthAfter := monthStart.AddDate(0, 2, 0)

	stats := DashboardStats{TotalUpcoming: len(upcoming)}
	cities := map[string]int{}
	genres := map[string]int{}
	for _, e := range upcoming {
		if e.HypeScore >= DefaultHighScoreCutoff {
			stats.HighHypeCount++
		}
		if e.SalesPotentialScore >= DefaultHighScoreCutoff {
			stats.HighPotentialCount++
		}
		if !e.Date.Before(now) && e.Date.Before(nextMonth) {
			stats.EventsThisMonth++
		} else if !e.Date.Before(nextMonth) && e.Date.Before(monthAfter) {
			stats.EventsNextMonth++
		}
		if city := e.City(); city != "" {
			cities[city]++
		}
		if genre := e.Genre(); genre != "" {
			genres[genre]++
		}
	}

	for city, n := range cities {
		stats.TopCities = append(stats.TopCities, CityCount{City: city, Count: n})
	}
	sort.Slice(stats.TopCities, func(i, j int) bool {
		if stats.TopCities[i].Count != stats.TopCities[j].Count {
			return stats.TopCities[i].Count > stats.TopCities[j].Count
		}
		return stats.TopCities[i].City < stats.TopCities[j].City
	})
	stats.TopCities = TopN(stats.TopCities, dashboardTopN)

	for genre, n := range genres {
		stats.TopGenres = append(stats.TopGenres, GenreCount{Genre: genre, Count: n})
	}
	sort.Slice(stats.TopGenres, func(i, j int) bool {
		if stats.TopGenres[i].Count != stats.TopGenres[j].Count {
			return stats.TopGenres[i].Count > stats.TopGenres[j].Count
		}
		return stats.TopGenres[i].Genre < stats.TopGenres[j].Genre
	})
	stats.TopGenres = TopN(stats.TopGenres, dashboardTopN)

	return stats
}
