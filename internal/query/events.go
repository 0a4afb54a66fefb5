package query

import (
	"strings"
	"time"

	"github.com/guarzo/merchforecast/internal/model"
)

// Event sort keys.

func EventDateKey(e model.Event) int64        { return e.Date.Unix() }
func EventHypeKey(e model.Event) float64      { return e.HypeScore }
func EventPotentialKey(e model.Event) float64 { return e.SalesPotentialScore }
func EventAudienceKey(e model.Event) int      { return e.EstimatedAudience }
func EventTitleKey(e model.Event) string      { return strings.ToLower(e.Title) }

// Event predicates.

// EventSearch matches a needle against title, artist name, and city,
// case-insensitively.
func EventSearch(needle string) func(model.Event) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	return func(e model.Event) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(e.Title), needle) ||
			strings.Contains(strings.ToLower(e.ArtistName()), needle) ||
			strings.Contains(strings.ToLower(e.City()), needle)
	}
}

func EventInCity(city string) func(model.Event) bool {
	city = strings.ToLower(strings.TrimSpace(city))
	return func(e model.Event) bool {
		return strings.ToLower(e.City()) == city
	}
}

func EventInGenre(genre string) func(model.Event) bool {
	genre = strings.ToLower(strings.TrimSpace(genre))
	return func(e model.Event) bool {
		return strings.ToLower(e.Genre()) == genre
	}
}

func EventMinHype(score float64) func(model.Event) bool {
	return func(e model.Event) bool { return e.HypeScore >= score }
}

func EventMinPotential(score float64) func(model.Event) bool {
	return func(e model.Event) bool { return e.SalesPotentialScore >= score }
}

func EventFestivalsOnly() func(model.Event) bool {
	return func(e model.Event) bool { return e.IsFestival }
}

// EventBetween keeps events with from <= date < to.
func EventBetween(from, to time.Time) func(model.Event) bool {
	return func(e model.Event) bool {
		return !e.Date.Before(from) && e.Date.Before(to)
	}
}

func EventUpcoming(now time.Time) func(model.Event) bool {
	return func(e model.Event) bool { return !e.Date.Before(now) }
}
