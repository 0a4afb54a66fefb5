package scoring

import (
	"time"

	"github.com/guarzo/merchforecast/internal/model"
)

// Potential cutoffs selecting the production lead time. High scores
// earn a longer runway so stock lands well before the show.
const (
	HighPotentialCutoff   = 70.0
	MediumPotentialCutoff = 40.0
)

// ProductionWindow returns when production should start and the
// latest date it must finish, both derived from the event date and
// its sales potential. Dates never land in the past: windows for
// imminent events collapse toward today.
func ProductionWindow(ev model.Event, salesPotential float64, now time.Time) (start, deadline time.Time) {
	eventDay := truncateDay(ev.Date)

	var leadStart, leadEnd int
	switch {
	case salesPotential >= HighPotentialCutoff:
		leadStart, leadEnd = 45, 21
	case salesPotential >= MediumPotentialCutoff:
		leadStart, leadEnd = 30, 14
	default:
		leadStart, leadEnd = 21, 10
	}

	start = eventDay.AddDate(0, 0, -leadStart)
	deadline = eventDay.AddDate(0, 0, -leadEnd)

	today := truncateDay(now)
	if start.Before(today) {
		start = today
	}
	if deadline.Before(today) {
		deadline = today
	}
	return start, deadline
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
