// Package scoring derives the hype and sales-potential signals that
// feed demand estimation, plus the production window and keyword
// genre classification built on top of them. Every function is pure
// and takes the reference time explicitly.
package scoring

import (
	"math"
	"time"

	"github.com/guarzo/merchforecast/internal/model"
)

// Hype factor caps. Sellout speed dominates; the rest layer on top
// and the sum clamps to 100.
const (
	selloutSpeedMax   = 30.0
	fillRateMax       = 25.0
	popularityWeight  = 0.25
	soldOutNoCapacity = 20.0
	festivalBonus     = 10.0
	tourStopBonus     = 3.0
)

// HypeScore rates an event 0-100 from sellout speed, venue fill rate,
// artist popularity, urgency, and event type. Snapshots, when there
// are at least two, let the sellout-speed factor use observed history
// instead of the current status proxy.
func HypeScore(ev model.Event, snapshots []model.EventSnapshot, now time.Time) float64 {
	score := selloutSpeed(ev, snapshots)

	switch {
	case ev.Venue != nil && ev.Venue.Capacity > 0 && ev.EstimatedAudience > 0:
		fill := float64(ev.EstimatedAudience) / float64(ev.Venue.Capacity)
		score += math.Min(fill*fillRateMax, fillRateMax)
	case ev.TicketStatus == model.TicketSoldOut:
		score += soldOutNoCapacity
	}

	if ev.Artist != nil && ev.Artist.PopularityScore > 0 {
		score += ev.Artist.PopularityScore * popularityWeight
	}

	daysUntil := int(ev.Date.Sub(now).Hours() / 24)
	switch ev.TicketStatus {
	case model.TicketSoldOut:
		switch {
		case daysUntil < 30:
			score += 10
		case daysUntil < 60:
			score += 7
		default:
			score += 5
		}
	case model.TicketSellingFast:
		score += 5
	}

	if ev.IsFestival {
		score += festivalBonus
	} else if ev.EventType == "tour_stop" {
		score += tourStopBonus
	}

	return math.Min(round1(score), 100)
}

// selloutSpeed scores 0-30. With fewer than two snapshots the current
// ticket status stands in for history.
func selloutSpeed(ev model.Event, snapshots []model.EventSnapshot) float64 {
	if len(snapshots) < 2 {
		switch ev.TicketStatus {
		case model.TicketSoldOut:
			return 25
		case model.TicketSellingFast:
			return 15
		default:
			return 5
		}
	}

	first := snapshots[0]
	if first.TicketStatus != model.TicketAvailable {
		return 5
	}
	for _, snap := range snapshots[1:] {
		if snap.TicketStatus != model.TicketSoldOut {
			continue
		}
		days := int(snap.SnapshotAt.Sub(first.SnapshotAt).Hours() / 24)
		switch {
		case days <= 1:
			return 30
		case days <= 7:
			return 25
		case days <= 14:
			return 20
		default:
			return 15
		}
	}
	return 5
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
