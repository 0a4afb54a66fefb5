package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/guarzo/merchforecast/internal/model"
)

var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 0.05 {
		t.Errorf("%s = %.2f, want %.2f", name, got, want)
	}
}

func TestHypeScoreSoldOutFestival(t *testing.T) {
	ev := model.Event{
		ID:                "ev-1",
		Date:              time.Date(2026, time.October, 1, 20, 0, 0, 0, time.UTC),
		Artist:            &model.Artist{Name: "Iron Maiden", PopularityScore: 80},
		Venue:             &model.Venue{Capacity: 12000},
		TicketStatus:      model.TicketSoldOut,
		EstimatedAudience: 10000,
		IsFestival:        true,
	}

	// Sellout proxy 25 + fill 10000/12000*25 = 20.83 + popularity 20
	// + urgency 10 (29 days out) + festival 10 = 85.8.
	got := HypeScore(ev, nil, testNow)
	approx(t, "HypeScore", got, 85.8)
}

func TestHypeScoreAvailableBaseline(t *testing.T) {
	ev := model.Event{
		ID:           "ev-2",
		Date:         time.Date(2026, time.December, 1, 20, 0, 0, 0, time.UTC),
		TicketStatus: model.TicketAvailable,
	}
	// Only the sellout proxy floor applies.
	approx(t, "HypeScore", HypeScore(ev, nil, testNow), 5)
}

func TestHypeScoreSoldOutWithoutCapacity(t *testing.T) {
	ev := model.Event{
		ID:           "ev-3",
		Date:         time.Date(2027, time.January, 10, 20, 0, 0, 0, time.UTC),
		TicketStatus: model.TicketSoldOut,
	}
	// Proxy 25 + flat 20 for sold-out with unknown capacity
	// + urgency 5 (far out) = 50.
	approx(t, "HypeScore", HypeScore(ev, nil, testNow), 50)
}

func TestHypeScoreClampsAt100(t *testing.T) {
	ev := model.Event{
		ID:                "ev-4",
		Date:              testNow.AddDate(0, 0, 3),
		Artist:            &model.Artist{PopularityScore: 100},
		Venue:             &model.Venue{Capacity: 5000},
		TicketStatus:      model.TicketSoldOut,
		EstimatedAudience: 20000,
		IsFestival:        true,
	}
	snaps := []model.EventSnapshot{
		{TicketStatus: model.TicketAvailable, SnapshotAt: testNow.AddDate(0, 0, -10)},
		{TicketStatus: model.TicketSoldOut, SnapshotAt: testNow.AddDate(0, 0, -9)},
	}
	if got := HypeScore(ev, snaps, testNow); got != 100 {
		t.Errorf("HypeScore = %.1f, want clamp at 100", got)
	}
}

func TestSelloutSpeedTiers(t *testing.T) {
	ev := model.Event{TicketStatus: model.TicketAvailable}
	base := testNow.AddDate(0, 0, -30)
	snaps := func(days int) []model.EventSnapshot {
		return []model.EventSnapshot{
			{TicketStatus: model.TicketAvailable, SnapshotAt: base},
			{TicketStatus: model.TicketSoldOut, SnapshotAt: base.AddDate(0, 0, days)},
		}
	}

	cases := []struct {
		days int
		want float64
	}{
		{1, 30},
		{5, 25},
		{14, 20},
		{20, 15},
	}
	for _, c := range cases {
		if got := selloutSpeed(ev, snaps(c.days)); got != c.want {
			t.Errorf("selloutSpeed(%d days) = %.0f, want %.0f", c.days, got, c.want)
		}
	}

	// First snapshot already sold out: no observable transition.
	stale := []model.EventSnapshot{
		{TicketStatus: model.TicketSoldOut, SnapshotAt: base},
		{TicketStatus: model.TicketSoldOut, SnapshotAt: base.AddDate(0, 0, 5)},
	}
	if got := selloutSpeed(ev, stale); got != 5 {
		t.Errorf("selloutSpeed with no transition = %.0f, want 5", got)
	}
}
