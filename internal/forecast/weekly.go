package forecast

import (
	"sort"
	"time"
)

// WeekBucket sums the production load for one ISO week. Weeks with no
// events are omitted.
type WeekBucket struct {
	WeekStart time.Time `json:"week"`
	Events    int       `json:"events"`
	Units     int       `json:"units"`
	Revenue   float64   `json:"revenue"`
	Profit    float64   `json:"profit"`
}

// WeeklyPlan groups projections into Monday-aligned weekly buckets,
// ascending by week start. Each event lands in exactly one bucket,
// determined solely by its date.
func WeeklyPlan(projections []Projection) []WeekBucket {
	byWeek := map[time.Time]*WeekBucket{}
	for _, p := range projections {
		ws := WeekStart(p.EventDate)
		b, ok := byWeek[ws]
		if !ok {
			b = &WeekBucket{WeekStart: ws}
			byWeek[ws] = b
		}
		b.Events++
		b.Units += p.ProjectedUnits
		b.Revenue += p.ProjectedRevenue
		b.Profit += p.ProjectedProfit
	}

	out := make([]WeekBucket, 0, len(byWeek))
	for _, b := range byWeek {
		b.Revenue = round2(b.Revenue)
		b.Profit = round2(b.Profit)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].WeekStart.Before(out[j].WeekStart)
	})
	return out
}

// WeekStart returns midnight on the Monday of the ISO week containing
// d, in d's location.
func WeekStart(d time.Time) time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
