package forecast

import (
	"testing"
	"time"
)

func proj(date time.Time, units int, revenue, profit float64) Projection {
	return Projection{
		EventID:          "ev",
		EventDate:        date,
		ProjectedUnits:   units,
		ProjectedRevenue: revenue,
		ProjectedProfit:  profit,
	}
}

func TestWeekStart_MondayAligned(t *testing.T) {
	// 2026-09-01 is a Tuesday; its week starts Monday 2026-08-31.
	tue := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(tue); !got.Equal(want) {
		t.Errorf("WeekStart(tue) = %v, want %v", got, want)
	}

	// Monday maps to itself, Sunday to the preceding Monday.
	mon := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(mon); !got.Equal(mon) {
		t.Errorf("WeekStart(mon) = %v, want %v", got, mon)
	}
	sun := time.Date(2026, 9, 6, 23, 59, 0, 0, time.UTC)
	if got := WeekStart(sun); !got.Equal(want) {
		t.Errorf("WeekStart(sun) = %v, want %v", got, want)
	}
}

func TestWeeklyPlan_GroupsAndSums(t *testing.T) {
	tue := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	sun := time.Date(2026, 9, 6, 21, 0, 0, 0, time.UTC)  // same ISO week
	mon := time.Date(2026, 9, 7, 20, 0, 0, 0, time.UTC)  // next week
	later := time.Date(2026, 10, 2, 20, 0, 0, 0, time.UTC) // gap weeks omitted

	weeks := WeeklyPlan([]Projection{
		proj(later, 50, 2500, 1000),
		proj(tue, 100, 4700, 2636),
		proj(sun, 200, 9400, 5272),
		proj(mon, 80, 3760, 2108.80),
	})

	if len(weeks) != 3 {
		t.Fatalf("expected 3 sparse buckets, got %d", len(weeks))
	}

	// Ascending by week start.
	for i := 1; i < len(weeks); i++ {
		if !weeks[i-1].WeekStart.Before(weeks[i].WeekStart) {
			t.Fatalf("buckets not ascending: %v then %v", weeks[i-1].WeekStart, weeks[i].WeekStart)
		}
	}

	first := weeks[0]
	if !first.WeekStart.Equal(time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first bucket week = %v, want 2026-08-31", first.WeekStart)
	}
	if first.Events != 2 || first.Units != 300 {
		t.Errorf("first bucket events=%d units=%d, want 2/300", first.Events, first.Units)
	}
	if first.Revenue != 14100 || first.Profit != 7908 {
		t.Errorf("first bucket revenue=%.2f profit=%.2f, want 14100/7908", first.Revenue, first.Profit)
	}
}

func TestWeeklyPlan_Empty(t *testing.T) {
	if weeks := WeeklyPlan(nil); len(weeks) != 0 {
		t.Errorf("expected no buckets, got %d", len(weeks))
	}
}
