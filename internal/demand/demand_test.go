package demand

import (
	"math"
	"testing"

	"github.com/guarzo/merchforecast/internal/model"
)

func TestConversion_ReferenceVector(t *testing.T) {
	m := Default()
	ev := model.Event{
		TicketStatus:      model.TicketSoldOut,
		IsFestival:        true,
		HypeScore:         80,
		EstimatedAudience: 10000,
	}

	// 0.02 * 1.8 * 1.3 * (1 + 80/200) = 0.06552
	conv := m.Conversion(ev)
	if math.Abs(conv-0.06552) > 1e-9 {
		t.Errorf("Conversion = %.6f, want 0.06552", conv)
	}

	// round(10000 * 0.06552) = 655
	if got := m.Units(ev); got != 655 {
		t.Errorf("Units = %d, want 655", got)
	}

	if got := m.ConversionPct(ev); math.Abs(got-6.55) > 1e-9 {
		t.Errorf("ConversionPct = %.2f, want 6.55", got)
	}
}

func TestConversion_StatusMultipliers(t *testing.T) {
	m := Default()

	cases := []struct {
		status model.TicketStatus
		want   float64
	}{
		{model.TicketSoldOut, 0.02 * 1.8},
		{model.TicketSellingFast, 0.02 * 1.4},
		{model.TicketAvailable, 0.02},
		{model.TicketUnknown, 0.02},
	}
	for _, c := range cases {
		ev := model.Event{TicketStatus: c.status}
		if got := m.Conversion(ev); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("Conversion(%s) = %.5f, want %.5f", c.status, got, c.want)
		}
	}
}

func TestUnits_ZeroAudience(t *testing.T) {
	m := Default()
	ev := model.Event{
		TicketStatus: model.TicketSoldOut,
		IsFestival:   true,
		HypeScore:    100,
	}

	if got := m.Units(ev); got != 0 {
		t.Errorf("Units with zero audience = %d, want 0", got)
	}
}

func TestConversion_HypeClamping(t *testing.T) {
	m := Default()

	over := model.Event{HypeScore: 250}
	capped := model.Event{HypeScore: 100}
	if m.Conversion(over) != m.Conversion(capped) {
		t.Errorf("hype above 100 should clamp to 100")
	}

	negative := model.Event{HypeScore: -40}
	zero := model.Event{HypeScore: 0}
	if m.Conversion(negative) != m.Conversion(zero) {
		t.Errorf("negative hype should clamp to 0")
	}
}

func TestConversion_MonotonicInHype(t *testing.T) {
	m := Default()

	prev := -1.0
	for hype := 0.0; hype <= 100; hype += 5 {
		ev := model.Event{TicketStatus: model.TicketAvailable, HypeScore: hype}
		conv := m.Conversion(ev)
		if conv < prev {
			t.Fatalf("conversion decreased at hype %.0f: %.6f < %.6f", hype, conv, prev)
		}
		prev = conv
	}
}
