// Package demand converts an event's audience and popularity signals
// into an estimated shirt purchase rate and unit count.
package demand

import (
	"math"

	"github.com/guarzo/merchforecast/internal/model"
)

// Default conversion knobs. BaseRate is the fraction of attendees
// assumed to buy a shirt before any adjustment.
const (
	DefaultBaseRate        = 0.02
	DefaultSoldOutMult     = 1.8
	DefaultSellingFastMult = 1.4
	DefaultFestivalMult    = 1.3

	// DefaultHypeDivisor maps a 0-100 hype score onto a 1.0-1.5x
	// multiplier (1 + hype/200).
	DefaultHypeDivisor = 200.0
)

// Model holds the multiplicative conversion heuristic. All call sites
// must go through it; the same formula used to be re-derived with
// drifting constants in several views.
type Model struct {
	BaseRate        float64
	SoldOutMult     float64
	SellingFastMult float64
	FestivalMult    float64
	HypeDivisor     float64
}

// Default returns the model with stock multipliers.
func Default() Model {
	return Model{
		BaseRate:        DefaultBaseRate,
		SoldOutMult:     DefaultSoldOutMult,
		SellingFastMult: DefaultSellingFastMult,
		FestivalMult:    DefaultFestivalMult,
		HypeDivisor:     DefaultHypeDivisor,
	}
}

// Conversion returns the projected purchase fraction for an event.
// Hype scores outside [0,100] are clamped, not rejected.
func (m Model) Conversion(ev model.Event) float64 {
	status := 1.0
	switch ev.TicketStatus {
	case model.TicketSoldOut:
		status = m.SoldOutMult
	case model.TicketSellingFast:
		status = m.SellingFastMult
	}

	festival := 1.0
	if ev.IsFestival {
		festival = m.FestivalMult
	}

	hype := 1 + model.ClampScore(ev.HypeScore)/m.HypeDivisor

	return m.BaseRate * status * festival * hype
}

// ConversionPct is the display form of Conversion, rounded to two
// decimals.
func (m Model) ConversionPct(ev model.Event) float64 {
	return math.Round(m.Conversion(ev)*10000) / 100
}

// Units projects shirt sales for an event. An absent or zero audience
// always projects zero units regardless of multipliers.
func (m Model) Units(ev model.Event) int {
	if ev.EstimatedAudience <= 0 {
		return 0
	}
	return int(math.Round(float64(ev.EstimatedAudience) * m.Conversion(ev)))
}
