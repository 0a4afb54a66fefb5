package pricing

import "math"

// Default unit economics. Every knob is overridable through config so
// tests and callers can vary them.
const (
	// DefaultCostPerUnit is the production cost of one shirt
	// (blank + print).
	DefaultCostPerUnit = 15.00

	// DefaultFeePct is the marketplace commission taken per sale,
	// as a fraction.
	DefaultFeePct = 0.12
)

// Model holds the unit economics shared by every projection and
// aggregate. Pure arithmetic, no side effects.
type Model struct {
	CostPerUnit float64
	FeePct      float64
}

// Default returns the model with stock cost and fee values.
func Default() Model {
	return Model{CostPerUnit: DefaultCostPerUnit, FeePct: DefaultFeePct}
}

// NetPerUnit is what one sold unit nets after production cost and
// marketplace fee. May be negative for loss-making prices; that is a
// valid result, not an error.
func (m Model) NetPerUnit(sellPrice float64) float64 {
	return sellPrice - m.CostPerUnit - sellPrice*m.FeePct
}

// Profit for a unit count at a sell price.
func (m Model) Profit(units int, sellPrice float64) float64 {
	return float64(units) * m.NetPerUnit(sellPrice)
}

// Investment is the production outlay for a unit count.
func (m Model) Investment(units int) float64 {
	return float64(units) * m.CostPerUnit
}

// UnitMarginPct is the net-per-unit share of the sell price.
func (m Model) UnitMarginPct(sellPrice float64) float64 {
	if sellPrice <= 0 {
		return 0
	}
	return m.NetPerUnit(sellPrice) / sellPrice * 100
}

// BreakevenUnits is the smallest unit count whose cumulative net
// revenue covers the investment. Returns 0 when no breakeven is
// achievable at this price.
func (m Model) BreakevenUnits(investment, sellPrice float64) int {
	net := m.NetPerUnit(sellPrice)
	if net <= 0 {
		return 0
	}
	return int(math.Ceil(investment / net))
}

// ROIPct is profit over investment. Guards the zero-investment case
// by returning 0 rather than NaN.
func ROIPct(investment, profit float64) float64 {
	if investment <= 0 {
		return 0
	}
	return profit / investment * 100
}

// MarginPct is profit over gross revenue. Guards zero revenue.
func MarginPct(grossRevenue, profit float64) float64 {
	if grossRevenue <= 0 {
		return 0
	}
	return profit / grossRevenue * 100
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
