package pricing

// Scenario is one what-if input set for the interactive simulator.
// FeePct is a fraction (0.12, not 12).
type Scenario struct {
	CostPerUnit float64 `json:"cost_per_unit"`
	SellPrice   float64 `json:"sell_price"`
	Units       int     `json:"units"`
	FeePct      float64 `json:"fee_pct"`
}

// Outcome carries the full unit-economics breakdown for a scenario.
type Outcome struct {
	Investment     float64 `json:"investment"`
	GrossRevenue   float64 `json:"gross_revenue"`
	FeeAmount      float64 `json:"fee_amount"`
	NetRevenue     float64 `json:"net_revenue"`
	Profit         float64 `json:"profit"`
	MarginPct      float64 `json:"margin_pct"`
	ROIPct         float64 `json:"roi_pct"`
	BreakevenUnits int     `json:"breakeven_units"`
}

// Simulate applies the fee model to arbitrary user-chosen inputs,
// with no reference to any event or marketplace data. Zero volume
// and zero fee are ordinary inputs, not errors.
func Simulate(s Scenario) Outcome {
	m := Model{CostPerUnit: s.CostPerUnit, FeePct: s.FeePct}

	investment := float64(s.Units) * s.CostPerUnit
	gross := float64(s.Units) * s.SellPrice
	fee := gross * s.FeePct
	net := gross - fee
	profit := net - investment

	return Outcome{
		Investment:     round2(investment),
		GrossRevenue:   round2(gross),
		FeeAmount:      round2(fee),
		NetRevenue:     round2(net),
		Profit:         round2(profit),
		MarginPct:      round2(MarginPct(gross, profit)),
		ROIPct:         round2(ROIPct(investment, profit)),
		BreakevenUnits: m.BreakevenUnits(investment, s.SellPrice),
	}
}
