// Package config defines the forecasting knobs and their loading.
// Every policy number the engine uses lives here so a deployment can
// retune pricing, demand, and priority behavior without a rebuild.
package config

import (
	"github.com/guarzo/merchforecast/internal/demand"
	"github.com/guarzo/merchforecast/internal/forecast"
	"github.com/guarzo/merchforecast/internal/marketplace"
	"github.com/guarzo/merchforecast/internal/pricing"
)

// Config holds process configuration. Zero values are never used
// directly; New fills defaults and Load layers file and env on top.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// OutputDir receives the generated CSV reports.
	OutputDir string `koanf:"output_dir"`

	// Schedule is an optional cron expression for periodic report
	// regeneration. Empty means run once and exit.
	Schedule string `koanf:"schedule"`

	// Unit economics.
	CostPerUnit float64 `koanf:"cost_per_unit"`
	FeePct      float64 `koanf:"fee_pct"`

	// Demand model.
	BaseConversionRate float64 `koanf:"base_conversion_rate"`
	SoldOutMult        float64 `koanf:"sold_out_mult"`
	SellingFastMult    float64 `koanf:"selling_fast_mult"`
	FestivalMult       float64 `koanf:"festival_mult"`
	HypeDivisor        float64 `koanf:"hype_divisor"`

	// Competitor pricing.
	MarketDiscountMult float64 `koanf:"market_discount_mult"`
	PriceFloorMult     float64 `koanf:"price_floor_mult"`

	// Marketplace aggregation.
	SalesWindowMonths  int `koanf:"sales_window_months"`
	SeedUnitsPerArtist int `koanf:"seed_units_per_artist"`

	// Fallback pricing for events with no competitor listings.
	FallbackTicketMult float64 `koanf:"fallback_ticket_mult"`
	FallbackBase       float64 `koanf:"fallback_base"`
	FlatSellPrice      float64 `koanf:"flat_sell_price"`

	// Priority cutoffs on the profit-per-day score.
	PriorityUrgent float64 `koanf:"priority_urgent"`
	PriorityHigh   float64 `koanf:"priority_high"`
}

// New returns a Config carrying the stock policy values.
func New() *Config {
	return &Config{
		LogLevel:  "info",
		OutputDir: "reports",

		CostPerUnit: pricing.DefaultCostPerUnit,
		FeePct:      pricing.DefaultFeePct,

		BaseConversionRate: demand.DefaultBaseRate,
		SoldOutMult:        demand.DefaultSoldOutMult,
		SellingFastMult:    demand.DefaultSellingFastMult,
		FestivalMult:       demand.DefaultFestivalMult,
		HypeDivisor:        demand.DefaultHypeDivisor,

		MarketDiscountMult: marketplace.DefaultMarketDiscountMult,
		PriceFloorMult:     marketplace.DefaultPriceFloorMult,
		SalesWindowMonths:  marketplace.DefaultSalesWindowMonths,
		SeedUnitsPerArtist: marketplace.DefaultSeedUnitsPerArtist,

		FallbackTicketMult: forecast.DefaultFallbackTicketMult,
		FallbackBase:       forecast.DefaultFallbackBase,
		FlatSellPrice:      forecast.DefaultFlatSellPrice,

		PriorityUrgent: forecast.DefaultPriorityThresholds().Urgent,
		PriorityHigh:   forecast.DefaultPriorityThresholds().High,
	}
}

// Pricing builds the unit-economics model.
func (c *Config) Pricing() pricing.Model {
	return pricing.Model{CostPerUnit: c.CostPerUnit, FeePct: c.FeePct}
}

// Demand builds the conversion model.
func (c *Config) Demand() demand.Model {
	return demand.Model{
		BaseRate:        c.BaseConversionRate,
		SoldOutMult:     c.SoldOutMult,
		SellingFastMult: c.SellingFastMult,
		FestivalMult:    c.FestivalMult,
		HypeDivisor:     c.HypeDivisor,
	}
}

// Pricer builds the competitor-anchored pricing policy.
func (c *Config) Pricer() marketplace.Pricer {
	return marketplace.Pricer{
		Pricing:            c.Pricing(),
		MarketDiscountMult: c.MarketDiscountMult,
		PriceFloorMult:     c.PriceFloorMult,
	}
}

// Aggregator builds the artist/category aggregation policy. Growth
// and opportunity cutoffs stay at stock values.
func (c *Config) Aggregator() marketplace.Aggregator {
	return marketplace.Aggregator{
		Pricer:             c.Pricer(),
		Growth:             marketplace.DefaultGrowthThresholds(),
		Opportunity:        marketplace.DefaultOpportunityThresholds(),
		SalesWindowMonths:  c.SalesWindowMonths,
		SeedUnitsPerArtist: c.SeedUnitsPerArtist,
	}
}

// Builder assembles the full projection pipeline.
func (c *Config) Builder() forecast.Builder {
	return forecast.Builder{
		Demand:   c.Demand(),
		Pricer:   c.Pricer(),
		Priority: forecast.PriorityThresholds{Urgent: c.PriorityUrgent, High: c.PriorityHigh},
		Fallback: forecast.FallbackPrice{
			TicketMult: c.FallbackTicketMult,
			Base:       c.FallbackBase,
			Flat:       c.FlatSellPrice,
		},
	}
}
