package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering, low to high precedence:
//  1. defaults (New)
//  2. YAML file named by MERCH_CONFIG, if set
//  3. environment variables with the MERCH_ prefix
//
// Env keys map flat: MERCH_COST_PER_UNIT -> cost_per_unit.
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("MERCH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	envProvider := env.Provider("MERCH_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "merch_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.CostPerUnit <= 0:
		return fmt.Errorf("%w: cost_per_unit must be positive", ErrInvalidConfig)
	case c.FeePct < 0 || c.FeePct >= 1:
		return fmt.Errorf("%w: fee_pct must be in [0, 1)", ErrInvalidConfig)
	case c.BaseConversionRate <= 0:
		return fmt.Errorf("%w: base_conversion_rate must be positive", ErrInvalidConfig)
	case c.SalesWindowMonths <= 0:
		return fmt.Errorf("%w: sales_window_months must be positive", ErrInvalidConfig)
	case c.PriorityUrgent <= c.PriorityHigh:
		return fmt.Errorf("%w: priority_urgent must exceed priority_high", ErrInvalidConfig)
	case c.OutputDir == "":
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	return nil
}
