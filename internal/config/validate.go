package config

import (
	"errors"
	"fmt"
	"math"
)

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks that all values are within range and that rates and the
// premium schedule can be built.
func (c *Config) Validate() error {
	if !logLevels[c.Log.Level] {
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	if len(c.Rates) == 0 {
		return errors.New("rates must not be empty")
	}
	if _, err := c.ExchangeRates(); err != nil {
		return fmt.Errorf("rates: %w", err)
	}

	if err := c.Premium.validate("premium"); err != nil {
		return err
	}
	if _, err := c.PremiumSchedule(); err != nil {
		return err
	}
	return nil
}

func (p *PremiumConfig) validate(prefix string) error {
	if p.StartPrice == "" {
		return fmt.Errorf("%s.start_price is required", prefix)
	}
	if math.IsNaN(p.Decay) || p.Decay <= 0 || p.Decay > 1 {
		return fmt.Errorf("%s.decay must be within (0, 1], got %v", prefix, p.Decay)
	}
	if p.Days < 1 {
		return fmt.Errorf("%s.days must be >= 1", prefix)
	}
	if p.GracePeriodDays < 0 {
		return fmt.Errorf("%s.grace_period_days must be >= 0", prefix)
	}
	return nil
}
