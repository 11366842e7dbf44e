package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/namehash/price"
	"github.com/namehash/price/chrono"
)

// EnvPrefix prefixes the environment variables that override file settings,
// e.g. ENSPREMIUM_LOG_LEVEL overrides log.level.
const EnvPrefix = "ENSPREMIUM"

// Config is the enspremium configuration.
type Config struct {
	Log     LogConfig         `mapstructure:"log"`
	Display DisplayConfig     `mapstructure:"display"`
	Rates   map[string]string `mapstructure:"rates"`
	Premium PremiumConfig     `mapstructure:"premium"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type DisplayConfig struct {
	WithPrefix bool `mapstructure:"with_prefix"`
	WithSuffix bool `mapstructure:"with_suffix"`
}

// PremiumConfig describes the temporary premium schedule.
// StartPrice is a decimal amount of Currency.
type PremiumConfig struct {
	Currency        string  `mapstructure:"currency"`
	StartPrice      string  `mapstructure:"start_price"`
	Decay           float64 `mapstructure:"decay"`
	Days            int64   `mapstructure:"days"`
	GracePeriodDays int64   `mapstructure:"grace_period_days"`
}

// Load reads the YAML file at path, or enspremium.yaml from the working
// directory or ./config when path is empty, on top of the built-in defaults.
// A .env file in the working directory is loaded first if present, and
// ENSPREMIUM_* variables override file values.
// The returned Config has not been validated.
func Load(path string) (*Config, error) {
	// a missing .env is not an error
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("enspremium")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	return &cfg, nil
}

// ExchangeRates returns the configured rates.
func (c *Config) ExchangeRates() (price.ExchangeRates, error) {
	return price.ParseExchangeRates(c.Rates)
}

// PremiumSchedule returns the configured premium schedule.
func (c *Config) PremiumSchedule() (price.PremiumSchedule, error) {
	curr, err := price.ParseCurr(c.Premium.Currency)
	if err != nil {
		return price.PremiumSchedule{}, fmt.Errorf("premium.currency: %w", err)
	}
	start, err := price.ParsePrice(curr, c.Premium.StartPrice)
	if err != nil {
		return price.PremiumSchedule{}, fmt.Errorf("premium.start_price: %w", err)
	}
	grace, err := chrono.Day.Mul(c.Premium.GracePeriodDays)
	if err != nil {
		return price.PremiumSchedule{}, fmt.Errorf("premium.grace_period_days: %w", err)
	}
	return price.NewPremiumSchedule(start, c.Premium.Decay, c.Premium.Days, grace)
}
