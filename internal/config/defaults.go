package config

import "github.com/spf13/viper"

// Default values for optional configuration fields.
const (
	DefaultLogLevel          = "info"
	DefaultPremiumCurrency   = "USD"
	DefaultPremiumStartPrice = "100000000"
	DefaultPremiumDecay      = 0.5
	DefaultPremiumDays       = 21
	DefaultGracePeriodDays   = 90
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.file", "")

	v.SetDefault("display.with_prefix", true)
	v.SetDefault("display.with_suffix", false)

	v.SetDefault("rates.usd", "1")

	v.SetDefault("premium.currency", DefaultPremiumCurrency)
	v.SetDefault("premium.start_price", DefaultPremiumStartPrice)
	v.SetDefault("premium.decay", DefaultPremiumDecay)
	v.SetDefault("premium.days", DefaultPremiumDays)
	v.SetDefault("premium.grace_period_days", DefaultGracePeriodDays)
}
