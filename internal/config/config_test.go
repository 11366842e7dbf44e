package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/namehash/price"
	"github.com/namehash/price/chrono"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "enspremium.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
log:
  level: debug
  file: /tmp/enspremium.log
display:
  with_prefix: false
  with_suffix: true
rates:
  ETH: "1737.16"
  USD: "1"
  DAI: "0.99999703"
premium:
  days: 28
`
	cfg, err := Load(writeTempFile(t, yaml))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/enspremium.log", cfg.Log.File)
	assert.False(t, cfg.Display.WithPrefix)
	assert.True(t, cfg.Display.WithSuffix)
	assert.Equal(t, map[string]string{"eth": "1737.16", "usd": "1", "dai": "0.99999703"}, cfg.Rates)
	assert.Equal(t, int64(28), cfg.Premium.Days)
	assert.NoError(t, cfg.Validate())

	rates, err := cfg.ExchangeRates()
	require.NoError(t, err)
	assert.Equal(t, 1737.16, rates[price.ETH])
	assert.Equal(t, 0.99999703, rates[price.DAI])
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := Load(writeTempFile(t, "log:\n  level: info\n"))
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.True(t, cfg.Display.WithPrefix)
	assert.False(t, cfg.Display.WithSuffix)
	assert.Equal(t, map[string]string{"usd": "1"}, cfg.Rates)
	assert.Equal(t, DefaultPremiumCurrency, cfg.Premium.Currency)
	assert.Equal(t, DefaultPremiumStartPrice, cfg.Premium.StartPrice)
	assert.Equal(t, DefaultPremiumDecay, cfg.Premium.Decay)
	assert.Equal(t, int64(DefaultPremiumDays), cfg.Premium.Days)
	assert.Equal(t, int64(DefaultGracePeriodDays), cfg.Premium.GracePeriodDays)
	require.NoError(t, cfg.Validate())

	s, err := cfg.PremiumSchedule()
	require.NoError(t, err)
	assert.True(t, s.StartPrice().Equal(price.PremiumStartPrice))
	assert.True(t, s.Offset().Equal(price.PremiumOffset))
	assert.Equal(t, price.GracePeriod, s.GracePeriod())

	expiration := chrono.NewTimestamp(1_700_000_000)
	assert.True(t, s.At(s.ReleaseTime(expiration), expiration).Equal(price.DefaultPremium.At(price.DefaultPremium.ReleaseTime(expiration), expiration)))
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("ENSPREMIUM_LOG_LEVEL", "warn")
	t.Setenv("ENSPREMIUM_PREMIUM_DECAY", "0.25")
	t.Setenv("ENSPREMIUM_RATES_ETH", "2048")

	yaml := `
rates:
  eth: "1737.16"
`
	cfg, err := Load(writeTempFile(t, yaml))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 0.25, cfg.Premium.Decay)
	assert.Equal(t, "2048", cfg.Rates["eth"])
	assert.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Log:   LogConfig{Level: "info"},
			Rates: map[string]string{"usd": "1", "eth": "1737.16"},
			Premium: PremiumConfig{
				Currency:        "USD",
				StartPrice:      "100000000",
				Decay:           0.5,
				Days:            21,
				GracePeriodDays: 90,
			},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		modify func(c *Config)
		want   string
	}{
		{"log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
		{"empty rates", func(c *Config) { c.Rates = nil }, "rates must not be empty"},
		{"unknown rate currency", func(c *Config) { c.Rates["btc"] = "60000" }, "rates"},
		{"negative rate", func(c *Config) { c.Rates["eth"] = "-1" }, "rates"},
		{"missing start price", func(c *Config) { c.Premium.StartPrice = "" }, "premium.start_price"},
		{"bad start price", func(c *Config) { c.Premium.StartPrice = "lots" }, "premium.start_price"},
		{"bad currency", func(c *Config) { c.Premium.Currency = "EUR" }, "premium.currency"},
		{"zero decay", func(c *Config) { c.Premium.Decay = 0 }, "premium.decay"},
		{"large decay", func(c *Config) { c.Premium.Decay = 1.5 }, "premium.decay"},
		{"zero days", func(c *Config) { c.Premium.Days = 0 }, "premium.days"},
		{"negative grace", func(c *Config) { c.Premium.GracePeriodDays = -1 }, "premium.grace_period_days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.modify(c)
			err := c.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
