package price

import (
	"testing"
)

func TestPrice_Formatted(t *testing.T) {
	t.Run("amount", func(t *testing.T) {
		tests := []struct {
			p    Price
			want string
		}{
			// zero
			{ZeroPrice(USD), "0.00"},
			{ZeroPrice(ETH), "0.000"},
			{ZeroPrice(XXX), "0"},
			// grouping
			{NewPriceFromInt64(USD, 2), "0.02"},
			{NewPriceFromInt64(USD, 99999), "999.99"},
			{NewPriceFromInt64(USD, 123456), "1,234.56"},
			{NewPriceFromInt64(USD, 10_000_000_000), "100,000,000.00"},
			{NewPriceFromInt64(USD, 9_999_995_232), "99,999,952.32"},
			{NewPriceFromInt64(XXX, 1234567), "1,234,567"},
			// rounding
			{MustParsePrice(ETH, "1.5"), "1.500"},
			{MustParsePrice(ETH, "1234.5678"), "1,234.568"},
			{MustParsePrice(ETH, "0.0015"), "0.002"},
			{MustParsePrice(USDC, "0.995"), "1.00"},
			{MustParsePrice(DAI, "0.99999703"), "1.00"},
			// underflow
			{MustParsePrice(ETH, "0.0001"), "<0.001"},
			{MustParsePrice(ETH, "0.0005"), "<0.001"},
			{NewPriceFromInt64(ETH, 1), "<0.001"},
			{MustParsePrice(ETH, "0.001"), "<0.001"},
			{MustParsePrice(ETH, "0.001000000000000001"), "0.001"},
			{NewPriceFromInt64(USD, 1), "<0.01"},
			{MustParsePrice(USDC, "0.01"), "<0.01"},
			{MustParsePrice(USDC, "0.010001"), "0.01"},
			{NewPriceFromInt64(XXX, 1), "1"},
			{MustParsePrice(DAI, "0.001"), "<0.01"},
			{MustParsePrice(USDC, "0.000001"), "<0.01"},
			// overflow
			{MustParsePrice(ETH, "999999"), "999,999.000"},
			{MustParsePrice(ETH, "1000000"), ">999,999"},
			{MustParsePrice(USD, "1000000000"), ">999,999,999"},
			// negative
			{NewPriceFromInt64(USD, -5), "<0.01"},
			{NewPriceFromInt64(USD, -123456), "<0.01"},
			{MustParsePrice(ETH, "-0.0001"), "<0.001"},
			{MustParsePrice(ETH, "-1000000"), "<0.001"},
			{NewPriceFromInt64(XXX, -1), "<1"},
		}
		for _, tt := range tests {
			got := tt.p.Formatted(false, false)
			if got != tt.want {
				t.Errorf("%v.Formatted(false, false) = %q, want %q", tt.p, got, tt.want)
			}
		}
	})

	t.Run("affixes", func(t *testing.T) {
		tests := []struct {
			p                      Price
			withPrefix, withSuffix bool
			want                   string
		}{
			{ZeroPrice(USD), true, false, "$0.00"},
			{ZeroPrice(USD), false, true, "0.00 USD"},
			{ZeroPrice(USD), true, true, "$0.00 USD"},
			{MustParsePrice(ETH, "1.5"), true, false, "Ξ1.500"},
			{MustParsePrice(ETH, "1.5"), false, true, "1.500 ETH"},
			{MustParsePrice(ETH, "1.5"), true, true, "Ξ1.500 ETH"},
			{MustParsePrice(USDC, "1"), true, false, "USDC1.00"},
			{MustParsePrice(USDC, "1"), false, true, "1.00 USDC"},
			{MustParsePrice(USDC, "1"), true, true, "1.00 USDC"},
			{MustParsePrice(WETH, "2"), true, true, "2.000 WETH"},
			{MustParsePrice(DAI, "0.001"), true, true, "<0.01 DAI"},
			{MustParsePrice(ETH, "1000000"), true, true, "Ξ>999,999 ETH"},
			{NewPriceFromInt64(XXX, 5), true, false, "5"},
			{NewPriceFromInt64(XXX, 5), false, true, "5 XXX"},
		}
		for _, tt := range tests {
			got := tt.p.Formatted(tt.withPrefix, tt.withSuffix)
			if got != tt.want {
				t.Errorf("%v.Formatted(%v, %v) = %q, want %q", tt.p, tt.withPrefix, tt.withSuffix, got, tt.want)
			}
		}
	})
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"0", "0"},
		{"123", "123"},
		{"123.45", "123.45"},
		{"1234", "1,234"},
		{"12345.6", "12,345.6"},
		{"123456.78", "123,456.78"},
		{"1234567", "1,234,567"},
		{"100000000.00", "100,000,000.00"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.s); got != tt.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}
