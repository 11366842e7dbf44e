package price

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Formatted returns the price as a display string in a fixed en-US style,
// such as "1,234.57", "$1,234.57" or "1,234.57 USD".
//
// The value is rounded half away from zero to the currency's display decimals.
// Zero renders as "0." followed by the display decimals in zeros.
// Non-zero values at or below the currency's minimum display value, which
// includes every negative value, render as the currency's underflow label
// (for example "<0.001"), as do values that would display as zero.
// Values above the currency's maximum display value render as the overflow
// label (for example ">999,999").
//
// With withPrefix, the currency symbol is prepended, unless withSuffix is also
// set and the symbol equals the acronym. With withSuffix, a space and the
// currency acronym are appended.
func (p Price) Formatted(withPrefix, withSuffix bool) string {
	spec := p.curr.Spec()
	amount := formatAmount(p.value0(), spec)

	var b strings.Builder
	if withPrefix && spec.Symbol != "" && (!withSuffix || spec.Symbol != spec.Acronym) {
		b.WriteString(spec.Symbol)
	}
	b.WriteString(amount)
	if withSuffix && spec.Acronym != "" {
		b.WriteByte(' ')
		b.WriteString(spec.Acronym)
	}
	return b.String()
}

func formatAmount(value *big.Int, spec CurrencyFormat) string {
	if value.Sign() == 0 {
		if spec.DisplayDecimals == 0 {
			return "0"
		}
		return "0." + strings.Repeat("0", spec.DisplayDecimals)
	}
	if value.Cmp(big.NewInt(spec.MinDisplayValue)) <= 0 {
		return spec.UnderflowLabel
	}

	dd := int32(spec.DisplayDecimals)
	display := decimal.NewFromBigInt(value, -int32(spec.Decimals)).Round(dd)
	switch {
	case display.IsZero():
		return spec.UnderflowLabel
	case display.GreaterThan(decimal.NewFromInt(spec.MaxDisplayValue)):
		return spec.OverflowLabel
	}
	return groupThousands(display.StringFixed(dd))
}

// groupThousands inserts a comma between every group of three integer digits
// of an unsigned decimal string.
func groupThousands(s string) string {
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return s
	}

	buf := make([]byte, 0, len(intPart)+len(intPart)/3+len(fracPart))
	lead := len(intPart) % 3
	if lead > 0 {
		buf = append(buf, intPart[:lead]...)
	}
	for i := lead; i < len(intPart); i += 3 {
		if len(buf) > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, intPart[i:i+3]...)
	}
	buf = append(buf, fracPart...)
	return string(buf)
}
