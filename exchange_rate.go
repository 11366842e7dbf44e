package price

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/govalues/decimal"
)

// ExchangeRates maps currencies to their rate in a common reference unit,
// usually US dollars. For example:
//
//	{ETH: 1737.16, DAI: 0.99999703, USDC: 1, WETH: 1737.16, USD: 1}
//
// An ExchangeRates value is a snapshot supplied by the caller for one or more
// conversions; it is only read, never cached or modified.
type ExchangeRates map[Currency]float64

// NewExchangeRates returns a copy of rates after checking that every rate is
// finite and positive.
func NewExchangeRates(rates map[Currency]float64) (ExchangeRates, error) {
	res := make(ExchangeRates, len(rates))
	for c, r := range rates {
		if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
			return nil, fmt.Errorf("exchange rate of %v must be positive, got %v: %w", c, r, ErrInvalidNumber)
		}
		res[c] = r
	}
	return res, nil
}

// ParseExchangeRates converts currency codes and decimal strings, such as
// {"ETH": "1737.16", "USD": "1"}, to exchange rates.
// See also constructors [ParseCurr] and [NewExchangeRates].
//
// ParseExchangeRates returns an error if:
//   - a currency code is not known;
//   - a rate is not a valid decimal or is not positive.
func ParseExchangeRates(rates map[string]string) (ExchangeRates, error) {
	res := make(map[Currency]float64, len(rates))
	for code, rate := range rates {
		c, err := ParseCurr(code)
		if err != nil {
			return nil, fmt.Errorf("parsing exchange rates: %w", err)
		}
		d, err := decimal.Parse(rate)
		if err != nil {
			return nil, fmt.Errorf("parsing exchange rate of %v %q: %w: %w", c, rate, ErrInvalidNumber, err)
		}
		if !d.IsPos() {
			return nil, fmt.Errorf("exchange rate of %v must be positive, got %v: %w", c, d, ErrInvalidNumber)
		}
		f, ok := d.Float64()
		if !ok {
			return nil, fmt.Errorf("exchange rate of %v %v is out of range: %w", c, d, ErrInvalidNumber)
		}
		res[c] = f
	}
	return NewExchangeRates(res)
}

// Rate returns the rate of currency c.
//
// Rate returns an error if the currency is missing from the table.
func (r ExchangeRates) Rate(c Currency) (float64, error) {
	rate, ok := r[c]
	if !ok {
		return 0, fmt.Errorf("exchange rate of %v: %w", c, ErrUnknownCurrency)
	}
	return rate, nil
}

// CanConv returns true if [ConvertCurrency] can convert between currencies
// from and to with these rates.
func (r ExchangeRates) CanConv(from, to Currency) bool {
	_, ok1 := r[from]
	_, ok2 := r[to]
	return ok1 && ok2
}

// String returns the rates ordered by currency code, such as
// "ETH=1737.16 USD=1".
func (r ExchangeRates) String() string {
	codes := make([]string, 0, len(r))
	for c := range r {
		codes = append(codes, c.Code())
	}
	sort.Strings(codes)
	parts := make([]string, len(codes))
	for i, code := range codes {
		parts[i] = fmt.Sprintf("%v=%v", code, r[MustParseCurr(code)])
	}
	return strings.Join(parts, " ")
}

// ConvertCurrency converts price p to currency to.
// The conversion rate is rates[p.Curr()] / rates[to]; the price is converted
// to a number, multiplied by the rate, and converted back to a price rounded
// to the decimals of the target currency.
//
// ConvertCurrency returns an error if:
//   - either currency is missing from rates;
//   - the rate of the target currency is zero or the result is not finite.
func ConvertCurrency(p Price, to Currency, rates ExchangeRates) (Price, error) {
	q, err := convertCurrency(p, to, rates)
	if err != nil {
		return Price{}, fmt.Errorf("converting [%v] to %v: %w", p, to, err)
	}
	return q, nil
}

func convertCurrency(p Price, to Currency, rates ExchangeRates) (Price, error) {
	fromRate, err := rates.Rate(p.Curr())
	if err != nil {
		return Price{}, err
	}
	toRate, err := rates.Rate(to)
	if err != nil {
		return Price{}, err
	}
	if p.Curr() == to {
		return p, nil
	}
	rate := fromRate / toRate
	return NewPriceFromFloat64(to, p.Float64()*rate)
}
