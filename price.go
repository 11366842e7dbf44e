package price

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// Price type represents a monetary value as an exact integer number of the
// smallest scaled unit of its currency, that is value / 10^decimals.
// For example, USD 1.23 is stored as 123 and ETH 1 as 10^18.
//
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Price is immutable: every operation returns a new Price, and the integer
// is never shared with callers. It is safe for concurrent use by multiple goroutines.
type Price struct {
	curr  Currency
	value *big.Int // scaled by 10^curr.Decimals(); nil means 0
}

// NewPrice returns a price of value scaled units of currency curr.
// The value is copied.
func NewPrice(curr Currency, value *big.Int) Price {
	if value == nil {
		return Price{curr: curr}
	}
	return Price{curr: curr, value: new(big.Int).Set(value)}
}

// NewPriceFromInt64 returns a price of value scaled units of currency curr.
func NewPriceFromInt64(curr Currency, value int64) Price {
	return Price{curr: curr, value: big.NewInt(value)}
}

// ZeroPrice returns a price of 0 in currency curr.
func ZeroPrice(curr Currency) Price {
	return Price{curr: curr}
}

// NewPriceFromFloat64 converts a number to a price, rounding it to the
// currency's decimals (half away from zero).
// The number is taken at its shortest round-trip decimal representation,
// so numbers held in scientific notation such as 1e-7 lose no digits.
// See also method [Price.Float64].
//
// NewPriceFromFloat64 returns an error if the number is NaN or infinite.
func NewPriceFromFloat64(curr Currency, number float64) (Price, error) {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return Price{}, fmt.Errorf("converting %v to %v: special value: %w", number, curr, ErrInvalidNumber)
	}
	return newPriceFromDecimal(curr, decimal.NewFromFloat(number)), nil
}

// ParsePrice converts a decimal string, such as "1234.56" or "1.5e-3",
// to a price, rounding it to the currency's decimals (half away from zero).
// See also constructor [ParseCurr].
//
// ParsePrice returns an error if the string is not a valid decimal number.
func ParsePrice(curr Currency, s string) (Price, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("parsing %q as %v: %w", s, curr, ErrInvalidNumber)
	}
	return newPriceFromDecimal(curr, d), nil
}

// MustParsePrice is like [ParsePrice] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding prices.
func MustParsePrice(curr Currency, s string) Price {
	p, err := ParsePrice(curr, s)
	if err != nil {
		panic(fmt.Sprintf("ParsePrice(%v, %q) failed: %v", curr, s, err))
	}
	return p
}

func newPriceFromDecimal(curr Currency, d decimal.Decimal) Price {
	dec := int32(curr.Decimals())
	return Price{curr: curr, value: d.Round(dec).Shift(dec).BigInt()}
}

// Curr returns the currency of the price.
func (p Price) Curr() Currency {
	return p.curr
}

// Value returns a copy of the price in scaled units of its currency.
func (p Price) Value() *big.Int {
	if p.value == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(p.value)
}

// Decimal returns the price in whole units of its currency, exactly.
func (p Price) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(p.Value(), -int32(p.curr.Decimals()))
}

// Float64 returns the price in whole units of its currency as the nearest
// float64, that is value / 10^decimals.
// The conversion may lose precision for large values and is intended for
// display and interoperability, not for further monetary computation.
// See also constructor [NewPriceFromFloat64].
func (p Price) Float64() float64 {
	f, _ := p.Decimal().Float64()
	return f
}

// Sign returns:
//
//	-1 if p < 0
//	 0 if p = 0
//	+1 if p > 0
func (p Price) Sign() int {
	if p.value == nil {
		return 0
	}
	return p.value.Sign()
}

// IsZero returns true if the price is 0.
func (p Price) IsZero() bool {
	return p.Sign() == 0
}

// IsNeg returns true if the price is below 0.
func (p Price) IsNeg() bool {
	return p.Sign() < 0
}

// Neg returns a price with the opposite sign.
func (p Price) Neg() Price {
	return Price{curr: p.curr, value: new(big.Int).Neg(p.Value())}
}

// Abs returns the absolute value of the price.
func (p Price) Abs() Price {
	return Price{curr: p.curr, value: new(big.Int).Abs(p.Value())}
}

// SameCurr returns true if prices are denominated in the same currency.
func (p Price) SameCurr(q Price) bool {
	return p.curr == q.curr
}

// Equal returns true if prices have the same currency and value.
func (p Price) Equal(q Price) bool {
	return p.SameCurr(q) && p.Value().Cmp(q.Value()) == 0
}

// Cmp compares prices and returns:
//
//	-1 if p < q
//	 0 if p = q
//	+1 if p > q
//
// Cmp returns an error if prices are denominated in different currencies.
func (p Price) Cmp(q Price) (int, error) {
	if !p.SameCurr(q) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", p, q, ErrCurrencyMismatch)
	}
	return p.Value().Cmp(q.Value()), nil
}

// Add returns the exact sum of prices p and q.
//
// Add returns an error if prices are denominated in different currencies.
func (p Price) Add(q Price) (Price, error) {
	if !p.SameCurr(q) {
		return Price{}, fmt.Errorf("computing [%v + %v]: %w", p, q, ErrCurrencyMismatch)
	}
	return Price{curr: p.curr, value: new(big.Int).Add(p.Value(), q.value0())}, nil
}

// Sub returns the exact difference between prices p and q.
// The result may be negative.
//
// Sub returns an error if prices are denominated in different currencies.
func (p Price) Sub(q Price) (Price, error) {
	if !p.SameCurr(q) {
		return Price{}, fmt.Errorf("computing [%v - %v]: %w", p, q, ErrCurrencyMismatch)
	}
	return Price{curr: p.curr, value: new(big.Int).Sub(p.Value(), q.value0())}, nil
}

// AddPrices returns the exact sum of all prices.
//
// AddPrices returns an error if:
//   - no prices are given;
//   - prices are denominated in different currencies.
func AddPrices(prices ...Price) (Price, error) {
	if len(prices) == 0 {
		return Price{}, fmt.Errorf("adding prices: %w", ErrEmptyPrices)
	}
	curr := prices[0].Curr()
	sum := new(big.Int)
	for _, p := range prices {
		if p.Curr() != curr {
			return Price{}, fmt.Errorf("adding prices of currencies %v: %w", currencies(prices), ErrCurrencyMismatch)
		}
		sum.Add(sum, p.value0())
	}
	return Price{curr: curr, value: sum}, nil
}

func currencies(prices []Price) []Currency {
	res := make([]Currency, len(prices))
	for i, p := range prices {
		res[i] = p.Curr()
	}
	return res
}

// MulFloat returns the price multiplied by a real scalar.
// The scalar is first converted to a price in the same currency, rounded to
// the currency's decimals; the two scaled integers are then multiplied and
// divided by 10^decimals, truncating toward zero.
//
// MulFloat returns an error if the scalar is NaN or infinite.
func (p Price) MulFloat(scalar float64) (Price, error) {
	s, err := NewPriceFromFloat64(p.curr, scalar)
	if err != nil {
		return Price{}, fmt.Errorf("computing [%v * %v]: %w", p, scalar, err)
	}
	res := new(big.Int).Mul(p.value0(), s.value0())
	res.Quo(res, pow10(p.curr.Decimals()))
	return Price{curr: p.curr, value: res}, nil
}

// ApproxScale returns the price multiplied by factor, keeping precisionDigits
// fraction digits of the factor.
// See function [ApproxScale] for the rounding rules.
func (p Price) ApproxScale(factor float64, precisionDigits int) (Price, error) {
	v, err := ApproxScale(p.value0(), factor, precisionDigits)
	if err != nil {
		return Price{}, err
	}
	return Price{curr: p.curr, value: v}, nil
}

// value0 returns the scaled value without copying.
// The result must not be modified.
func (p Price) value0() *big.Int {
	if p.value == nil {
		return new(big.Int)
	}
	return p.value
}

// String implements the [fmt.Stringer] interface and returns the currency
// code followed by the exact decimal value, such as "USD 1.23".
// See also method [Price.Formatted].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (p Price) String() string {
	return p.curr.Code() + " " + p.Decimal().StringFixed(int32(p.curr.Decimals()))
}

type priceJSON struct {
	Value    string   `json:"value"`
	Currency Currency `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The value is encoded as a string of scaled units, such as
// {"value":"123","currency":"USD"}.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(priceJSON{Value: p.value0().String(), Currency: p.curr})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (p *Price) UnmarshalJSON(text []byte) error {
	var raw priceJSON
	if err := json.Unmarshal(text, &raw); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Price{}, err)
	}
	v, ok := new(big.Int).SetString(raw.Value, 10)
	if !ok {
		return fmt.Errorf("unmarshaling %T: value %q: %w", Price{}, raw.Value, ErrInvalidNumber)
	}
	*p = Price{curr: raw.Currency, value: v}
	return nil
}
