package price

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// DefaultPrecisionDigits is the number of decimal digits of a scaling factor
// retained by [ApproxScale] when no other precision is requested.
const DefaultPrecisionDigits = 20

var pow10Lookup = func() [40]*big.Int {
	var res [40]*big.Int
	ten := big.NewInt(10)
	res[0] = big.NewInt(1)
	for i := 1; i < len(res); i++ {
		res[i] = new(big.Int).Mul(res[i-1], ten)
	}
	return res
}()

// pow10 returns 10^n. The result must not be modified.
func pow10(n int) *big.Int {
	if n < len(pow10Lookup) {
		return pow10Lookup[n]
	}
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ApproxScale returns value multiplied by factor.
//
// The factor is taken at its shortest round-trip decimal representation and
// truncated to precisionDigits fraction digits, giving an integer numerator
// over 10^precisionDigits. The value is multiplied by that numerator in
// arbitrary precision and divided by 10^precisionDigits, truncating toward zero.
// The division is the only rounding step, and value never passes through
// a floating-point type.
//
// ApproxScale returns an error if:
//   - the factor is NaN or infinite;
//   - precisionDigits is negative.
func ApproxScale(value *big.Int, factor float64, precisionDigits int) (*big.Int, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("scaling %v by %v: special value: %w", value, factor, ErrInvalidScalar)
	}
	if precisionDigits < 0 {
		return nil, fmt.Errorf("scaling %v by %v: negative precision %v: %w", value, factor, precisionDigits, ErrInvalidScalar)
	}
	if value == nil {
		return new(big.Int), nil
	}
	num := decimal.NewFromFloat(factor).Shift(int32(precisionDigits)).BigInt()
	res := new(big.Int).Mul(value, num)
	return res.Quo(res, pow10(precisionDigits)), nil
}
