package chrono

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidDuration is returned when a duration would hold a negative
	// number of seconds.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrInvalidTimePeriod is returned when a time period begins after it ends.
	ErrInvalidTimePeriod = errors.New("invalid time period")
	// ErrInvalidScalar is returned for non-finite or sign-violating scaling factors.
	ErrInvalidScalar = errors.New("invalid scalar")
	// ErrInvalidNumber is returned for malformed numeric input.
	ErrInvalidNumber = errors.New("invalid number")
)

// Duration is a non-negative span of time measured in whole seconds.
// Its zero value is a duration of 0 seconds.
// Duration is immutable and safe for concurrent use by multiple goroutines.
type Duration struct {
	seconds int64
}

// Common durations.
var (
	Second = Duration{seconds: 1}
	Minute = Duration{seconds: 60}
	Hour   = Duration{seconds: 60 * 60}
	Day    = Duration{seconds: 24 * 60 * 60}
	Week   = Duration{seconds: 7 * 24 * 60 * 60}
	// Year is the length of an average Gregorian calendar year (365.2425 days).
	Year = Duration{seconds: 31_556_952}
)

// NewDuration returns a duration of the given number of seconds.
//
// NewDuration returns an error if seconds is negative.
func NewDuration(seconds int64) (Duration, error) {
	if seconds < 0 {
		return Duration{}, fmt.Errorf("building duration of %v seconds: %w", seconds, ErrInvalidDuration)
	}
	return Duration{seconds: seconds}, nil
}

// MustNewDuration is like [NewDuration] but panics if the duration cannot be constructed.
// It simplifies safe initialization of global variables holding durations.
func MustNewDuration(seconds int64) Duration {
	d, err := NewDuration(seconds)
	if err != nil {
		panic(fmt.Sprintf("NewDuration(%v) failed: %v", seconds, err))
	}
	return d
}

// ParseDuration converts a decimal string of whole seconds to a duration.
//
// ParseDuration returns an error if:
//   - the string is not a base-10 integer;
//   - the integer is negative.
func ParseDuration(s string) (Duration, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Duration{}, fmt.Errorf("parsing duration %q: %w", s, ErrInvalidNumber)
	}
	return NewDuration(n)
}

// Seconds returns the number of seconds in the duration.
func (d Duration) Seconds() int64 {
	return d.seconds
}

// Days returns the duration as a fractional number of days.
func (d Duration) Days() float64 {
	return float64(d.seconds) / float64(Day.seconds)
}

// IsZero returns true if the duration is 0 seconds long.
func (d Duration) IsZero() bool {
	return d.seconds == 0
}

// Add returns the sum of durations d and e.
//
// Add returns an error if the sum overflows int64.
func (d Duration) Add(e Duration) (Duration, error) {
	if d.seconds > math.MaxInt64-e.seconds {
		return Duration{}, fmt.Errorf("computing [%v + %v]: %w", d, e, ErrInvalidDuration)
	}
	return Duration{seconds: d.seconds + e.seconds}, nil
}

// Mul returns the duration scaled by an integer factor.
//
// Mul returns an error if:
//   - the factor is negative;
//   - the result overflows int64.
func (d Duration) Mul(n int64) (Duration, error) {
	if n < 0 {
		return Duration{}, fmt.Errorf("computing [%v * %v]: %w", d, n, ErrInvalidScalar)
	}
	if n != 0 && d.seconds > math.MaxInt64/n {
		return Duration{}, fmt.Errorf("computing [%v * %v]: overflow: %w", d, n, ErrInvalidScalar)
	}
	return Duration{seconds: d.seconds * n}, nil
}

// MulFloat returns the duration scaled by a real factor.
// The product is computed in decimal arithmetic and truncated toward zero
// to whole seconds.
//
// MulFloat returns an error if:
//   - the factor is NaN or infinite;
//   - the factor is negative;
//   - the result does not fit into int64 seconds.
func (d Duration) MulFloat(f float64) (Duration, error) {
	r, err := d.mulFloat(f)
	if err != nil {
		return Duration{}, fmt.Errorf("computing [%v * %v]: %w", d, f, err)
	}
	return r, nil
}

func (d Duration) mulFloat(f float64) (Duration, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Duration{}, fmt.Errorf("special value: %w", ErrInvalidScalar)
	}
	if f < 0 {
		return Duration{}, fmt.Errorf("negative factor: %w", ErrInvalidScalar)
	}
	e, err := decimal.NewFromFloat64(f)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %w", ErrInvalidScalar, err)
	}
	s, err := decimal.New(d.seconds, 0)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %w", ErrInvalidScalar, err)
	}
	p, err := s.Mul(e)
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %w", ErrInvalidScalar, err)
	}
	whole, _, ok := p.Trunc(0).Int64(0)
	if !ok {
		return Duration{}, fmt.Errorf("overflow: %w", ErrInvalidScalar)
	}
	return Duration{seconds: whole}, nil
}

// String returns the duration as a number of seconds followed by "s".
func (d Duration) String() string {
	return strconv.FormatInt(d.seconds, 10) + "s"
}
