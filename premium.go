package price

import (
	"fmt"
	"math"

	"github.com/namehash/price/chrono"
)

// Temporary premium defaults of the .eth registrar.
var (
	// PremiumStartPrice is the premium at the moment a name is released:
	// USD 100,000,000.00, before the offset is subtracted.
	PremiumStartPrice = NewPriceFromInt64(USD, 10_000_000_000)

	// PremiumDecay is the fraction of the premium left after each day.
	PremiumDecay = 0.5

	// TemporaryPremiumDays is the number of days after release at which the
	// premium reaches zero.
	TemporaryPremiumDays int64 = 21

	// GracePeriod is the time between the expiration of a name and its release.
	GracePeriod = chrono.MustNewDuration(90 * chrono.Day.Seconds())

	// DefaultPremium is the schedule built from the defaults above.
	DefaultPremium = MustNewPremiumSchedule(PremiumStartPrice, PremiumDecay, TemporaryPremiumDays, GracePeriod)

	// PremiumOffset is what PremiumStartPrice decays to after
	// TemporaryPremiumDays days (USD 47.68). Subtracting it from the decayed
	// price makes the premium reach exactly zero at the end of the window.
	PremiumOffset = DefaultPremium.Offset()
)

// PremiumSchedule computes the temporary premium added to the price of a
// name right after its grace period ends.
// The premium starts at a fixed price and decays exponentially, by a fixed
// factor per day, reaching zero after a fixed number of days.
//
// A PremiumSchedule is immutable and safe for concurrent use by multiple goroutines.
type PremiumSchedule struct {
	start  Price
	decay  float64
	days   int64
	grace  chrono.Duration
	offset Price
}

// NewPremiumSchedule returns a schedule whose premium starts at price start
// once the grace period is over, is multiplied by decay every day, and
// reaches zero after the given number of days.
// The offset, start * decay^days, is computed once here with the same
// fixed-point scaling as the premium itself.
//
// NewPremiumSchedule returns an error if:
//   - decay is not within (0, 1];
//   - days is not positive;
//   - start is negative.
func NewPremiumSchedule(start Price, decay float64, days int64, grace chrono.Duration) (PremiumSchedule, error) {
	if math.IsNaN(decay) || decay <= 0 || decay > 1 {
		return PremiumSchedule{}, fmt.Errorf("premium decay must be within (0, 1], got %v: %w", decay, ErrInvalidScalar)
	}
	if days <= 0 {
		return PremiumSchedule{}, fmt.Errorf("premium days must be positive, got %v: %w", days, ErrInvalidScalar)
	}
	if start.IsNeg() {
		return PremiumSchedule{}, fmt.Errorf("premium start price must not be negative, got %v: %w", start, ErrInvalidNumber)
	}
	offset, err := start.ApproxScale(math.Pow(decay, float64(days)), DefaultPrecisionDigits)
	if err != nil {
		return PremiumSchedule{}, fmt.Errorf("computing premium offset: %w", err)
	}
	return PremiumSchedule{
		start:  start,
		decay:  decay,
		days:   days,
		grace:  grace,
		offset: offset,
	}, nil
}

// MustNewPremiumSchedule is like [NewPremiumSchedule] but panics if the
// schedule cannot be constructed.
func MustNewPremiumSchedule(start Price, decay float64, days int64, grace chrono.Duration) PremiumSchedule {
	s, err := NewPremiumSchedule(start, decay, days, grace)
	if err != nil {
		panic(fmt.Sprintf("NewPremiumSchedule(%v, %v, %v, %v) failed: %v", start, decay, days, grace, err))
	}
	return s
}

// StartPrice returns the undecayed premium.
func (s PremiumSchedule) StartPrice() Price {
	return s.start
}

// Decay returns the fraction of the premium left after each day.
func (s PremiumSchedule) Decay() float64 {
	return s.decay
}

// Days returns the length of the premium window in days.
func (s PremiumSchedule) Days() int64 {
	return s.days
}

// GracePeriod returns the time between expiration and release.
func (s PremiumSchedule) GracePeriod() chrono.Duration {
	return s.grace
}

// Offset returns the start price decayed over the whole window.
func (s PremiumSchedule) Offset() Price {
	return s.offset
}

// ReleaseTime returns the instant a name that expired at expiration becomes
// available for registration.
func (s PremiumSchedule) ReleaseTime(expiration chrono.Timestamp) chrono.Timestamp {
	return expiration.Add(s.grace)
}

// EndTime returns the instant the premium of a name that expired at
// expiration reaches zero. Like [chrono.Timestamp.Add] it saturates at
// [chrono.MaxTimestamp].
func (s PremiumSchedule) EndTime(expiration chrono.Timestamp) chrono.Timestamp {
	return s.ReleaseTime(expiration).Add(s.window())
}

// Window returns the period during which the premium of a name that expired
// at expiration decays, from release to the end of the window.
func (s PremiumSchedule) Window(expiration chrono.Timestamp) chrono.TimePeriod {
	p, err := chrono.NewTimePeriod(s.ReleaseTime(expiration), s.EndTime(expiration))
	if err != nil {
		// timestamp addition saturates, so release never comes after the end
		panic(fmt.Sprintf("%v.Window(%v) failed: %v", s, expiration, err))
	}
	return p
}

func (s PremiumSchedule) window() chrono.Duration {
	d, err := chrono.Day.Mul(s.days)
	if err != nil {
		return chrono.MustNewDuration(math.MaxInt64)
	}
	return d
}

// At returns the temporary premium at instant at of a name that expired at
// instant expiration.
//
// Before release (expiration + grace period) the premium is zero.
// From release on it is start * decay^(secondsSinceRelease / 86400) - offset,
// where the fractional days are computed in floating point and the scaling
// keeps [DefaultPrecisionDigits] digits of the decay factor.
// Results below zero are clamped to zero, so the premium is exactly zero from
// the end of the window on.
func (s PremiumSchedule) At(at, expiration chrono.Timestamp) Price {
	sinceRelease := at.Diff(s.ReleaseTime(expiration))
	if sinceRelease < 0 {
		return ZeroPrice(s.start.Curr())
	}
	days := float64(sinceRelease) / float64(chrono.Day.Seconds())
	decayed, err := s.start.ApproxScale(math.Pow(s.decay, days), DefaultPrecisionDigits)
	if err != nil {
		// decay is within (0, 1], so the factor is always finite
		panic(fmt.Sprintf("%v.At(%v, %v) failed: %v", s, at, expiration, err))
	}
	premium, err := decayed.Sub(s.offset)
	if err != nil {
		panic(fmt.Sprintf("%v.At(%v, %v) failed: %v", s, at, expiration, err))
	}
	if premium.IsNeg() {
		return ZeroPrice(s.start.Curr())
	}
	return premium
}

// String returns a summary of the schedule, such as
// "USD 100000000.00 * 0.5^days for 21 days after 7776000s".
func (s PremiumSchedule) String() string {
	return fmt.Sprintf("%v * %v^days for %v days after %v", s.start, s.decay, s.days, s.grace)
}

// TemporaryPremiumAt returns the temporary premium of a .eth name that
// expired at instant expiration, evaluated at instant at, using
// [DefaultPremium].
func TemporaryPremiumAt(at, expiration chrono.Timestamp) Price {
	return DefaultPremium.At(at, expiration)
}
