package chrono

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Timestamp is an instant measured in seconds since the Unix epoch.
// It may be negative to represent an instant before the epoch.
// Its zero value is the Unix epoch.
type Timestamp struct {
	time int64
}

// TimestampMs is an instant measured in milliseconds since the Unix epoch.
// It may be negative to represent an instant before the epoch.
type TimestampMs struct {
	timeMs int64
}

// Bounds of the timestamp range. Arithmetic on timestamps saturates at these
// instants instead of wrapping around.
var (
	MinTimestamp = Timestamp{time: math.MinInt64}
	MaxTimestamp = Timestamp{time: math.MaxInt64}
)

// NewTimestamp returns the timestamp for the given number of seconds since
// the Unix epoch.
func NewTimestamp(seconds int64) Timestamp {
	return Timestamp{time: seconds}
}

// ParseTimestamp converts a decimal string of seconds since the Unix epoch
// to a timestamp.
//
// ParseTimestamp returns an error if the string is not a base-10 integer.
func ParseTimestamp(s string) (Timestamp, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Timestamp{}, fmt.Errorf("parsing timestamp %q: %w", s, ErrInvalidNumber)
	}
	return NewTimestamp(n), nil
}

// FromTime returns the timestamp of t, truncated toward zero to whole seconds.
func FromTime(t time.Time) Timestamp {
	return NewTimestampMs(t.UnixMilli()).Seconds()
}

// NewTimestampMs returns the timestamp for the given number of milliseconds
// since the Unix epoch.
func NewTimestampMs(ms int64) TimestampMs {
	return TimestampMs{timeMs: ms}
}

// Now returns the current wall clock time in seconds.
func Now() Timestamp {
	return NowMs().Seconds()
}

// NowMs returns the current wall clock time in milliseconds.
func NowMs() TimestampMs {
	return NewTimestampMs(time.Now().UnixMilli())
}

// Unix returns the number of seconds since the Unix epoch.
func (t Timestamp) Unix() int64 {
	return t.time
}

// Ms returns the timestamp in milliseconds.
// The conversion is exact.
func (t Timestamp) Ms() TimestampMs {
	return NewTimestampMs(t.time * 1000)
}

// Add returns the timestamp d seconds after t, or [MaxTimestamp] if that
// instant is out of range.
func (t Timestamp) Add(d Duration) Timestamp {
	if t.time > math.MaxInt64-d.seconds {
		return MaxTimestamp
	}
	return Timestamp{time: t.time + d.seconds}
}

// Sub returns the timestamp d seconds before t, or [MinTimestamp] if that
// instant is out of range.
func (t Timestamp) Sub(d Duration) Timestamp {
	if t.time < math.MinInt64+d.seconds {
		return MinTimestamp
	}
	return Timestamp{time: t.time - d.seconds}
}

// Diff returns the signed number of seconds from u to t, that is t - u.
// The result saturates at the bounds of int64.
func (t Timestamp) Diff(u Timestamp) int64 {
	d := t.time - u.time
	if (t.time >= 0) != (u.time >= 0) && (d >= 0) != (t.time >= 0) {
		if t.time >= 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return d
}

// Before reports whether t is strictly before u.
func (t Timestamp) Before(u Timestamp) bool {
	return t.time < u.time
}

// After reports whether t is strictly after u.
func (t Timestamp) After(u Timestamp) bool {
	return t.time > u.time
}

// Equal reports whether t and u denote the same second.
func (t Timestamp) Equal(u Timestamp) bool {
	return t.time == u.time
}

// Time returns the timestamp as a [time.Time] in UTC.
func (t Timestamp) Time() time.Time {
	return time.Unix(t.time, 0).UTC()
}

// String returns the number of seconds since the Unix epoch.
func (t Timestamp) String() string {
	return strconv.FormatInt(t.time, 10)
}

// UnixMilli returns the number of milliseconds since the Unix epoch.
func (t TimestampMs) UnixMilli() int64 {
	return t.timeMs
}

// Seconds returns the timestamp in seconds, truncated toward zero.
func (t TimestampMs) Seconds() Timestamp {
	return NewTimestamp(t.timeMs / 1000)
}

// Time returns the timestamp as a [time.Time] in UTC.
func (t TimestampMs) Time() time.Time {
	return time.UnixMilli(t.timeMs).UTC()
}

// TimePeriod is a closed interval of time [begin, end].
// A period whose begin and end are equal represents a single instant.
type TimePeriod struct {
	begin Timestamp
	end   Timestamp
}

// NewTimePeriod returns the period between begin and end, inclusive.
//
// NewTimePeriod returns an error if begin comes after end.
func NewTimePeriod(begin, end Timestamp) (TimePeriod, error) {
	if begin.time > end.time {
		return TimePeriod{}, fmt.Errorf("building time period: begin %v comes after end %v: %w", begin, end, ErrInvalidTimePeriod)
	}
	return TimePeriod{begin: begin, end: end}, nil
}

// Begin returns the first instant of the period.
func (p TimePeriod) Begin() Timestamp {
	return p.begin
}

// End returns the last instant of the period.
func (p TimePeriod) End() Timestamp {
	return p.end
}

// Duration returns the length of the period.
func (p TimePeriod) Duration() Duration {
	return Duration{seconds: p.end.Diff(p.begin)}
}

// Contains reports whether t falls within the period, both ends included.
func (p TimePeriod) Contains(t Timestamp) bool {
	return p.begin.time <= t.time && t.time <= p.end.time
}

// String returns the period as "[begin, end]".
func (p TimePeriod) String() string {
	return "[" + p.begin.String() + ", " + p.end.String() + "]"
}
