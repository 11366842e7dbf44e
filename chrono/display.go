package chrono

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	shortDateLayout = "2 Jan 2006"
	longDateLayout  = "January 2, 2006 at 3:04 PM"
)

type displayOptions struct {
	loc *time.Location
	now func() time.Time
}

// Option configures the display helpers.
type Option func(*displayOptions)

// WithLocation renders dates in the given location instead of UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *displayOptions) {
		if loc != nil {
			o.loc = loc
		}
	}
}

// WithNow replaces the wall clock used to compute relative distances.
func WithNow(now func() time.Time) Option {
	return func(o *displayOptions) {
		if now != nil {
			o.now = now
		}
	}
}

func newDisplayOptions(opts []Option) displayOptions {
	o := displayOptions{loc: time.UTC, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ShortDate formats t as "2 Jan 2006".
func ShortDate(t Timestamp, opts ...Option) string {
	o := newDisplayOptions(opts)
	return t.Time().In(o.loc).Format(shortDateLayout)
}

// Formatted formats t as "January 2, 2006 at 3:04 PM".
func Formatted(t Timestamp, opts ...Option) string {
	o := newDisplayOptions(opts)
	return t.Time().In(o.loc).Format(longDateLayout)
}

// Describe returns either the relative distance between t and now or
// the short date of t.
func Describe(t Timestamp, showAsDistance, withSuffix bool, opts ...Option) string {
	if showAsDistance {
		return Relative(t, withSuffix, opts...)
	}
	return ShortDate(t, opts...)
}

// Relative describes the distance between t and now in words, such as
// "3 days" or "in 2 hours". The approximation qualifiers "about" and "over"
// are never emitted.
// With addSuffix, past instants end with " ago" and future ones start with "in ".
func Relative(t Timestamp, addSuffix bool, opts ...Option) string {
	o := newDisplayOptions(opts)
	now := FromTime(o.now())
	diff := t.Diff(now)
	words := distanceInWords(abs64(diff))
	if !addSuffix {
		return words
	}
	if diff > 0 {
		return "in " + words
	}
	return words + " ago"
}

// distanceInWords mirrors the thresholds of the common "distance in words"
// algorithm: minutes up to 45, hours up to a day, days up to a month,
// months up to a year, then years.
func distanceInWords(seconds int64) string {
	const (
		minutesInDay   = 1440
		minutesInMonth = 43200
		minutesInYear  = 525600
	)
	minutes := int64(math.Round(float64(seconds) / 60))
	switch {
	case minutes < 1:
		return "less than a minute"
	case minutes < 45:
		return plural(minutes, "minute")
	case minutes < 90:
		return "1 hour"
	case minutes < minutesInDay:
		return plural(int64(math.Round(float64(minutes)/60)), "hour")
	case minutes < 2520:
		return "1 day"
	case minutes < minutesInMonth:
		return plural(int64(math.Round(float64(minutes)/minutesInDay)), "day")
	case minutes < minutesInYear:
		// 30-day months overshoot near a year; there are at most 11 whole months
		months := min(int64(math.Round(float64(minutes)/minutesInMonth)), 11)
		return plural(months, "month")
	}
	years := minutes / minutesInYear
	months := (minutes % minutesInYear) / minutesInMonth
	if months >= 9 {
		return "almost " + plural(years+1, "year")
	}
	return plural(years, "year")
}

// PrettyDiffFromNow describes how far in the future t is, using the largest
// whole unit among weeks, days and hours.
// Instants less than an hour away, or in the past, read "less than an hour".
func PrettyDiffFromNow(t Timestamp, opts ...Option) string {
	o := newDisplayOptions(opts)
	diff := t.Diff(FromTime(o.now()))
	if weeks := diff / Week.seconds; weeks > 0 {
		return plural(weeks, "week")
	}
	if days := diff / Day.seconds; days > 0 {
		return plural(days, "day")
	}
	if hours := diff / Hour.seconds; hours > 0 {
		return plural(hours, "hour")
	}
	return "less than an hour"
}

func plural(n int64, unit string) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(n, 10))
	b.WriteByte(' ')
	b.WriteString(unit)
	if n != 1 {
		b.WriteByte('s')
	}
	return b.String()
}

func abs64(n int64) int64 {
	if n == math.MinInt64 {
		return math.MaxInt64
	}
	if n < 0 {
		return -n
	}
	return n
}
