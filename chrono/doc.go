/*
Package chrono implements the time values used for pricing: non-negative
durations in whole seconds, second and millisecond timestamps, and closed
time periods.

All values are immutable and validated at construction.
Conversions from milliseconds to seconds truncate toward zero; conversions
from seconds to milliseconds are exact.

The display helpers ([ShortDate], [Formatted], [Relative], [Describe] and
[PrettyDiffFromNow]) only read the wall clock, and accept options to render in
a fixed location or against a fixed "now".
*/
package chrono
