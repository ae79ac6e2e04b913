package timestamp

import (
	"fmt"
	"math"
	"time"
)

// Layout is the fixed format used by Format and FormatMillis. It is part of
// the package contract: callers may compare formatted output textually, so
// the layout never changes.
const Layout = "2006-01-02 15:04:05"

const secondsPerDay = 86400

// Now returns the current wall-clock time as seconds since the Unix epoch.
func Now() int64 {
	return time.Now().Unix()
}

// NowMillis returns the current wall-clock time as milliseconds since the
// Unix epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// IsFuture reports whether ts lies strictly after the current time.
// A timestamp equal to the current second is not future.
func IsFuture(ts int64) bool {
	return ts > Now()
}

// IsPast reports whether ts lies strictly before the current time.
func IsPast(ts int64) bool {
	return ts < Now()
}

// DiffSeconds returns the signed difference ts1 - ts2 in seconds.
func DiffSeconds(ts1, ts2 int64) int64 {
	return ts1 - ts2
}

// AddSeconds returns ts shifted forward by n seconds (backward when n is
// negative). It returns ErrOverflow instead of wrapping when the result
// leaves the int64 range.
func AddSeconds(ts, n int64) (int64, error) {
	if (n > 0 && ts > math.MaxInt64-n) || (n < 0 && ts < math.MinInt64-n) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, ts, n)
	}
	return ts + n, nil
}

// SubtractSeconds returns ts shifted backward by n seconds (forward when n is
// negative). It returns ErrOverflow instead of wrapping when the result
// leaves the int64 range.
func SubtractSeconds(ts, n int64) (int64, error) {
	if (n > 0 && ts < math.MinInt64+n) || (n < 0 && ts > math.MaxInt64+n) {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, ts, n)
	}
	return ts - n, nil
}

// DaysSinceEpoch returns the whole calendar days between the epoch and ts,
// flooring toward negative infinity. One second before the epoch is day -1,
// not day 0, so pre-epoch instants land on the correct day boundary.
func DaysSinceEpoch(ts int64) int64 {
	d := ts / secondsPerDay
	if ts%secondsPerDay != 0 && ts < 0 {
		d--
	}
	return d
}

// ToMinutes converts a duration in seconds to whole minutes, truncating
// toward zero.
func ToMinutes(seconds int64) int64 {
	return seconds / 60
}

// ToHours converts a duration in seconds to whole hours, truncating toward
// zero.
func ToHours(seconds int64) int64 {
	return seconds / 3600
}

// ToDays converts a duration in seconds to whole days, truncating toward
// zero. Unlike DaysSinceEpoch this is a plain unit conversion and rounds
// -1 seconds to 0 days.
func ToDays(seconds int64) int64 {
	return seconds / secondsPerDay
}

// Format renders ts as a human-readable UTC string using Layout.
func Format(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(Layout)
}

// FormatMillis renders a millisecond timestamp as a human-readable UTC string
// using Layout. The sub-second part is truncated.
func FormatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(Layout)
}
