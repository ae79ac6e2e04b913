package datetime

import "time"

// Fixed layouts for textual rendering. Held constant so callers may compare
// formatted output.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

// Unit is a time unit accepted by Offset.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
)

// StartOfDay returns t truncated to midnight in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999999, t.Location())
}

// StartOfWeek returns midnight on the Monday of t's ISO week.
func StartOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t.AddDate(0, 0, -daysSinceMonday))
}

// EndOfWeek returns the last nanosecond of the Sunday ending t's ISO week.
func EndOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return EndOfDay(t.AddDate(0, 0, 6-daysSinceMonday))
}

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of t's month, accounting for month
// length and leap years.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// StartOfYear returns midnight on January 1st of t's year.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last nanosecond of December 31st of t's year.
func EndOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.December, 31, 23, 59, 59, 999999999, t.Location())
}

// IsAM reports whether t falls before noon. Midnight is AM.
func IsAM(t time.Time) bool {
	return t.Hour() < 12
}

// IsPM reports whether t falls at or after noon. Noon is PM.
func IsPM(t time.Time) bool {
	return t.Hour() >= 12
}

// Offset shifts t by n units. A negative n shifts backward. Day is a fixed
// 24-hour span, not a calendar day, so crossing a DST boundary keeps the
// absolute duration.
func Offset(t time.Time, n int64, u Unit) time.Time {
	switch u {
	case Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case Day:
		return t.Add(time.Duration(n) * 24 * time.Hour)
	default:
		return t.Add(time.Duration(n) * time.Second)
	}
}

// Between returns the whole seconds elapsed from a to b, negative when b
// precedes a.
func Between(a, b time.Time) int64 {
	return int64(b.Sub(a) / time.Second)
}
