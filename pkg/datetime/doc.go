// Package datetime provides calendar helpers over time.Time: period
// boundaries (day, ISO week, month, year), AM/PM checks, unit-based offsets
// and second-granularity differences.
//
// All helpers are pure and preserve the location of their input, so a time in
// a non-UTC zone stays in that zone. Weeks run Monday through Sunday. Period
// ends land on the last representable nanosecond of the period
// (23:59:59.999999999).
//
// Two fixed layouts are exported for callers that render dates textually:
//
//	datetime.DateLayout     // "2006-01-02"
//	datetime.DateTimeLayout // "2006-01-02 15:04:05"
//
// # Usage
//
//	import "github.com/taoes/huturs/pkg/datetime"
//
//	sod := datetime.StartOfDay(time.Now())
//	eow := datetime.EndOfWeek(time.Now())
//	in2h := datetime.Offset(time.Now(), 2, datetime.Hour)
//
// The package holds no state and is safe for concurrent use.
package datetime
