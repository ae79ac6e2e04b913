// Package timestamp provides arithmetic and formatting helpers for Unix
// timestamps represented as plain int64 values.
//
// Timestamps count seconds (or milliseconds, where a function name says so)
// since the Unix epoch, 1970-01-01T00:00:00 UTC. Negative values address
// instants before the epoch and are fully supported.
//
// All functions are pure except Now and NowMillis, which read the system
// clock. Comparisons against "now" (IsFuture, IsPast) treat an exactly equal
// timestamp as neither future nor past.
//
// # Overflow
//
// AddSeconds and SubtractSeconds refuse to wrap around: when the result would
// leave the int64 range they return an error wrapping ErrOverflow instead of
// a silently truncated value.
//
// # Formatting
//
// Format renders a timestamp with the fixed layout "2006-01-02 15:04:05" in
// UTC. The layout is part of the package contract and is held constant so
// callers may compare the output textually.
//
// # Usage
//
//	import "github.com/taoes/huturs/pkg/timestamp"
//
//	now := timestamp.Now()
//	later, err := timestamp.AddSeconds(now, 4*60*60)
//	if err != nil {
//		// result would not fit in an int64
//	}
//	fmt.Println(timestamp.Format(later))
//
// The package holds no state and is safe for concurrent use.
package timestamp
