// Package str provides a collection of helper functions for inspecting and
// transforming strings.
//
// The helpers fall into three groups:
//
//   - Inspection – emptiness and blankness checks, substring tests, byte and
//     rune length.
//
//   - Transformation – case conversion, trimming, grapheme-aware reversal,
//     replacement, repetition and rune-indexed substring extraction.
//
//   - Splitting and joining – delimiter-based split with a documented
//     degenerate case for empty delimiters, and the matching join.
//
// All functions are pure: they never mutate their input and always return a
// new value. Multi-byte text is handled correctly throughout; in particular
// Reverse operates on grapheme clusters rather than bytes, so combining marks
// and emoji survive a round trip:
//
//	str.Reverse("héllo")              // "olléh"
//	str.Reverse(str.Reverse(s)) == s  // for any valid UTF-8 s
//
// # Error handling
//
// Most helpers cannot fail and return the result directly. The few with
// preconditions (Repeat with a negative count, Substring with out-of-range
// bounds) return an error wrapping ErrInvalidArgument; match it with
// errors.Is.
//
// # Usage
//
//	import "github.com/taoes/huturs/pkg/str"
//
//	parts := str.Split("a,b,c", ",")       // []string{"a", "b", "c"}
//	line := str.Join(parts, ",")           // "a,b,c"
//	s, err := str.Repeat("ab", 3)          // "ababab", nil
//
// The package holds no state and is safe for concurrent use.
package str
