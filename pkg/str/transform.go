package str

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToUpper converts s to uppercase using standard Unicode case mapping.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToLower converts s to lowercase using standard Unicode case mapping.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToTitle converts s to language-neutral Unicode title case, capitalizing the
// first letter of each word.
func ToTitle(s string) string {
	return cases.Title(language.Und).String(s)
}

// Trim returns s with leading and trailing whitespace removed.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimStart returns s with leading whitespace removed.
func TrimStart(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimEnd returns s with trailing whitespace removed.
func TrimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Reverse returns s with its grapheme clusters in reverse order. Reversing by
// grapheme rather than byte keeps multi-byte sequences and combining marks
// intact, so Reverse(Reverse(s)) == s for any valid UTF-8 input.
func Reverse(s string) string {
	return uniseg.ReverseString(s)
}

// Replace returns s with all non-overlapping occurrences of from replaced by
// to. If from is empty, s is returned unchanged.
func Replace(s, from, to string) string {
	if from == "" {
		return s
	}
	return strings.ReplaceAll(s, from, to)
}

// Repeat returns s concatenated with itself n times. A count of zero produces
// the empty string; a negative count returns ErrInvalidArgument.
func Repeat(s string, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: negative repeat count %d", ErrInvalidArgument, n)
	}
	return strings.Repeat(s, n), nil
}

// Substring returns the runes of s in the half-open range [start, end).
// Indexes count runes, not bytes. Out-of-range or inverted bounds return
// ErrInvalidArgument.
func Substring(s string, start, end int) (string, error) {
	runes := []rune(s)
	if start < 0 || end < start || end > len(runes) {
		return "", fmt.Errorf("%w: substring bounds [%d:%d] out of range for length %d",
			ErrInvalidArgument, start, end, len(runes))
	}
	return string(runes[start:end]), nil
}
