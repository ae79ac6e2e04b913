package str

import (
	"strings"
	"unicode/utf8"
)

// IsEmpty reports whether s has zero length.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty reports whether s has non-zero length.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank reports whether s is empty or consists only of whitespace
// characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Contains reports whether needle occurs within s.
// An empty needle always matches.
func Contains(s, needle string) bool {
	return strings.Contains(s, needle)
}

// HasPrefix reports whether s begins with prefix.
// An empty prefix always matches.
func HasPrefix(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// HasSuffix reports whether s ends with suffix.
// An empty suffix always matches.
func HasSuffix(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Length returns the length of s in bytes. For multi-byte text this differs
// from the number of characters; see RuneCount.
func Length(s string) int {
	return len(s)
}

// RuneCount returns the number of Unicode code points in s.
func RuneCount(s string) int {
	return utf8.RuneCountInString(s)
}
