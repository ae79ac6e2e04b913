package str

import "strings"

// Split slices s around each non-overlapping occurrence of delimiter and
// returns the substrings in order. If delimiter does not occur in s, the
// result is a single-element slice holding s. An empty delimiter is a
// documented degenerate case: the input is returned unsplit rather than
// exploded into individual characters.
func Split(s, delimiter string) []string {
	if delimiter == "" {
		return []string{s}
	}
	return strings.Split(s, delimiter)
}

// Join concatenates the elements of parts with delimiter inserted between
// consecutive elements. An empty slice produces the empty string.
func Join(parts []string, delimiter string) string {
	return strings.Join(parts, delimiter)
}
