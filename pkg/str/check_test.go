package str_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taoes/huturs/pkg/str"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, str.IsEmpty(""))
	assert.False(t, str.IsEmpty(" "))
	assert.False(t, str.IsEmpty("hello"))
}

func TestIsNotEmpty(t *testing.T) {
	assert.True(t, str.IsNotEmpty("hello"))
	assert.True(t, str.IsNotEmpty(" "))
	assert.False(t, str.IsNotEmpty(""))
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "empty string is blank",
			input:    "",
			expected: true,
		},
		{
			name:     "spaces only",
			input:    "   ",
			expected: true,
		},
		{
			name:     "tabs and newlines",
			input:    "\t\n\r ",
			expected: true,
		},
		{
			name:     "non-breaking space",
			input:    "\u00a0\u2003",
			expected: true,
		},
		{
			name:     "text surrounded by whitespace is not blank",
			input:    "  hello  ",
			expected: false,
		},
		{
			name:     "plain text",
			input:    "hello",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, str.IsBlank(tt.input))
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		needle   string
		expected bool
	}{
		{
			name:     "substring present",
			s:        "hello world",
			needle:   "world",
			expected: true,
		},
		{
			name:     "substring absent",
			s:        "hello",
			needle:   "xyz",
			expected: false,
		},
		{
			name:     "empty needle always matches",
			s:        "hello",
			needle:   "",
			expected: true,
		},
		{
			name:     "empty needle matches empty string",
			s:        "",
			needle:   "",
			expected: true,
		},
		{
			name:     "multi-byte needle",
			s:        "héllo wörld",
			needle:   "wörld",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, str.Contains(tt.s, tt.needle))
		})
	}
}

func TestHasPrefix(t *testing.T) {
	assert.True(t, str.HasPrefix("hello", "he"))
	assert.True(t, str.HasPrefix("hello", ""))
	assert.False(t, str.HasPrefix("hello", "wo"))
	assert.False(t, str.HasPrefix("", "he"))
}

func TestHasSuffix(t *testing.T) {
	assert.True(t, str.HasSuffix("hello", "lo"))
	assert.True(t, str.HasSuffix("hello", ""))
	assert.False(t, str.HasSuffix("hello", "he"))
	assert.False(t, str.HasSuffix("", "lo"))
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0, str.Length(""))
	assert.Equal(t, 5, str.Length("hello"))
	// Multi-byte characters count their bytes.
	assert.Equal(t, 6, str.Length("你好"))
}

func TestRuneCount(t *testing.T) {
	assert.Equal(t, 0, str.RuneCount(""))
	assert.Equal(t, 5, str.RuneCount("hello"))
	assert.Equal(t, 2, str.RuneCount("你好"))
}
