package hexutil

import (
	"encoding/hex"
	"errors"
)

// Encode returns the lowercase hexadecimal representation of the UTF-8 bytes
// of s. Every byte becomes exactly two hex digits.
func Encode(s string) string {
	return hex.EncodeToString([]byte(s))
}

// Decode parses a hexadecimal string produced by Encode back into text.
// Uppercase digits are accepted. Odd-length input or non-hex characters
// return ErrInvalidInput.
func Decode(s string) (string, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return "", errors.Join(ErrInvalidInput, err)
	}
	return string(b), nil
}
