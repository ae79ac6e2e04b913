// Package hexutil provides hexadecimal encoding and decoding of text.
//
// Encode renders the UTF-8 bytes of a string as lowercase hex digits; Decode
// is the exact inverse:
//
//	hexutil.Encode("abc")        // "616263"
//	s, _ := hexutil.Decode("616263") // "abc"
//
// Decode returns ErrInvalidInput for odd-length input or non-hex digits.
// The package holds no state and is safe for concurrent use.
package hexutil
