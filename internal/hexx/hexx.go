// Package hexx converts 32-bit values to and from 8 lowercase hex digits
// packed into a uint64 without branching or table lookups.
//
// The packed form holds the most significant digit in the most significant
// byte, so writing it with a big-endian byte order yields the usual
// left-to-right rendering.
package hexx

// Put32 spreads the 8 nibbles of x into 8 bytes and maps each to '0'-'9'
// or 'a'-'f'.
func Put32(x uint32) (v uint64) {
	v = uint64(uint16(x)) | uint64(x)<<16
	v = (v & 0x000000FF000000FF) | ((v & 0x0000FF000000FF00) << 8)
	v = (v & 0x000F000F000F000F) | ((v & 0x00F000F000F000F0) << 4)
	return v + 0x3030303030303030 + 39*((v+0x0606060606060606)>>4&0x0101010101010101)
}

// Get32 is the inverse of Put32. It also accepts upper case digits. The
// result is meaningless unless Valid reports true for the same bytes.
func Get32(x uint64) (v uint32) {
	x = 9*(x&0x4040404040404040>>6) + (x & 0x0f0f0f0f0f0f0f0f)
	x = (x | x>>4) & 0x00FF00FF00FF00FF
	x = (x | x>>8) & 0x0000FFFF0000FFFF
	return uint32(x | x>>16)
}

// Load64 packs the first 8 bytes of s into a uint64, first byte most
// significant. It panics if len(s) < 8.
func Load64(s string) uint64 {
	_ = s[7]
	return uint64(s[0])<<56 | uint64(s[1])<<48 | uint64(s[2])<<40 | uint64(s[3])<<32 |
		uint64(s[4])<<24 | uint64(s[5])<<16 | uint64(s[6])<<8 | uint64(s[7])
}

// Valid reports whether every byte of s is a hex digit.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return false
		}
	}
	return true
}

// IsDigit reports whether c is a hex digit of either case.
func IsDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// Nibble returns the value of the hex digit c and whether c is one.
func Nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
