package encoding

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/mspack/mspack/endian"
	"github.com/mspack/mspack/internal/hexx"
)

// PatternWidth is the number of hex digits in a rendered 32-bit pattern.
const PatternWidth = 8

var patternEngine = endian.GetPatternEngine()

// FloatToPattern renders the IEEE-754 bit pattern of f as 8 lowercase hex
// digits, most significant byte first.
//
// The value is reinterpreted, never converted, so NaN payloads, infinities,
// signed zeros and subnormals all survive a round trip through PatternToFloat.
//
// Example:
//
//	encoding.FloatToPattern(500.25) // "43fa2000"
func FloatToPattern(f float32) string {
	var buf [PatternWidth]byte
	return string(AppendPattern(buf[:0], math.Float32bits(f)))
}

// PatternToFloat parses an 8 digit hex pattern and reinterprets it as a
// float32. Upper and lower case digits are accepted.
func PatternToFloat(s string) (float32, error) {
	v, err := ParsePattern(s)
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// AppendPattern appends the 8 hex digits of v to dst.
func AppendPattern(dst []byte, v uint32) []byte {
	return patternEngine.AppendUint64(dst, hexx.Put32(v))
}

// ParsePattern parses exactly 8 hex digits into a 32-bit pattern.
func ParsePattern(s string) (uint32, error) {
	if len(s) != PatternWidth {
		return 0, fmt.Errorf("%w: %q has %d digits, want %d", ErrInvalidPattern, s, len(s), PatternWidth)
	}
	if !hexx.Valid(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
	}

	return hexx.Get32(hexx.Load64(s)), nil
}

// leadingZeroNibbles returns how many leading '0' digits the 8 digit
// rendering of v has. A zero value has 8.
func leadingZeroNibbles(v uint32) uint8 {
	return uint8(bits.LeadingZeros32(v) / 4)
}
