package encoding

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloatToPattern(t *testing.T) {
	tests := []struct {
		name     string
		value    float32
		expected string
	}{
		{name: "mass", value: 500.25, expected: "43fa2000"},
		{name: "rounded mass", value: 500.26, expected: "43fa2148"},
		{name: "one", value: 1.0, expected: "3f800000"},
		{name: "positive zero", value: 0, expected: "00000000"},
		{name: "negative zero", value: float32(math.Copysign(0, -1)), expected: "80000000"},
		{name: "negative", value: -1.0, expected: "bf800000"},
		{name: "positive infinity", value: float32(math.Inf(1)), expected: "7f800000"},
		{name: "negative infinity", value: float32(math.Inf(-1)), expected: "ff800000"},
		{name: "smallest subnormal", value: math.Float32frombits(1), expected: "00000001"},
		{name: "max float32", value: math.MaxFloat32, expected: "7f7fffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FloatToPattern(tt.value))
		})
	}
}

func TestPatternToFloat_NaNPayloads(t *testing.T) {
	for _, bits := range []uint32{0x7fc00000, 0x7f800001, 0xffc00001, 0x7fbfffff} {
		s := string(AppendPattern(nil, bits))
		f, err := PatternToFloat(s)
		require.NoError(t, err)
		require.True(t, math.IsNaN(float64(f)))
		require.Equal(t, bits, math.Float32bits(f), "NaN payload must survive")
	}
}

func TestPatternToFloat_UpperCase(t *testing.T) {
	f, err := PatternToFloat("43FA2000")
	require.NoError(t, err)
	require.Equal(t, float32(500.25), f)
}

func TestPatternToFloat_Invalid(t *testing.T) {
	for _, s := range []string{"", "43fa200", "43fa20000", "43fa200g", "43fa 000", "-3fa2000"} {
		_, err := PatternToFloat(s)
		require.ErrorIs(t, err, ErrInvalidPattern, "input %q", s)
	}
}

func TestPattern_RoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for range 20000 {
		bits := r.Uint32()
		s := FloatToPattern(math.Float32frombits(bits))
		require.Len(t, s, PatternWidth)
		require.Equal(t, strings.ToLower(s), s)

		f, err := PatternToFloat(s)
		require.NoError(t, err)
		require.Equal(t, bits, math.Float32bits(f))
	}
}

func TestLeadingZeroNibbles(t *testing.T) {
	tests := []struct {
		value    uint32
		expected uint8
	}{
		{0x00000000, 8},
		{0x00000001, 7},
		{0x0000000f, 7},
		{0x00000010, 6},
		{0x00000148, 5},
		{0x0000047b, 5},
		{0x00008000, 4},
		{0x004e0000, 2},
		{0x0fffffff, 1},
		{0x10000000, 0},
		{0xffffffff, 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, leadingZeroNibbles(tt.value), "value %08x", tt.value)

		rendered := string(AppendPattern(nil, tt.value))
		require.Equal(t, int(tt.expected), len(rendered)-len(strings.TrimLeft(rendered, "0")))
	}
}
