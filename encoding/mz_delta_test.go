package encoding

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// Packed strings below were produced by the reference encoder.
var mzGolden = []struct {
	name   string
	values []float32
	packed string
}{
	{name: "two masses", values: []float32{500.25, 500.26}, packed: "43fa200014850"},
	{name: "three masses", values: []float32{100, 200, 300}, packed: "42c800008000004e0000220"},
	{name: "single value", values: []float32{1}, packed: "3f8000000"},
	{name: "single zero", values: []float32{0}, packed: "8"},
	{name: "zeros sign and nan", values: []float32{0, 0, -1, math.Float32frombits(0x7fc00000)}, packed: "bf800000c04000000088"},
	{name: "decreasing", values: []float32{300, 200}, packed: "43960000ffb2000000"},
}

func bitsOf(values []float32) []uint32 {
	out := make([]uint32, len(values))
	for i, v := range values {
		out[i] = math.Float32bits(v)
	}

	return out
}

func TestEncodeMz_Golden(t *testing.T) {
	for _, tt := range mzGolden {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := EncodeMz(tt.values)
			require.NoError(t, err)
			require.Equal(t, tt.packed, packed)
		})
	}
}

func TestDecodeMz_Golden(t *testing.T) {
	for _, tt := range mzGolden {
		t.Run(tt.name, func(t *testing.T) {
			values, err := DecodeMz(tt.packed, len(tt.values))
			require.NoError(t, err)
			require.Equal(t, bitsOf(tt.values), bitsOf(values))

			streamed, err := DecodeMzStream(tt.packed)
			require.NoError(t, err)
			require.Equal(t, bitsOf(tt.values), bitsOf(streamed))
		})
	}
}

func TestEncodeMz_Empty(t *testing.T) {
	_, err := EncodeMz(nil)
	require.ErrorIs(t, err, ErrEmptySequence)

	_, err = DecodeMz("", 0)
	require.ErrorIs(t, err, ErrEmptySequence)

	_, err = DecodeMzStream("")
	require.ErrorIs(t, err, ErrEmptySequence)
}

func TestMz_RoundTripSpecialValues(t *testing.T) {
	values := []float32{
		float32(math.Inf(-1)),
		-math.MaxFloat32,
		-1,
		float32(math.Copysign(0, -1)),
		0,
		math.Float32frombits(1),
		math.SmallestNonzeroFloat32,
		math.Float32frombits(0x007fffff),
		1,
		math.MaxFloat32,
		float32(math.Inf(1)),
		math.Float32frombits(0x7fc00000),
		math.Float32frombits(0x7f800001),
		math.Float32frombits(0xffffffff),
	}

	packed, err := EncodeMz(values)
	require.NoError(t, err)

	decoded, err := DecodeMz(packed, len(values))
	require.NoError(t, err)
	require.Equal(t, bitsOf(values), bitsOf(decoded))

	streamed, err := DecodeMzStream(packed)
	require.NoError(t, err)
	require.Equal(t, bitsOf(values), bitsOf(streamed))
}

func TestMz_RoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))

	for _, n := range []int{1, 2, 3, 10, 100, 1000} {
		t.Run("sorted peaks", func(t *testing.T) {
			values := make([]float32, n)
			for i := range values {
				values[i] = float32(50 + r.Float64()*1950)
			}
			slices.Sort(values)

			packed, err := EncodeMz(values)
			require.NoError(t, err)

			decoded, err := DecodeMz(packed, n)
			require.NoError(t, err)
			require.Equal(t, bitsOf(values), bitsOf(decoded))
		})

		t.Run("arbitrary bits", func(t *testing.T) {
			values := make([]float32, n)
			for i := range values {
				values[i] = math.Float32frombits(r.Uint32())
			}

			packed, err := EncodeMz(values)
			require.NoError(t, err)

			decoded, err := DecodeMzStream(packed)
			require.NoError(t, err)
			require.Equal(t, bitsOf(values), bitsOf(decoded))
		})
	}
}

func TestMz_SortedInputCompresses(t *testing.T) {
	values := make([]float32, 200)
	for i := range values {
		values[i] = 400 + float32(i)*0.37
	}

	packed, err := EncodeMz(values)
	require.NoError(t, err)
	require.Less(t, len(packed), len(values)*PatternWidth, "close masses must strip leading zeros")
}

func TestDecodeMz_Errors(t *testing.T) {
	t.Run("count table longer than input", func(t *testing.T) {
		_, err := DecodeMz("50", 3)
		require.ErrorIs(t, err, ErrCountTableLength)
	})

	t.Run("truncated data", func(t *testing.T) {
		_, err := DecodeMz("43fa200014"+"50", 2)
		require.ErrorIs(t, err, ErrTruncated)
	})

	t.Run("wrong n leaves trailing data", func(t *testing.T) {
		_, err := DecodeMz("43fa200014850", 1)
		require.Error(t, err)
	})

	t.Run("out of range count digit", func(t *testing.T) {
		_, err := DecodeMz("43fa2000"+"90", 2)
		require.ErrorIs(t, err, ErrInvalidPattern)
	})
}

func TestDecodeMzStream_Errors(t *testing.T) {
	t.Run("non hex count", func(t *testing.T) {
		_, err := DecodeMzStream("43fa2000x")
		require.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("count above width", func(t *testing.T) {
		_, err := DecodeMzStream("43fa2000a")
		require.ErrorIs(t, err, ErrInvalidPattern)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := DecodeMzStream("43fa0")
		require.ErrorIs(t, err, ErrTruncated)
	})
}

// === MzDeltaEncoder Tests ===

func TestMzDeltaEncoder_MatchesEncodeMz(t *testing.T) {
	for _, tt := range mzGolden {
		t.Run(tt.name, func(t *testing.T) {
			enc := NewMzDeltaEncoder()
			defer enc.Finish()

			for _, v := range tt.values {
				enc.Write(v)
			}

			require.Equal(t, len(tt.values), enc.Len())
			require.Equal(t, len(tt.packed), enc.Size())
			require.Equal(t, tt.packed, string(enc.Bytes()))
		})
	}
}

func TestMzDeltaEncoder_WriteSliceAndReset(t *testing.T) {
	enc := NewMzDeltaEncoder()
	defer enc.Finish()

	enc.WriteSlice([]float32{100, 200})
	enc.Write(300)
	require.Equal(t, "42c800008000004e0000220", string(enc.Bytes()))

	// Bytes can be called again without changing the result
	require.Equal(t, "42c800008000004e0000220", string(enc.Bytes()))

	enc.Reset()
	require.Equal(t, 0, enc.Len())
	require.Equal(t, 0, enc.Size())

	enc.WriteSlice([]float32{500.25, 500.26})
	require.Equal(t, "43fa200014850", string(enc.Bytes()))
}

func TestMzDeltaEncoder_WriteAfterFinishPanics(t *testing.T) {
	enc := NewMzDeltaEncoder()
	enc.Finish()

	require.Panics(t, func() { enc.Write(1) })
	require.Panics(t, func() { enc.WriteSlice([]float32{1}) })
}

// === MzDeltaDecoder Tests ===

func TestMzDeltaDecoder_All(t *testing.T) {
	dec := NewMzDeltaDecoder()

	var got []float32
	for v := range dec.All([]byte("42c800008000004e0000220"), 3) {
		got = append(got, v)
	}
	require.Equal(t, []float32{100, 200, 300}, got)

	got = got[:0]
	for v := range dec.All([]byte("42c800008000004e0000220"), 3) {
		got = append(got, v)
		break
	}
	require.Equal(t, []float32{100}, got)

	count := 0
	for range dec.All([]byte("broken"), 3) {
		count++
	}
	require.Zero(t, count)
}

func TestMzDeltaDecoder_At(t *testing.T) {
	dec := NewMzDeltaDecoder()
	data := []byte("42c800008000004e0000220")

	v, ok := dec.At(data, 2, 3)
	require.True(t, ok)
	require.Equal(t, float32(300), v)

	_, ok = dec.At(data, 3, 3)
	require.False(t, ok)

	_, ok = dec.At(data, -1, 3)
	require.False(t, ok)

	_, ok = dec.At([]byte("zz"), 0, 1)
	require.False(t, ok)
}
