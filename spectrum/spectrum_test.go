package spectrum

import (
	"math"
	"strings"
	"testing"

	"github.com/mspack/mspack/encoding"
	"github.com/stretchr/testify/require"
)

func TestFromPeaks_Peaks(t *testing.T) {
	peaks := []Peak{{100, 1}, {200, 2}, {300, 3}}

	sp := FromPeaks(peaks)
	require.Equal(t, []float32{100, 200, 300}, sp.Mz)
	require.Equal(t, []float32{1, 2, 3}, sp.Intensity)
	require.Equal(t, 3, sp.Len())
	require.Equal(t, peaks, sp.Peaks())
}

func TestValidate(t *testing.T) {
	require.NoError(t, Spectrum{Mz: []float32{1}, Intensity: []float32{2}}.Validate())
	require.ErrorIs(t, Spectrum{}.Validate(), ErrEmpty)
	require.ErrorIs(t, Spectrum{Mz: []float32{1, 2}, Intensity: []float32{2}}.Validate(), ErrLengthMismatch)
	require.ErrorIs(t, Spectrum{Mz: []float32{1}}.Validate(), ErrLengthMismatch)
}

func TestEncode_Golden(t *testing.T) {
	packed, err := Encode(Spectrum{
		Mz:        []float32{500.25, 500.26},
		Intensity: []float32{10, 20},
	})
	require.NoError(t, err)
	require.Equal(t, "43fa200014850", packed.Mz)
	require.Equal(t, "4120000041a00000", packed.Intensity)
	require.Equal(t, 2, packed.Len())

	frame, err := Frame(packed)
	require.NoError(t, err)
	require.Equal(t, `["43fa200014850", "4120000041a00000"]`, string(frame))
}

func TestEncode_Errors(t *testing.T) {
	_, err := Encode(Spectrum{})
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Encode(Spectrum{Mz: []float32{1}, Intensity: []float32{1, 2}})
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sp   Spectrum
	}{
		{"single", Spectrum{Mz: []float32{1}, Intensity: []float32{0}}},
		{"sorted", Spectrum{
			Mz:        []float32{101.0712, 129.1022, 147.1128, 175.119, 244.1656, 512.2711},
			Intensity: []float32{12.5, 300, 7, 1e6, 0.001, 42},
		}},
		{"unsorted", Spectrum{Mz: []float32{300, 200, 100}, Intensity: []float32{1, 2, 3}}},
		{"specials", Spectrum{
			Mz:        []float32{float32(math.Inf(-1)), 0, float32(math.Copysign(0, -1)), math.SmallestNonzeroFloat32, float32(math.Inf(1))},
			Intensity: []float32{float32(math.NaN()), math.MaxFloat32, -1, 0, 1},
		}},
		{"repeated", Spectrum{Mz: []float32{5, 5, 5, 5}, Intensity: []float32{5, 5, 5, 5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			packed, err := Encode(tt.sp)
			require.NoError(t, err)
			require.Len(t, packed.Intensity, encoding.PatternWidth*tt.sp.Len())

			frame, err := Frame(packed)
			require.NoError(t, err)
			unframed, err := Unframe(frame)
			require.NoError(t, err)
			require.Equal(t, packed, unframed)

			got, err := Decode(unframed)
			require.NoError(t, err)
			require.Equal(t, bitsOf(tt.sp.Mz), bitsOf(got.Mz))
			require.Equal(t, bitsOf(tt.sp.Intensity), bitsOf(got.Intensity))
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(Packed{Mz: "8", Intensity: ""})
	require.ErrorIs(t, err, ErrEmpty)

	_, err = Decode(Packed{Mz: "8", Intensity: "0000000"})
	require.ErrorIs(t, err, encoding.ErrTruncated)

	// two intensities but a mass string holding one value
	_, err = Decode(Packed{Mz: "3f8000000", Intensity: "3f8000003f800000"})
	require.Error(t, err)

	_, err = Decode(Packed{Mz: "zz", Intensity: "3f800000"})
	require.ErrorIs(t, err, encoding.ErrInvalidPattern)
}

func TestUnframe(t *testing.T) {
	p, err := Unframe([]byte(`["a","b"]`))
	require.NoError(t, err)
	require.Equal(t, Packed{Mz: "a", Intensity: "b"}, p)

	p, err = Unframe([]byte(" [ \"8\" ,\n \"\" ] "))
	require.NoError(t, err)
	require.Equal(t, Packed{Mz: "8"}, p)

	for _, bad := range []string{``, `{}`, `["a"]`, `["a","b","c"]`, `[1,2]`, `["a",`} {
		_, err := Unframe([]byte(bad))
		require.ErrorIs(t, err, ErrMalformedFrame, bad)
	}
}

func TestParsePeakList(t *testing.T) {
	input := strings.Join([]string{
		"# name: test spectrum",
		"",
		"100.5 10",
		"200.25\t20.5",
		"300,30",
		"400.125;40",
		"  500 , 50  ",
		"600\t\t60\r",
	}, "\n")

	peaks, err := ParsePeakList(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, []Peak{
		{100.5, 10},
		{200.25, 20.5},
		{300, 30},
		{400.125, 40},
		{500, 50},
		{600, 60},
	}, peaks)
}

func TestParsePeakList_Errors(t *testing.T) {
	_, err := ParsePeakList(strings.NewReader("100\n"))
	require.ErrorContains(t, err, "line 1")

	_, err = ParsePeakList(strings.NewReader("1 2\nabc 3\n"))
	require.ErrorContains(t, err, "line 2: mass")

	_, err = ParsePeakList(strings.NewReader("1 2 3\n"))
	require.Error(t, err)

	peaks, err := ParsePeakList(strings.NewReader("# only comments\n\n"))
	require.NoError(t, err)
	require.Empty(t, peaks)
}

func bitsOf(values []float32) []uint32 {
	out := make([]uint32, len(values))
	for i, v := range values {
		out[i] = math.Float32bits(v)
	}

	return out
}
