package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/mspack/mspack/internal/hexx"
	"github.com/mspack/mspack/internal/pool"
)

// EncodeMz packs a mass sequence: the stripped bit-pattern deltas followed
// by the reversed zero count table.
//
// Example:
//
//	s, _ := encoding.EncodeMz([]float32{500.25, 500.26})
//	// s == "43fa2000" + "148" + "50"
func EncodeMz(values []float32) (string, error) {
	if len(values) == 0 {
		return "", ErrEmptySequence
	}

	buf := pool.GetPatternBuffer()
	defer pool.PutPatternBuffer(buf)

	out, err := AppendMz(buf.B, values)
	buf.B = out
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// AppendMz appends the packed form of values to dst.
func AppendMz(dst []byte, values []float32) ([]byte, error) {
	vals, cleanupVals := pool.GetUint32Slice(len(values))
	defer cleanupVals()
	zeros, cleanupZeros := pool.GetUint8Slice(len(values))
	defer cleanupZeros()

	for i, f := range values {
		vals[i] = math.Float32bits(f)
	}

	dst, err := appendDeltas(dst, zeros, vals)
	if err != nil {
		return dst, err
	}

	return appendZeroCounts(dst, zeros)
}

// DecodeMz unpacks a mass string holding n values. The last n characters
// are the count table; everything before them is delta data.
func DecodeMz(s string, n int) ([]float32, error) {
	if n <= 0 {
		return nil, ErrEmptySequence
	}
	if len(s) < n {
		return nil, fmt.Errorf("%w: %d characters cannot hold %d counts", ErrCountTableLength, len(s), n)
	}

	split := len(s) - n
	zeros, err := UnpackZeroCounts(s[split:], n)
	if err != nil {
		return nil, err
	}

	vals, cleanup := pool.GetUint32Slice(0)
	defer cleanup()

	vals, err = unpackDeltas(vals, s[:split], zeros)
	if err != nil {
		return nil, err
	}

	out := make([]float32, len(vals))
	for i, v := range vals {
		out[i] = math.Float32frombits(v)
	}

	return out, nil
}

// DecodeMzStream unpacks a mass string without knowing its length in
// advance. Counts are taken from the end of the string and the matching
// data digits from the front until both meet.
func DecodeMzStream(s string) ([]float32, error) {
	if s == "" {
		return nil, ErrEmptySequence
	}

	var (
		out  []float32
		prev uint32
	)
	for len(s) > 0 {
		c := s[len(s)-1]
		z, ok := hexx.Nibble(c)
		if !ok {
			return nil, fmt.Errorf("%w: count digit %q", ErrInvalidPattern, c)
		}

		width, err := fieldWidth(z)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", len(out), err)
		}
		if width > len(s)-1 {
			return nil, fmt.Errorf("%w: field %d needs %d digits, %d left", ErrTruncated, len(out), width, len(s)-1)
		}

		d, err := parseField(s[:width])
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", len(out), err)
		}

		prev += d
		out = append(out, math.Float32frombits(prev))
		s = s[width : len(s)-1]
	}

	return out, nil
}

// MzDeltaEncoder is a streaming encoder for mass sequences.
//
// Values are delta-encoded on the fly against the previous bit pattern; the
// zero count table is only appended when Bytes is called, so values can keep
// being written afterwards.
type MzDeltaEncoder struct {
	buf   *pool.ByteBuffer
	out   []byte
	zeros []uint8
	prev  uint32
}

var _ ColumnarEncoder[float32] = (*MzDeltaEncoder)(nil)

// NewMzDeltaEncoder creates a new mass sequence encoder backed by a pooled buffer.
func NewMzDeltaEncoder() *MzDeltaEncoder {
	return &MzDeltaEncoder{
		buf: pool.GetPatternBuffer(),
	}
}

// Write encodes a single mass value.
//
// Panics if Finish() has been called (nil buffer).
func (e *MzDeltaEncoder) Write(val float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	v := math.Float32bits(val)
	d := v - e.prev
	z := leadingZeroNibbles(d)

	e.buf.Grow(PatternWidth)
	e.buf.B = appendStripped(e.buf.B, d, z)
	e.zeros = append(e.zeros, z)
	e.prev = v
}

// WriteSlice encodes a slice of mass values.
//
// Panics if Finish() has been called (nil buffer).
func (e *MzDeltaEncoder) WriteSlice(values []float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.Grow(len(values) * PatternWidth)
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes returns the packed mass string for all values written so far.
//
// The returned slice is valid until the next call to Bytes, Reset or Finish.
// Every count is at most PatternWidth, so the count table always packs.
func (e *MzDeltaEncoder) Bytes() []byte {
	e.out = append(e.out[:0], e.buf.B...)
	for i := len(e.zeros) - 1; i >= 0; i-- {
		e.out = append(e.out, hexDigits[e.zeros[i]])
	}

	return e.out
}

// Len returns the number of encoded values.
func (e *MzDeltaEncoder) Len() int {
	return len(e.zeros)
}

// Size returns the size in bytes of the packed string, count table included.
func (e *MzDeltaEncoder) Size() int {
	return e.buf.Len() + len(e.zeros)
}

// Reset discards all written values so a new sequence can be encoded.
func (e *MzDeltaEncoder) Reset() {
	e.buf.Reset()
	e.zeros = e.zeros[:0]
	e.out = e.out[:0]
	e.prev = 0
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *MzDeltaEncoder) Finish() {
	pool.PutPatternBuffer(e.buf)
	e.buf = nil
	e.zeros = nil
	e.out = nil
}

// MzDeltaDecoder decodes packed mass strings produced by MzDeltaEncoder.
type MzDeltaDecoder struct{}

var _ ColumnarDecoder[float32] = MzDeltaDecoder{}

// NewMzDeltaDecoder creates a new mass sequence decoder.
func NewMzDeltaDecoder() MzDeltaDecoder {
	return MzDeltaDecoder{}
}

// All yields the count decoded mass values. It stops early on malformed data.
func (d MzDeltaDecoder) All(data []byte, count int) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		values, err := DecodeMz(string(data), count)
		if err != nil {
			return
		}

		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// At returns the value at index. Deltas are cumulative, so every value
// before index is decoded as well.
func (d MzDeltaDecoder) At(data []byte, index int, count int) (float32, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	values, err := DecodeMz(string(data), count)
	if err != nil {
		return 0, false
	}

	return values[index], true
}
