package encoding

import (
	"fmt"
	"iter"
	"math"

	"github.com/mspack/mspack/internal/pool"
)

// EncodeIntensities concatenates the 8 digit bit patterns of values. The
// fields have a fixed width, so no count table is needed.
func EncodeIntensities(values []float32) string {
	buf := pool.GetPatternBuffer()
	defer pool.PutPatternBuffer(buf)

	buf.B = AppendIntensities(buf.B, values)

	return string(buf.B)
}

// AppendIntensities appends the 8 digit bit pattern of every value to dst.
func AppendIntensities(dst []byte, values []float32) []byte {
	for _, v := range values {
		dst = AppendPattern(dst, math.Float32bits(v))
	}

	return dst
}

// DecodeIntensities splits s into 8 digit fields and decodes each one.
func DecodeIntensities(s string) ([]float32, error) {
	if len(s)%PatternWidth != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrTruncated, len(s), PatternWidth)
	}

	out := make([]float32, len(s)/PatternWidth)
	for i := range out {
		off := i * PatternWidth
		v, err := PatternToFloat(s[off : off+PatternWidth])
		if err != nil {
			return nil, fmt.Errorf("intensity %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// IntensityHexEncoder is a streaming encoder for intensity sequences.
//
// Every value occupies exactly PatternWidth bytes of output.
type IntensityHexEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[float32] = (*IntensityHexEncoder)(nil)

// NewIntensityHexEncoder creates a new intensity encoder backed by a pooled buffer.
func NewIntensityHexEncoder() *IntensityHexEncoder {
	return &IntensityHexEncoder{
		buf: pool.GetPatternBuffer(),
	}
}

// Write encodes a single intensity value.
//
// Panics if Finish() has been called (nil buffer).
func (e *IntensityHexEncoder) Write(val float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(PatternWidth)
	e.buf.B = AppendPattern(e.buf.B, math.Float32bits(val))
}

// WriteSlice encodes a slice of intensity values.
//
// Panics if Finish() has been called (nil buffer).
func (e *IntensityHexEncoder) WriteSlice(values []float32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(values)
	e.buf.Grow(len(values) * PatternWidth)
	e.buf.B = AppendIntensities(e.buf.B, values)
}

// Bytes returns the encoded patterns. The slice references the internal buffer.
func (e *IntensityHexEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *IntensityHexEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes, always Len() * PatternWidth.
func (e *IntensityHexEncoder) Size() int {
	return e.buf.Len()
}

// Reset discards all written values so a new sequence can be encoded.
func (e *IntensityHexEncoder) Reset() {
	e.buf.Reset()
	e.count = 0
}

// Finish returns the buffer to the pool. The encoder is unusable afterwards.
func (e *IntensityHexEncoder) Finish() {
	pool.PutPatternBuffer(e.buf)
	e.buf = nil
}

// IntensityHexDecoder decodes fixed-width intensity strings.
type IntensityHexDecoder struct{}

var _ ColumnarDecoder[float32] = IntensityHexDecoder{}

// NewIntensityHexDecoder creates a new intensity decoder.
func NewIntensityHexDecoder() IntensityHexDecoder {
	return IntensityHexDecoder{}
}

// All yields up to count values, stopping at the first malformed field.
func (d IntensityHexDecoder) All(data []byte, count int) iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for i := 0; i < count; i++ {
			v, ok := d.At(data, i, count)
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// At decodes the value at index directly from its fixed offset.
func (d IntensityHexDecoder) At(data []byte, index int, count int) (float32, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	off := index * PatternWidth
	if off+PatternWidth > len(data) {
		return 0, false
	}

	v, err := PatternToFloat(string(data[off : off+PatternWidth]))
	if err != nil {
		return 0, false
	}

	return v, true
}
