package spectrum

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/mspack/mspack/internal/pool"
)

// Frame serialises p as a two element JSON array, mass column first.
//
// Elements are separated by ", " so frames match those written by the
// existing Python tooling byte for byte.
func Frame(p Packed) ([]byte, error) {
	mz, err := json.Marshal(p.Mz)
	if err != nil {
		return nil, err
	}
	intensity, err := json.Marshal(p.Intensity)
	if err != nil {
		return nil, err
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)

	buf.Grow(len(mz) + len(intensity) + 4)
	buf.B = append(buf.B, '[')
	buf.MustWrite(mz)
	buf.B = append(buf.B, ", "...)
	buf.MustWrite(intensity)
	buf.B = append(buf.B, ']')

	return bytes.Clone(buf.Bytes()), nil
}

// Unframe parses a frame produced by Frame. Any JSON whitespace is accepted.
func Unframe(data []byte) (Packed, error) {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return Packed{}, fmt.Errorf("%w: %w", ErrMalformedFrame, err)
	}
	if len(pair) != 2 {
		return Packed{}, fmt.Errorf("%w: %d elements, want 2", ErrMalformedFrame, len(pair))
	}

	return Packed{Mz: pair[0], Intensity: pair[1]}, nil
}
