package encoding

import (
	"fmt"

	"github.com/mspack/mspack/internal/hexx"
	"github.com/mspack/mspack/internal/pool"
)

// PackDeltas delta-encodes a sequence of 8 digit bit patterns.
//
// The first pattern is kept verbatim, every following one is replaced by
// its difference to the predecessor modulo 2^32. Each resulting pattern
// loses its leading '0' digits; the number dropped is reported in zeros,
// one entry per pattern.
//
// Example:
//
//	data, zeros, _ := encoding.PackDeltas([]string{"43fa1000", "43fa147b"})
//	// data == "43fa100047b", zeros == []uint8{0, 5}
func PackDeltas(patterns []string) (string, []uint8, error) {
	if len(patterns) == 0 {
		return "", nil, ErrEmptySequence
	}

	vals, cleanup := pool.GetUint32Slice(len(patterns))
	defer cleanup()

	for i, p := range patterns {
		v, err := ParsePattern(p)
		if err != nil {
			return "", nil, fmt.Errorf("pattern %d: %w", i, err)
		}
		vals[i] = v
	}

	zeros := make([]uint8, len(patterns))
	data, err := appendDeltas(make([]byte, 0, len(patterns)*PatternWidth), zeros, vals)
	if err != nil {
		return "", nil, err
	}

	return string(data), zeros, nil
}

// UnpackDeltas rebuilds the bit patterns from the stripped data and the
// per-pattern zero counts produced by PackDeltas.
//
// The data carries no separators: every field width is 8 minus its count, so
// a wrong count shifts every field after it.
func UnpackDeltas(data string, zeros []uint8) ([]string, error) {
	vals, err := unpackDeltas(make([]uint32, 0, len(zeros)), data, zeros)
	if err != nil {
		return nil, err
	}

	patterns := make([]string, len(vals))
	var buf [PatternWidth]byte
	for i, v := range vals {
		patterns[i] = string(AppendPattern(buf[:0], v))
	}

	return patterns, nil
}

// appendDeltas appends the stripped deltas of vals to dst and stores the
// zero count of each in zeros, which must be as long as vals.
func appendDeltas(dst []byte, zeros []uint8, vals []uint32) ([]byte, error) {
	var prev uint32
	for i, v := range vals {
		// prev is 0 for the first value, so its delta is the value itself
		d := v - prev
		z := leadingZeroNibbles(d)
		if err := checkZeroCount(z); err != nil {
			return dst, fmt.Errorf("delta %d: %w", i, err)
		}
		zeros[i] = z
		dst = appendStripped(dst, d, z)
		prev = v
	}

	return dst, nil
}

func appendStripped(dst []byte, d uint32, z uint8) []byte {
	var buf [PatternWidth]byte
	return append(dst, AppendPattern(buf[:0], d)[z:]...)
}

// unpackDeltas decodes the fields of data and appends the running sums to dst.
func unpackDeltas(dst []uint32, data string, zeros []uint8) ([]uint32, error) {
	var prev uint32
	pos := 0
	for i, z := range zeros {
		width, err := fieldWidth(z)
		if err != nil {
			return dst, fmt.Errorf("field %d: %w", i, err)
		}
		if pos+width > len(data) {
			return dst, fmt.Errorf("%w: field %d needs %d digits, %d left", ErrTruncated, i, width, len(data)-pos)
		}

		d, err := parseField(data[pos : pos+width])
		if err != nil {
			return dst, fmt.Errorf("field %d: %w", i, err)
		}
		pos += width

		prev += d
		dst = append(dst, prev)
	}

	if pos != len(data) {
		return dst, fmt.Errorf("%w: %d digits after %d fields", ErrTrailingData, len(data)-pos, len(zeros))
	}

	return dst, nil
}

// fieldWidth returns the number of data digits a field with z stripped zeros occupies.
func fieldWidth(z uint8) (int, error) {
	if err := checkZeroCount(z); err != nil {
		return 0, err
	}
	if z > PatternWidth {
		return 0, fmt.Errorf("%w: zero count %d exceeds pattern width %d", ErrInvalidPattern, z, PatternWidth)
	}

	return PatternWidth - int(z), nil
}

// parseField parses up to 8 hex digits. An empty field is zero.
func parseField(s string) (uint32, error) {
	var v uint32
	for i := 0; i < len(s); i++ {
		n, ok := hexx.Nibble(s[i])
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPattern, s)
		}
		v = v<<4 | uint32(n)
	}

	return v, nil
}
