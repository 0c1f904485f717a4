package encoding

import (
	"fmt"

	"github.com/mspack/mspack/internal/hexx"
)

// MaxZeroCount is the largest count a single hex digit of the count table
// can carry. Counts observed on 8 digit patterns never exceed PatternWidth.
const MaxZeroCount = 15

const hexDigits = "0123456789abcdef"

// PackZeroCounts renders each count as one hex digit in index order and
// returns the digits reversed, so the count of the first value is the last
// character.
//
// Example:
//
//	encoding.PackZeroCounts([]uint8{0, 5}) // "50"
func PackZeroCounts(zeros []uint8) (string, error) {
	buf, err := appendZeroCounts(make([]byte, 0, len(zeros)), zeros)
	if err != nil {
		return "", err
	}

	return string(buf), nil
}

// UnpackZeroCounts is the inverse of PackZeroCounts. The suffix must hold
// exactly n digits.
func UnpackZeroCounts(suffix string, n int) ([]uint8, error) {
	if n < 0 || len(suffix) != n {
		return nil, fmt.Errorf("%w: got %d digits, want %d", ErrCountTableLength, len(suffix), n)
	}

	zeros := make([]uint8, n)
	for i := range zeros {
		c := suffix[n-1-i]
		z, ok := hexx.Nibble(c)
		if !ok {
			return nil, fmt.Errorf("%w: count digit %q at %d", ErrInvalidPattern, c, i)
		}
		zeros[i] = z
	}

	return zeros, nil
}

// appendZeroCounts appends the reversed count table to dst.
func appendZeroCounts(dst []byte, zeros []uint8) ([]byte, error) {
	for i := len(zeros) - 1; i >= 0; i-- {
		if err := checkZeroCount(zeros[i]); err != nil {
			return dst, fmt.Errorf("count %d: %w", i, err)
		}
		dst = append(dst, hexDigits[zeros[i]])
	}

	return dst, nil
}

func checkZeroCount(z uint8) error {
	if z > MaxZeroCount {
		return fmt.Errorf("%w: %d", ErrZeroCountRange, z)
	}

	return nil
}
