package encoding

import "errors"

var (
	// ErrZeroCountRange is returned when a leading-zero-nibble count does not
	// fit in a single hex digit (count >= 16).
	ErrZeroCountRange = errors.New("zero count out of range [0, 15]")

	// ErrInvalidPattern is returned when a bit pattern or count digit is not
	// valid hexadecimal of the expected width.
	ErrInvalidPattern = errors.New("invalid hex pattern")

	// ErrTruncated is returned when the packed data is shorter than the field
	// widths declared by its count table.
	ErrTruncated = errors.New("packed data truncated")

	// ErrTrailingData is returned when packed data remains after every
	// declared field has been consumed.
	ErrTrailingData = errors.New("unexpected trailing packed data")

	// ErrCountTableLength is returned when the zero-count suffix does not hold
	// exactly one digit per value.
	ErrCountTableLength = errors.New("zero count table length mismatch")

	// ErrEmptySequence is returned when a sequence that needs at least one
	// value is empty.
	ErrEmptySequence = errors.New("empty sequence")
)
