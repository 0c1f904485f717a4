// Package encoding turns mass and intensity columns of a peak list into
// compact hex strings.
//
// Most users should use the spectrum package or the top-level mspack
// Compressor, which pair the two columns and hand them to a compressor.
// Use this package directly when only the hex strings are needed.
//
// # Bit Patterns
//
// Every float32 is handled through its IEEE-754 bit pattern, rendered as
// exactly 8 lowercase hex digits, most significant byte first:
//
//	encoding.FloatToPattern(500.25)          // "43fa2000"
//	f, _ := encoding.PatternToFloat("43fa2000") // 500.25
//
// The float is reinterpreted, never converted: NaN payloads, infinities,
// signed zeros and subnormals all round-trip bit for bit.
//
// # Mass Column
//
// Sorted masses are numerically close, so their bit patterns read as
// unsigned integers are close as well. The mass column stores:
//
//  1. the first pattern verbatim,
//  2. each following pattern as (bits[i] - bits[i-1]) mod 2^32,
//  3. every one of these 8 digit deltas without its leading '0' digits,
//  4. a trailing table with one count digit per value (how many zeros were
//     dropped), written in reverse order.
//
// For [500.25, 500.26]:
//
//	patterns:  43fa2000 43fa2148
//	deltas:    43fa2000 00000148
//	stripped:  43fa2000 148        counts: 0 5
//	packed:    "43fa2000" + "148" + "50"
//
// There are no separators. A decoder either knows the number of values
// (DecodeMz) or walks counts from the end and data from the front until they
// meet (DecodeMzStream).
//
// # Intensity Column
//
// Intensities carry no relation to their neighbours. Each one is written as
// its fixed 8 digit pattern, so the column is self-delimiting and its length
// is always 8 × N.
//
// # Streaming Encoders
//
// MzDeltaEncoder and IntensityHexEncoder implement ColumnarEncoder[float32]
// on top of pooled buffers:
//
//	enc := encoding.NewMzDeltaEncoder()
//	defer enc.Finish()
//
//	enc.WriteSlice(mzs)
//	packed := string(enc.Bytes())
//
// The matching decoders implement ColumnarDecoder[float32].
//
// # Errors
//
// Decoding never guesses. A count that cannot be a single hex digit yields
// ErrZeroCountRange; short data yields ErrTruncated; leftover data yields
// ErrTrailingData; a count table of the wrong size yields ErrCountTableLength;
// anything that is not hex yields ErrInvalidPattern.
//
// # Thread Safety
//
// The package level functions and the decoders are safe for concurrent use.
// Encoders are not; use one per goroutine.
package encoding
