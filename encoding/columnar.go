package encoding

import "iter"

// ColumnarEncoder encodes one column of a peak list into its hex string form.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, Bytes or Reset.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded column.
	Size() int

	// Reset discards all written values so the encoder can start a new
	// column. Pooled buffers are kept.
	Reset()

	// Finish finalizes the encoding process and returns buffer resources to the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Any subsequent calls to
	// Write(), WriteSlice(), Bytes(), Len(), or Size() will result in a panic due to nil buffer.
	//
	//	encoder := NewMzDeltaEncoder()
	//	defer encoder.Finish()  // Ensure buffer is returned to pool
	//
	//	encoder.WriteSlice(mzs)
	//	packed := string(encoder.Bytes())  // Copy data before Finish
	Finish()

	// Write a single value.
	Write(data T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}

type ColumnarDecoder[T comparable] interface {
	// All returns a iterator that yields all decoded items from the provided encoded data.
	//
	// The count parameter specifies the expected number of values to decode.
	// If the data is malformed or does not contain enough values, the iterator
	// may yield fewer values. Callers that need the reason should use the
	// package level Decode functions instead.
	All(data []byte, count int) iter.Seq[T]

	// At retrieves the value at the specified zero-based index from the encoded data.
	//
	// If the index is out of bounds (index < 0 or index >= count) or the data
	// is malformed, the second return value will be false.
	At(data []byte, index int, count int) (T, bool)
}
