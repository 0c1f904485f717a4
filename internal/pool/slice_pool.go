package pool

import "sync"

// Slice pools for efficient reuse of typed slices.
// These pools help reduce allocations when splitting peak lists into columns
// and when holding intermediate bit patterns.
var (
	uint32SlicePool = sync.Pool{
		New: func() any { return &[]uint32{} },
	}
	uint8SlicePool = sync.Pool{
		New: func() any { return &[]uint8{} },
	}
)

// GetUint32Slice retrieves and resizes a uint32 slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// If the pooled slice has insufficient capacity, a new slice will be allocated.
// The caller must call the returned cleanup function to return the slice to the pool.
//
// Example:
//
//	patterns, cleanup := pool.GetUint32Slice(len(values))
//	defer cleanup()
func GetUint32Slice(size int) ([]uint32, func()) {
	ptr, _ := uint32SlicePool.Get().(*[]uint32)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint32, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint32SlicePool.Put(ptr) }
}

// GetUint8Slice retrieves and resizes a uint8 slice from the pool.
//
// The returned slice will have the exact length specified by the size parameter.
// The caller must call the returned cleanup function to return the slice to the pool.
func GetUint8Slice(size int) ([]uint8, func()) {
	ptr, _ := uint8SlicePool.Get().(*[]uint8)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]uint8, size)
		*ptr = slice
	} else {
		slice = slice[:size]
		*ptr = slice
	}

	return slice, func() { uint8SlicePool.Put(ptr) }
}
