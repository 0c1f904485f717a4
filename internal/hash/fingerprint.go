// Package hash fingerprints compressed spectrum strings.
package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint computes the xxHash64 of the given string.
func Fingerprint(data string) uint64 {
	return xxhash.Sum64String(data)
}

// FingerprintBytes computes the xxHash64 of the given bytes.
func FingerprintBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ETag renders the fingerprint of data as a strong HTTP entity tag.
func ETag(data string) string {
	return `"` + Hex(Fingerprint(data)) + `"`
}

// Hex renders a fingerprint as 16 lowercase hex digits.
func Hex(v uint64) string {
	return fmt.Sprintf("%016x", v)
}
