// Package endian provides byte order utilities for the hex pattern codecs.
//
// This package combines encoding/binary's ByteOrder and AppendByteOrder into
// a single EndianEngine interface so that codecs can both append and read
// fixed-width words through one value.
//
// # Basic Usage
//
// Bit patterns are rendered most significant byte first, so the encoders use
// the pattern engine, which is big-endian:
//
//	engine := endian.GetPatternEngine()
//	buf = engine.AppendUint64(buf, hexx.Put32(bits))
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetPatternEngine returns the engine used for hex bit patterns.
//
// The wire format renders every 32-bit pattern most significant digit first,
// which is big-endian over the packed ASCII digits.
func GetPatternEngine() EndianEngine {
	return binary.BigEndian
}
