// Package compress provides the byte-level compressors applied to framed
// spectrum payloads.
//
// # Overview
//
// mspack shrinks a peak list in two stages:
//
//  1. **Encoding**: the encoding package turns both columns into hex strings,
//     delta-packing the masses so that close values become short fields.
//  2. **Compression**: this package squeezes the framed hex text with a
//     general-purpose algorithm before it is made URL-safe by textenc.
//
// Supported algorithms:
//   - None: no compression
//   - Brotli: best ratio on short text, default for URL payloads
//   - Gzip: universally decodable, including browser DecompressionStream
//   - Zstd: strong ratio, fast decompression
//   - S2: fastest, moderate ratio
//   - LZ4: fast, moderate ratio, block format without size header
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are obtained by type:
//
//	codec, err := compress.CreateCodec(format.CompressionBrotli, "payload")
//	compressed, err := codec.Compress(data)
//	original, err := codec.Decompress(compressed)
//
// Measure runs a full round trip and reports a CompressionStats, which is
// what the stats command prints for every preset.
//
// # Zstd Backends
//
// The pure Go klauspost/compress implementation is the default. Building
// with cgo enabled and -tags gozstd switches to the valyala/gozstd bindings.
//
// # Thread Safety
//
// All codecs are stateless values and safe for concurrent use. Encoders and
// decoders held in internal pools are never shared between goroutines.
package compress
