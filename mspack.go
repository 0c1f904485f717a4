// Package mspack packs mass-spectrometry peak lists into short strings that
// fit in a URL.
//
// A spectrum goes through three stages:
//
//  1. the spectrum package encodes the mass column as delta packed bit
//     patterns and the intensity column as fixed width bit patterns, then
//     frames both as a JSON pair;
//  2. a compress.Codec shrinks the frame (Brotli by default);
//  3. a textenc.Encoder makes the bytes printable (URL-safe base64 by
//     default).
//
// Every stage is lossless: decompressing returns the exact float32 bit
// patterns that went in, including NaN payloads and signed zeros.
//
// # Basic Usage
//
//	c := mspack.NewURLCompressor()
//
//	s, err := c.Compress(mzs, intensities)
//	if err != nil {
//	    return err
//	}
//	link := "https://example.org/spectrum?data=" + s
//
//	mzs, intensities, err = c.Decompress(s)
//
// # Presets
//
//   - NewURLCompressor: Brotli + URL-safe base64, for query strings
//   - NewB85Compressor: Brotli + base85, shortest text for JSON bodies
//   - NewGzipURLCompressor: gzip + URL-safe base64, decodable by any browser
//
// Other combinations are built with NewCompressor and the With* options:
//
//	c, err := mspack.NewCompressor(
//	    mspack.WithCompression(format.CompressionZstd),
//	    mspack.WithTextEncoding(format.TextB85),
//	)
package mspack

import (
	"fmt"

	"github.com/mspack/mspack/compress"
	"github.com/mspack/mspack/format"
	"github.com/mspack/mspack/internal/options"
	"github.com/mspack/mspack/spectrum"
	"github.com/mspack/mspack/textenc"
)

// strategyName identifies the lossless float32 spectrum encoding in
// Compressor names.
const strategyName = "SpectrumCompressorF32"

// Compressor runs the full spectrum -> text pipeline.
//
// A Compressor is immutable after construction and safe for concurrent use.
type Compressor struct {
	compression format.CompressionType
	text        format.TextEncoding
	codecName   string
	codec       compress.Codec
	encoder     textenc.Encoder
}

// NewCompressor creates a Compressor. Without options it uses Brotli and
// URL-safe base64, the same as NewURLCompressor.
func NewCompressor(opts ...CompressorOption) (*Compressor, error) {
	c := &Compressor{}
	if err := c.setCompression(format.CompressionBrotli); err != nil {
		return nil, err
	}
	if err := c.setTextEncoding(format.TextURL); err != nil {
		return nil, err
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// NewURLCompressor returns the Brotli + URL-safe base64 preset.
func NewURLCompressor() *Compressor {
	return mustCompressor(WithCompression(format.CompressionBrotli), WithTextEncoding(format.TextURL))
}

// NewB85Compressor returns the Brotli + base85 preset.
func NewB85Compressor() *Compressor {
	return mustCompressor(WithCompression(format.CompressionBrotli), WithTextEncoding(format.TextB85))
}

// NewGzipURLCompressor returns the gzip + URL-safe base64 preset.
func NewGzipURLCompressor() *Compressor {
	return mustCompressor(WithCompression(format.CompressionGzip), WithTextEncoding(format.TextURL))
}

// Presets returns one instance of every preset, in the order they are
// documented.
func Presets() []*Compressor {
	return []*Compressor{NewURLCompressor(), NewB85Compressor(), NewGzipURLCompressor()}
}

// mustCompressor panics on error; only used with built-in option values.
func mustCompressor(opts ...CompressorOption) *Compressor {
	c, err := NewCompressor(opts...)
	if err != nil {
		panic(fmt.Sprintf("mspack: invalid preset: %v", err))
	}

	return c
}

// Compression returns the configured compression algorithm.
func (c *Compressor) Compression() format.CompressionType {
	return c.compression
}

// TextEncoding returns the configured text encoding.
func (c *Compressor) TextEncoding() format.TextEncoding {
	return c.text
}

// String returns the pipeline name, e.g. "SpectrumCompressorF32_Brotli_URL".
func (c *Compressor) String() string {
	return strategyName + "_" + c.codecName + "_" + c.text.String()
}

// Compress packs the two columns into a printable string.
//
// Returns spectrum.ErrEmpty for an empty peak list and
// spectrum.ErrLengthMismatch when the columns differ in length.
func (c *Compressor) Compress(mz, intensity []float32) (string, error) {
	return c.CompressSpectrum(spectrum.Spectrum{Mz: mz, Intensity: intensity})
}

// CompressPeaks is Compress for a list of pairs.
func (c *Compressor) CompressPeaks(peaks []spectrum.Peak) (string, error) {
	return c.CompressSpectrum(spectrum.FromPeaks(peaks))
}

// CompressSpectrum packs sp into a printable string.
func (c *Compressor) CompressSpectrum(sp spectrum.Spectrum) (string, error) {
	frame, err := frameSpectrum(sp)
	if err != nil {
		return "", err
	}

	compressed, err := c.codec.Compress(frame)
	if err != nil {
		return "", fmt.Errorf("%s compression failed: %w", c.codecName, err)
	}

	return c.encoder.Encode(compressed), nil
}

// Decompress reverses Compress.
func (c *Compressor) Decompress(s string) (mz, intensity []float32, err error) {
	sp, err := c.DecompressSpectrum(s)
	if err != nil {
		return nil, nil, err
	}

	return sp.Mz, sp.Intensity, nil
}

// DecompressSpectrum reverses CompressSpectrum.
func (c *Compressor) DecompressSpectrum(s string) (spectrum.Spectrum, error) {
	compressed, err := c.encoder.Decode(s)
	if err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("%s decoding failed: %w", c.text, err)
	}

	frame, err := c.codec.Decompress(compressed)
	if err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("%s decompression failed: %w", c.codecName, err)
	}

	packed, err := spectrum.Unframe(frame)
	if err != nil {
		return spectrum.Spectrum{}, err
	}

	return spectrum.Decode(packed)
}

func frameSpectrum(sp spectrum.Spectrum) ([]byte, error) {
	packed, err := spectrum.Encode(sp)
	if err != nil {
		return nil, err
	}

	return spectrum.Frame(packed)
}
