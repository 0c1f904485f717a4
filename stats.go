package mspack

import (
	"net/url"

	"github.com/mspack/mspack/compress"
	"github.com/mspack/mspack/internal/hash"
	"github.com/mspack/mspack/spectrum"
)

// Stats describes one CompressWithStats run.
type Stats struct {
	compress.CompressionStats

	// Name is the Compressor name.
	Name string
	// Peaks is the number of peaks compressed.
	Peaks int
	// TextSize is the length of the final string.
	TextSize int64
	// QuerySize is the length of "data=<text>" after query escaping.
	QuerySize int64
	// Fingerprint is the xxHash64 of the final string.
	Fingerprint uint64
}

// TextRatio returns the final text size relative to the uncompressed frame.
func (s Stats) TextRatio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.TextSize) / float64(s.OriginalSize)
}

// CompressWithStats compresses sp and measures every stage, including a
// decompression of the compressed bytes.
func (c *Compressor) CompressWithStats(sp spectrum.Spectrum) (string, Stats, error) {
	frame, err := frameSpectrum(sp)
	if err != nil {
		return "", Stats{}, err
	}

	compressed, cs, err := compress.Measure(c.compression, c.codec, frame)
	if err != nil {
		return "", Stats{}, err
	}

	text := c.encoder.Encode(compressed)
	stats := Stats{
		CompressionStats: cs,
		Name:             c.String(),
		Peaks:            sp.Len(),
		TextSize:         int64(len(text)),
		QuerySize:        int64(len(url.Values{"data": {text}}.Encode())),
		Fingerprint:      hash.Fingerprint(text),
	}

	return text, stats, nil
}
