package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

// BrotliCompressor provides Brotli compression.
//
// Brotli gives the best ratio on the short ASCII payloads produced by the
// spectrum package, which is why the URL presets use it. It is also the
// format browsers can decode natively.
type BrotliCompressor struct {
	level int
}

var _ Codec = (*BrotliCompressor)(nil)

// NewBrotliCompressor creates a Brotli compressor at the best compression level.
func NewBrotliCompressor() BrotliCompressor {
	return BrotliCompressor{level: brotli.BestCompression}
}

// NewBrotliCompressorLevel creates a Brotli compressor with the given level (0-11).
func NewBrotliCompressorLevel(level int) BrotliCompressor {
	return BrotliCompressor{level: level}
}

// Compress compresses the input data using Brotli.
func (c BrotliCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := brotli.NewWriterLevel(&buf, c.level)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("brotli compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("brotli compression failed: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress decompresses Brotli data.
func (c BrotliCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(data)))
	if err != nil {
		return nil, fmt.Errorf("brotli decompression failed: %w", err)
	}

	return out, nil
}
