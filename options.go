package mspack

import (
	"errors"

	"github.com/mspack/mspack/compress"
	"github.com/mspack/mspack/format"
	"github.com/mspack/mspack/internal/options"
	"github.com/mspack/mspack/textenc"
)

// CompressorOption configures a Compressor.
type CompressorOption = options.Option[*Compressor]

// WithCompression selects a built-in compression algorithm.
func WithCompression(ct format.CompressionType) CompressorOption {
	return options.New(func(c *Compressor) error {
		return c.setCompression(ct)
	})
}

// WithTextEncoding selects the text encoding applied after compression.
func WithTextEncoding(te format.TextEncoding) CompressorOption {
	return options.New(func(c *Compressor) error {
		return c.setTextEncoding(te)
	})
}

// WithCodec installs a custom codec. The Compressor name reports it as
// "Custom".
func WithCodec(codec compress.Codec) CompressorOption {
	return options.New(func(c *Compressor) error {
		if codec == nil {
			return errors.New("codec must not be nil")
		}
		c.codec = codec
		c.codecName = "Custom"

		return nil
	})
}

func (c *Compressor) setCompression(ct format.CompressionType) error {
	codec, err := compress.CreateCodec(ct, "payload")
	if err != nil {
		return err
	}
	c.compression = ct
	c.codec = codec
	c.codecName = ct.String()

	return nil
}

func (c *Compressor) setTextEncoding(te format.TextEncoding) error {
	enc, err := textenc.New(te)
	if err != nil {
		return err
	}
	c.text = te
	c.encoder = enc

	return nil
}
