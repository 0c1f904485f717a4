package format

import (
	"fmt"
	"strings"
)

type (
	CompressionType uint8
	TextEncoding    uint8
)

const (
	CompressionNone   CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd   CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2     CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4    CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionGzip   CompressionType = 0x5 // CompressionGzip represents gzip (RFC 1952) compression.
	CompressionBrotli CompressionType = 0x6 // CompressionBrotli represents Brotli compression.

	TextRaw TextEncoding = 0x1 // TextRaw passes bytes through unchanged.
	TextURL TextEncoding = 0x2 // TextURL represents padded URL-safe base64.
	TextB85 TextEncoding = 0x3 // TextB85 represents base85 with the RFC 1924 alphabet.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	case CompressionBrotli:
		return "Brotli"
	default:
		return "Unknown"
	}
}

func (e TextEncoding) String() string {
	switch e {
	case TextRaw:
		return "Raw"
	case TextURL:
		return "URL"
	case TextB85:
		return "B85"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a case-insensitive algorithm name such as
// "brotli" or "zstd".
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "skip", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	case "brotli", "br":
		return CompressionBrotli, nil
	default:
		return 0, fmt.Errorf("unknown compression type %q", s)
	}
}

// ParseTextEncoding parses a case-insensitive text encoding name such as
// "url" or "b85".
func ParseTextEncoding(s string) (TextEncoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw", "skip", "":
		return TextRaw, nil
	case "url", "base64url":
		return TextURL, nil
	case "b85", "base85":
		return TextB85, nil
	default:
		return 0, fmt.Errorf("unknown text encoding %q", s)
	}
}
