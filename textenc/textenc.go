// Package textenc turns compressed spectrum bytes into printable text that
// survives a URL query string or a JSON document.
package textenc

import (
	"errors"
	"fmt"

	"github.com/mspack/mspack/format"
)

var (
	// ErrInvalidCharacter is returned when the input holds a byte outside the
	// encoder's alphabet.
	ErrInvalidCharacter = errors.New("textenc: invalid character")
	// ErrOverflow is returned when a base85 group decodes to more than 32 bits.
	ErrOverflow = errors.New("textenc: base85 group overflow")
)

// Encoder converts between bytes and text.
//
// Implementations are stateless and safe for concurrent use.
type Encoder interface {
	// Encode renders data as text.
	Encode(data []byte) string
	// Decode parses text produced by Encode.
	Decode(text string) ([]byte, error)
}

// New returns the Encoder for the given text encoding.
func New(enc format.TextEncoding) (Encoder, error) {
	switch enc {
	case format.TextRaw:
		return Raw{}, nil
	case format.TextURL:
		return URL{}, nil
	case format.TextB85:
		return B85{}, nil
	default:
		return nil, fmt.Errorf("unsupported text encoding: %s", enc)
	}
}
