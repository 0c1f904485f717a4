package textenc

import (
	"fmt"
	"strings"

	"github.com/mspack/mspack/endian"
)

// b85Alphabet is the RFC 1924 character set, also used by git binary patches.
const b85Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

var (
	b85Engine = endian.GetBigEndianEngine()
	b85Lookup [256]int8
)

func init() {
	for i := range b85Lookup {
		b85Lookup[i] = -1
	}
	for i := range len(b85Alphabet) {
		b85Lookup[b85Alphabet[i]] = int8(i)
	}
}

// B85 encodes every 4 bytes as 5 characters from the RFC 1924 alphabet.
//
// A short final group is zero padded before encoding and the padding
// characters are dropped afterwards, so the output length is
// ceil(len(data)*5/4). Decode reverses this by padding with '~'.
type B85 struct{}

var _ Encoder = B85{}

func (B85) Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow((len(data) + 3) / 4 * 5)

	var word [4]byte
	var group [5]byte
	for i := 0; i < len(data); i += 4 {
		n := copy(word[:], data[i:])
		clear(word[n:])

		v := b85Engine.Uint32(word[:])
		for j := 4; j >= 0; j-- {
			group[j] = b85Alphabet[v%85]
			v /= 85
		}

		// a partial group of n bytes needs n+1 characters
		if n < 4 {
			sb.Write(group[:n+1])
		} else {
			sb.Write(group[:])
		}
	}

	return sb.String()
}

func (B85) Decode(text string) ([]byte, error) {
	if len(text) == 0 {
		return []byte{}, nil
	}

	out := make([]byte, 0, (len(text)+4)/5*4)

	var group [5]byte
	for i := 0; i < len(text); i += 5 {
		n := copy(group[:], text[i:])
		for j := n; j < 5; j++ {
			group[j] = '~'
		}

		var acc uint64
		for j, c := range group {
			d := b85Lookup[c]
			if d < 0 {
				return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, c, i+j)
			}
			acc = acc*85 + uint64(d)
		}
		if acc > 0xffffffff {
			return nil, fmt.Errorf("%w in group at offset %d", ErrOverflow, i)
		}

		out = b85Engine.AppendUint32(out, uint32(acc))
		if n < 5 {
			// drop the bytes contributed by the '~' padding
			out = out[:len(out)-(5-n)]
		}
	}

	return out, nil
}
