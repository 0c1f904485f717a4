package textenc

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// URL is padded base64 with the URL-safe alphabet ('-' and '_' in place of
// '+' and '/').
//
// Decode accepts input with or without the trailing '=' padding, since query
// strings frequently lose it.
type URL struct{}

var _ Encoder = URL{}

func (URL) Encode(data []byte) string {
	return base64.URLEncoding.EncodeToString(data)
}

func (URL) Decode(text string) ([]byte, error) {
	out, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(text, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCharacter, err)
	}

	return out, nil
}
