package textenc

// Raw passes bytes through as a Go string.
//
// Only meaningful when the compressor is None; compressed bytes are rarely
// valid UTF-8.
type Raw struct{}

var _ Encoder = Raw{}

func (Raw) Encode(data []byte) string { return string(data) }

func (Raw) Decode(text string) ([]byte, error) { return []byte(text), nil }
