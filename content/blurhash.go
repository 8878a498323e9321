package content

import (
	"github.com/buckket/go-blurhash"
)

// BlurHash is a compact placeholder encoding of an image preview.
type BlurHash struct {
	raw     string
	x, y    int
	checked bool
}

// ParseBlurHash validates raw by decoding its component header and length.
func ParseBlurHash(raw string) (BlurHash, error) {
	if raw == "" {
		return BlurHash{}, &FormatError{Format: "blurhash", Raw: raw, Err: ErrEmpty}
	}
	x, y, err := blurhash.Components(raw)
	if err != nil {
		return BlurHash{}, &FormatError{Format: "blurhash", Raw: raw, Err: err}
	}
	return BlurHash{raw: raw, x: x, y: y, checked: true}, nil
}

func (b BlurHash) String() string { return b.raw }
func (b BlurHash) Valid() bool    { return b.checked }

// Components returns the horizontal and vertical component counts.
func (b BlurHash) Components() (x, y int) { return b.x, b.y }
