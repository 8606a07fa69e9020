package tilemage

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// MaxColors is the largest palette size this format supports: 16 entries,
// addressable by a 4-bit pixel index.
const MaxColors = 16

// Palette is an ordered list of up to MaxColors colors. Index 0 is
// conventionally transparent but is not treated specially by this package.
type Palette []Color

// Encode returns the palette as a 2*len(p)-byte little-endian blob: one
// entry per actual color, with no padding to MaxColors.
func (p Palette) Encode() []byte {
	out := make([]byte, 0, len(p)*2)
	for _, c := range p {
		b := c.toLEBytes()
		out = append(out, b[0], b[1])
	}
	return out
}

// String renders the palette as the 64-hex-character palette string format:
// MaxColors entries, each printed via Color.String, concatenated with no
// separator.
func (p Palette) String() string {
	var sb strings.Builder
	for i := 0; i < MaxColors; i++ {
		var c Color
		if i < len(p) {
			c = p[i]
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParsePaletteString parses the 64-hex-character palette string format back
// into a Palette. Any length other than 64 is an error.
func ParsePaletteString(s string) (Palette, error) {
	if len(s) != MaxColors*4 {
		return nil, fmt.Errorf("tilemage: palette string must be %d hex characters, got %d", MaxColors*4, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("tilemage: palette string: %w", err)
	}
	pal := make(Palette, MaxColors)
	for i := 0; i < MaxColors; i++ {
		pal[i] = colorFromLEBytes(raw[i*2], raw[i*2+1])
	}
	return pal, nil
}

// lookup returns the index of c within p, or -1 if c is not present.
func (p Palette) lookup(c Color) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}
