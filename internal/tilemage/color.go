// Package tilemage converts indexed-color images into GBA tile and palette
// blobs: 4bpp nibble-packed 8x8 tiles and 15-bit-per-channel palette
// entries.
package tilemage

import "fmt"

// Color is a GBA 15-bit BGR color: 5 bits each of red, green, and blue, with
// the top bit of the 16-bit word unused.
type Color struct {
	R, G, B uint8 // 8-bit channel values as read from the source image
}

// to16Bit packs c into the GBA's 15-bit-per-channel, 16-bit word layout:
// bit15 unused, bits10-14 blue, bits5-9 green, bits0-4 red.
func (c Color) to16Bit() uint16 {
	r5 := uint16(c.R >> 3)
	g5 := uint16(c.G >> 3)
	b5 := uint16(c.B >> 3)
	return b5<<10 | g5<<5 | r5
}

// colorFrom16Bit unpacks a GBA 15-bit color word back into 8-bit channels:
// each 5-bit field is left-shifted by 3, leaving its low 3 bits zero.
func colorFrom16Bit(v uint16) Color {
	r5 := uint8(v & 0x1F)
	g5 := uint8((v >> 5) & 0x1F)
	b5 := uint8((v >> 10) & 0x1F)
	return Color{
		R: r5 << 3,
		G: g5 << 3,
		B: b5 << 3,
	}
}

// toLEBytes returns c's 16-bit word as two little-endian bytes, the layout
// used in both the palette block and any --palette-out file.
func (c Color) toLEBytes() [2]byte {
	v := c.to16Bit()
	return [2]byte{byte(v), byte(v >> 8)}
}

func colorFromLEBytes(lo, hi byte) Color {
	return colorFrom16Bit(uint16(lo) | uint16(hi)<<8)
}

// String renders c as a 4-hex-digit word in the byte-swapped convention
// used by palette strings: each byte of the little-endian 16-bit word is
// printed in storage order (low byte, then high byte) rather than the
// value's natural big-endian hex form, so a word whose bytes are
// {0xab, 0x4d} (value 0x4dab) prints as "ab4d".
func (c Color) String() string {
	b := c.toLEBytes()
	return fmt.Sprintf("%02x%02x", b[0], b[1])
}
