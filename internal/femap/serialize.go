package femap

import (
	"fmt"
	"strings"
)

// EncodeTiles serializes a tile slice as little-endian uint16 words.
func EncodeTiles(tiles []uint16) []byte {
	out := make([]byte, len(tiles)*2)
	for i, v := range tiles {
		out[i*2] = byte(v)
		out[i*2+1] = byte(v >> 8)
	}
	return out
}

// Serialize writes m's primary tile table as a flat little-endian blob,
// Width*Height*2 bytes.
func (m *Map) Serialize() []byte {
	return EncodeTiles(m.Tiles)
}

// Serialize writes mc's cropped tile table the same way Map.Serialize
// does for the primary map.
func (mc *MapChange) Serialize() []byte {
	return EncodeTiles(mc.Tiles)
}

// PropertiesText renders m's primary-layer properties as a simple
// key=value text table, one property per line.
func (m *Map) PropertiesText() string {
	var sb strings.Builder
	for _, kv := range m.Properties {
		fmt.Fprintf(&sb, "%s=%s\n", kv.Key, kv.Value)
	}
	return sb.String()
}

// DecodeTiles is the inverse of EncodeTiles, used by ImportRaw.
func DecodeTiles(data []byte) []uint16 {
	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = uint16(data[i*2]) | uint16(data[i*2+1])<<8
	}
	return out
}

// ImportRaw builds a Map directly from a flat width*height*2-byte tile
// blob, bypassing TMX decoding entirely, for re-exporting a blob that
// didn't originate from Tiled. It validates the blob length before
// anything else.
func ImportRaw(data []byte, width, height int) (*Map, error) {
	want := width * height * 2
	if len(data) != want {
		return nil, Problem{Kind: KindSizeMismatch, Got: len(data), Want: want}
	}
	return &Map{
		Width:  width,
		Height: height,
		Tiles:  DecodeTiles(data),
	}, nil
}
