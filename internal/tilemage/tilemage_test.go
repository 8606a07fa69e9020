package tilemage

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestPalette_StringRoundTrip(t *testing.T) {
	pal := make(Palette, MaxColors)
	for i := range pal {
		pal[i] = Color{R: uint8(i * 8), G: uint8(i * 4), B: uint8(i * 2)}
	}
	s := pal.String()
	if len(s) != MaxColors*4 {
		t.Fatalf("got string length %d, want %d", len(s), MaxColors*4)
	}
	got, err := ParsePaletteString(s)
	if err != nil {
		t.Fatalf("ParsePaletteString: %v", err)
	}
	for i := range pal {
		// 5-bit truncation means only the top 5 bits of each channel
		// survive the round trip.
		want := colorFrom16Bit(pal[i].to16Bit())
		if got[i] != want {
			t.Fatalf("index %d: got %+v, want %+v", i, got[i], want)
		}
	}
}

func TestPalette_EncodeNoPadding(t *testing.T) {
	pal := Palette{{R: 8}, {G: 8}, {B: 8}}
	out := pal.Encode()
	if len(out) != 6 {
		t.Fatalf("got %d bytes, want 6 (2 per entry, no padding to MaxColors)", len(out))
	}
}

func TestResolvePalette_ExplicitTruncatedToMaxColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{A: 255})
	explicit := make(Palette, MaxColors+4)
	out, err := Convert(img, ResolveOptions{Explicit: explicit})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(out.Palette) != MaxColors {
		t.Fatalf("got palette size %d, want %d", len(out.Palette), MaxColors)
	}
}

func TestParsePaletteString_SwapConvention(t *testing.T) {
	// A single-entry palette whose LE bytes are {0xab, 0xcd} must print as
	// "abcd" and parse back to the same color.
	c := colorFrom16Bit(0xcdab)
	if got := c.String(); got != "abcd" {
		t.Fatalf("got %q, want %q", got, "abcd")
	}
}

func TestEncodeTiles_SinglePixel(t *testing.T) {
	img := &Image{
		Palette: Palette{{}, {R: 255}},
		Width:   8,
		Height:  8,
		Indices: make([]uint8, 64),
	}
	img.Indices[0] = 1 // top-left pixel uses palette index 1

	out, err := EncodeTiles(img)
	if err != nil {
		t.Fatalf("EncodeTiles: %v", err)
	}
	if len(out) != 32 {
		t.Fatalf("got %d bytes, want 32", len(out))
	}
	if out[0] != 0x01 {
		t.Fatalf("got first byte %#x, want 0x01 (index 1 in low nibble)", out[0])
	}
}

func TestEncodeTiles_BadDimensionsIsNotABug(t *testing.T) {
	img := &Image{
		Palette: Palette{{}},
		Width:   5,
		Height:  5,
		Indices: make([]uint8, 25),
	}
	_, err := EncodeTiles(img)
	if err == nil {
		t.Fatal("expected an error for non-multiple-of-8 dimensions")
	}
	if _, ok := err.(BugError); ok {
		t.Fatalf("BadDimensions should not be classified as a BugError: %v", err)
	}
}

func TestEncodeTiles_DimensionMismatchIsABug(t *testing.T) {
	img := &Image{
		Palette: Palette{{}},
		Width:   8,
		Height:  8,
		Indices: make([]uint8, 10), // wrong length
	}
	_, err := EncodeTiles(img)
	if _, ok := err.(BugError); !ok {
		t.Fatalf("got %v (%T), want BugError", err, err)
	}
}

func TestConvert_ExplicitPalette(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	red := color.RGBA{R: 255, A: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, red)
		}
	}
	explicit := Palette{{}, {R: 255}}
	out, err := Convert(img, ResolveOptions{Explicit: explicit})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	for _, idx := range out.Indices {
		if idx != 1 {
			t.Fatalf("got index %d, want 1 (all-red image)", idx)
		}
	}
}

func TestConvert_TooManyColors(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	bg := color.RGBA{A: 255}
	for x := 0; x < 8; x++ {
		img.Set(x, 0, bg)
		img.Set(x, 1, bg)
	}
	for y := 2; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), A: 255})
		}
	}
	_, err := Convert(img, ResolveOptions{})
	if err == nil {
		t.Fatal("expected KindTooManyColors error")
	}
	if p, ok := err.(Problem); !ok || p.Kind != KindTooManyColors {
		t.Fatalf("got %v, want Problem{Kind: KindTooManyColors}", err)
	}
}

func TestConvert_NarrowImageRasterPaletteScan(t *testing.T) {
	// 4 pixels wide: rule 3's 16-pixel scan must wrap into rows 1-3 to
	// gather its 16 distinct colors, not bail out because width < 16.
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	n := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(n * 16), A: 255})
			n++
		}
	}
	out, err := Convert(img, ResolveOptions{})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(out.Palette) != 16 {
		t.Fatalf("got palette size %d, want 16", len(out.Palette))
	}
}

func TestValidate_OnlyOneDimensionMultipleOf8IsFine(t *testing.T) {
	img := &Image{
		Palette: Palette{{}},
		Width:   8,
		Height:  5,
		Indices: make([]uint8, 40),
	}
	for _, p := range img.Validate() {
		if p.Kind == KindBadDimensions {
			t.Fatalf("8x5 should not raise KindBadDimensions: %v", p)
		}
	}
}

func TestEncodeTiles_NonMultipleOf8Height(t *testing.T) {
	img := &Image{
		Palette: Palette{{}, {R: 255}},
		Width:   8,
		Height:  1,
		Indices: make([]uint8, 8),
	}
	img.Indices[1] = 1

	out, err := EncodeTiles(img)
	if err != nil {
		t.Fatalf("EncodeTiles: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("got %d bytes, want 4 ((8*1)/2)", len(out))
	}
	if out[0] != 0x10 {
		t.Fatalf("got first byte %#x, want 0x10 (index 1 in high nibble)", out[0])
	}
}

func TestEncodeTiles_MultiTileOrder(t *testing.T) {
	// A 16x8 image (two tiles side by side) must encode tile 0 fully
	// before any of tile 1.
	img := &Image{
		Palette: Palette{{}, {R: 255}},
		Width:   16,
		Height:  8,
		Indices: make([]uint8, 128),
	}
	img.Indices[8] = 1 // top-left pixel of the second tile

	out, err := EncodeTiles(img)
	if err != nil {
		t.Fatalf("EncodeTiles: %v", err)
	}
	firstTile := out[:32]
	if !bytes.Equal(firstTile, make([]byte, 32)) {
		t.Fatalf("first tile should be all zero, got %v", firstTile)
	}
	if out[32] != 0x01 {
		t.Fatalf("got second tile first byte %#x, want 0x01", out[32])
	}
}
