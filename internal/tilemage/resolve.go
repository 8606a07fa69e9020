package tilemage

import (
	"image"
	"image/color"
)

// ResolveOptions controls how Convert picks a palette for a source image
// that doesn't carry one of its own.
type ResolveOptions struct {
	// Explicit, if non-nil, is used (truncated to its first MaxColors
	// entries): no other resolution step runs.
	Explicit Palette
}

// Convert resolves a palette for src and remaps every pixel to a palette
// index, producing an Image ready for Validate and tile encoding. The
// palette is chosen by the first of these that applies:
//
//  1. opts.Explicit, if set, truncated to its first MaxColors entries.
//  2. src's own color.Palette, if it is an *image.Paletted (PNG PLTE).
//  3. the distinct colors found scanning the first 16 pixels in raster
//     order (row 0, then continuing into row 1 and beyond if the image is
//     narrower than 16 pixels), if that scan yields exactly 16 distinct
//     colors.
//  4. the distinct colors found scanning the top-left 8x2 block (row 0 and
//     row 1, 8 pixels each), if that yields exactly that many colors.
//  5. a full left-to-right, top-to-bottom scan collecting every distinct
//     color in first-seen order, erroring with KindTooManyColors if it
//     exceeds MaxColors.
func Convert(src image.Image, opts ResolveOptions) (*Image, error) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	pal, err := resolvePalette(src, opts)
	if err != nil {
		return nil, err
	}

	indices := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := toColor(src.At(bounds.Min.X+x, bounds.Min.Y+y))
			idx := pal.lookup(c)
			if idx < 0 {
				return nil, Problem{Kind: KindUnknownColor, X: x, Y: y}
			}
			indices[y*w+x] = uint8(idx)
		}
	}

	return &Image{Palette: pal, Width: w, Height: h, Indices: indices}, nil
}

func toColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

func resolvePalette(src image.Image, opts ResolveOptions) (Palette, error) {
	if opts.Explicit != nil {
		if len(opts.Explicit) > MaxColors {
			return opts.Explicit[:MaxColors], nil
		}
		return opts.Explicit, nil
	}

	if paletted, ok := src.(*image.Paletted); ok && len(paletted.Palette) > 0 {
		if len(paletted.Palette) > MaxColors {
			return nil, Problem{Kind: KindTooManyColors, Count: len(paletted.Palette)}
		}
		pal := make(Palette, len(paletted.Palette))
		for i, c := range paletted.Palette {
			pal[i] = toColor(c)
		}
		return pal, nil
	}

	bounds := src.Bounds()

	if pal, ok := scanRasterDistinct(src, bounds, 16); ok {
		return pal, nil
	}
	if pal, ok := scanDistinct(src, bounds.Min.X, bounds.Min.Y, 8, 2); ok {
		return pal, nil
	}

	return scanFull(src, bounds)
}

// scanRasterDistinct collects the distinct colors among the first n pixels
// of bounds in raster order (row 0 left-to-right, then row 1, and so on),
// regardless of how narrow bounds is. It reports ok=false if bounds has
// fewer than n pixels total, or if those n pixels contain fewer than n
// distinct colors, since either case means the scan wasn't a full fixed
// palette swatch.
func scanRasterDistinct(src image.Image, bounds image.Rectangle, n int) (Palette, bool) {
	var pal Palette
	seen := 0
	for y := bounds.Min.Y; y < bounds.Max.Y && seen < n; y++ {
		for x := bounds.Min.X; x < bounds.Max.X && seen < n; x++ {
			c := toColor(src.At(x, y))
			if pal.lookup(c) < 0 {
				pal = append(pal, c)
			}
			seen++
		}
	}
	if seen != n || len(pal) != n {
		return nil, false
	}
	return pal, true
}

// scanDistinct collects the distinct colors in a cols-by-rows block at
// (x0,y0) in first-seen order. It reports ok=false if the block contains
// fewer distinct colors than cols*rows, since that means the block wasn't
// actually a full fixed palette swatch.
func scanDistinct(src image.Image, x0, y0, cols, rows int) (Palette, bool) {
	bounds := src.Bounds()
	if x0+cols > bounds.Max.X || y0+rows > bounds.Max.Y {
		return nil, false
	}
	var pal Palette
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := toColor(src.At(x0+x, y0+y))
			if pal.lookup(c) < 0 {
				pal = append(pal, c)
			}
		}
	}
	if len(pal) != cols*rows {
		return nil, false
	}
	return pal, true
}

func scanFull(src image.Image, bounds image.Rectangle) (Palette, error) {
	var pal Palette
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := toColor(src.At(x, y))
			if pal.lookup(c) < 0 {
				pal = append(pal, c)
				if len(pal) > MaxColors {
					return nil, Problem{Kind: KindTooManyColors, Count: len(pal)}
				}
			}
		}
	}
	return pal, nil
}
