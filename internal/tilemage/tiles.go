package tilemage

// TileSize is the edge length of a GBA tile in pixels.
const TileSize = 8

// EncodeTiles packs img's pixel indices into the GBA's 4bpp tile format:
// tiles are traversed left-to-right, top-to-bottom across the image, and
// within each tile pixels are traversed row-major; two consecutive pixel
// indices are packed per byte, the first pixel in the low nibble. img must
// already have passed Validate.
//
// A boundary tile along an edge whose dimension isn't a multiple of
// TileSize is clipped to the pixels that actually exist rather than
// padded, so the output is always exactly (Width*Height)/2 bytes
// regardless of which dimension (if either) is a full multiple of 8.
func EncodeTiles(img *Image) ([]byte, error) {
	if problems := img.Validate(); len(problems) > 0 {
		if err := bugOrNil(problems); err != nil {
			return nil, err
		}
		return nil, problems[0]
	}

	tilesX := (img.Width + TileSize - 1) / TileSize
	tilesY := (img.Height + TileSize - 1) / TileSize

	pixels := make([]uint8, 0, img.Width*img.Height)
	for ty := 0; ty < tilesY; ty++ {
		tileH := TileSize
		if remain := img.Height - ty*TileSize; remain < tileH {
			tileH = remain
		}
		for tx := 0; tx < tilesX; tx++ {
			tileW := TileSize
			if remain := img.Width - tx*TileSize; remain < tileW {
				tileW = remain
			}
			for py := 0; py < tileH; py++ {
				row := (ty*TileSize+py)*img.Width + tx*TileSize
				for px := 0; px < tileW; px++ {
					pixels = append(pixels, img.Indices[row+px])
				}
			}
		}
	}

	out := make([]byte, 0, (len(pixels)+1)/2)
	for i := 0; i < len(pixels); i += 2 {
		lo := pixels[i]
		var hi uint8
		if i+1 < len(pixels) {
			hi = pixels[i+1]
		}
		out = append(out, lo|hi<<4)
	}

	return out, nil
}
