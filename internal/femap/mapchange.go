package femap

// buildMapChange computes the bounding box of l's non-empty cells (gid !=
// 0) and encodes that cropped window into a MapChange. If the layer has no
// non-empty cells at all, it returns (nil, nil): an empty map-change layer
// is skipped silently rather than treated as an error.
func buildMapChange(l TileLayer) (*MapChange, []Problem) {
	minX, minY := l.Width(), l.Height()
	maxX, maxY := -1, -1

	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			gid, ok := l.TileAt(x, y)
			if !ok || gid == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if y < minY {
				minY = y
			}
			if x > maxX {
				maxX = x
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return nil, nil
	}

	w := maxX - minX + 1
	h := maxY - minY + 1
	tiles, problems := encodeLayer(l, minX, minY, w, h)

	return &MapChange{X: minX, Y: minY, Width: w, Height: h, Tiles: tiles}, problems
}
