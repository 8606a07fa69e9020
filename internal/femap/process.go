package femap

import "strings"

// Process classifies layers into a primary tile layer and zero or more
// map-change layers, then builds a Map from them.
//
// Classification walks layers in document order using a three-state
// machine: stateNotFound -> stateCandidate on the first layer whose name
// is "main" (case-insensitive) or which carries any property whose value
// is "main" (case-insensitive), then -> stateFound once a second such
// layer is seen (which raises KindMultiplePrimaryLayers instead of
// replacing the candidate). If no layer ever matches, the first layer in
// the document becomes primary by default. Every other layer, in document
// order, becomes a map-change entry (skipping layers with no non-empty
// cells).
func Process(layers []TileLayer) (*Map, []Problem) {
	if len(layers) == 0 {
		return nil, []Problem{{Kind: KindNoPrimaryLayer}}
	}

	var primary TileLayer
	st := stateNotFound
	var problems []Problem

	for _, layer := range layers {
		if isPrimaryCandidate(layer) {
			switch st {
			case stateNotFound:
				primary = layer
				st = stateCandidate
			case stateCandidate, stateFound:
				problems = append(problems, Problem{Kind: KindMultiplePrimaryLayers})
				st = stateFound
			}
		}
	}

	if primary == nil {
		primary = layers[0]
	}

	tiles, encErrs := encodeLayer(primary, 0, 0, primary.Width(), primary.Height())
	problems = append(problems, encErrs...)

	m := &Map{
		Width:      primary.Width(),
		Height:     primary.Height(),
		Tiles:      tiles,
		Properties: layerProperties(primary),
	}

	for _, layer := range layers {
		if layer == primary {
			continue
		}
		mc, mcErrs := buildMapChange(layer)
		problems = append(problems, mcErrs...)
		if mc != nil {
			mc.Name = layer.Name()
			m.MapChanges = append(m.MapChanges, mc)
		}
	}

	return m, problems
}

// isPrimaryCandidate reports whether l looks like the primary tile layer:
// its name is "main" (case-insensitive), or any of its properties has the
// value "main" (case-insensitive).
func isPrimaryCandidate(l TileLayer) bool {
	if strings.EqualFold(l.Name(), "main") {
		return true
	}
	for _, name := range l.PropertyNames() {
		if v, ok := l.Property(name); ok && strings.EqualFold(v, "main") {
			return true
		}
	}
	return false
}

// encodeLayer reads the w*h window of l starting at (x0,y0) and encodes
// every tile via EncodeGID, collecting any overflow diagnostics rather
// than stopping at the first.
func encodeLayer(l TileLayer, x0, y0, w, h int) ([]uint16, []Problem) {
	tiles := make([]uint16, w*h)
	var problems []Problem
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gid, _ := l.TileAt(x0+x, y0+y)
			encoded, problem := EncodeGID(gid, x0+x, y0+y)
			if problem != nil {
				problems = append(problems, *problem)
				continue
			}
			tiles[y*w+x] = encoded
		}
	}
	return tiles, problems
}

func layerProperties(l TileLayer) []KeyValue {
	var out []KeyValue
	for _, name := range l.PropertyNames() {
		if v, ok := l.Property(name); ok {
			out = append(out, KeyValue{Key: name, Value: v})
		}
	}
	return out
}
