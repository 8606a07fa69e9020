// Package xmlmap decodes the subset of the Tiled TMX map format needed to
// extract tile layers and their properties, grounded on the struct shapes
// of a retrieved reference TMX parser but with CSV tile data actually
// implemented.
package xmlmap

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"encoding/base64"
	"encoding/csv"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Map is a decoded TMX document: its tilesets (for GID-to-local-index
// remapping) and its layers in document order.
type Map struct {
	Width, Height int
	Tilesets      []Tileset
	Layers        []*Layer
}

// Tileset records a TMX tileset's firstgid, the only field this package
// needs: GIDs at or above firstgid (and below the next tileset's firstgid)
// belong to this tileset.
type Tileset struct {
	FirstGID uint32
	Name     string
}

// Layer is a decoded TMX tile layer, satisfying the femap.TileLayer
// interface.
type Layer struct {
	XMLName    xml.Name   `xml:"layer"`
	NameAttr   string     `xml:"name,attr"`
	WidthAttr  int        `xml:"width,attr"`
	HeightAttr int        `xml:"height,attr"`
	Properties Properties `xml:"properties"`
	Data       rawData    `xml:"data"`

	gids []uint32 // filled by decode() while Decode runs
}

// Properties is a TMX <properties> block: an ordered list of key/value
// pairs attached to a layer.
type Properties struct {
	Items []Property `xml:"property"`
}

// Property is one TMX <property name="..." value="..."/> entry.
type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Get returns the value of the named property and whether it was present.
func (p Properties) Get(name string) (string, bool) {
	for _, item := range p.Items {
		if item.Name == name {
			return item.Value, true
		}
	}
	return "", false
}

type rawData struct {
	Encoding    string `xml:"encoding,attr"`
	Compression string `xml:"compression,attr"`
	CharData    string `xml:",chardata"`
}

type rawMap struct {
	XMLName  xml.Name  `xml:"map"`
	Width    int       `xml:"width,attr"`
	Height   int       `xml:"height,attr"`
	Tilesets []rawTileset `xml:"tileset"`
	Layers   []*Layer  `xml:"layer"`
}

type rawTileset struct {
	FirstGID uint32 `xml:"firstgid,attr"`
	Name     string `xml:"name,attr"`
	Source   string `xml:"source,attr"`
}

// Decode parses a TMX document from r, decoding every layer's tile data
// eagerly so that later TileAt calls never fail on malformed encoding.
func Decode(r io.Reader) (*Map, error) {
	var raw rawMap
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("xmlmap: parsing TMX document: %w", err)
	}

	m := &Map{Width: raw.Width, Height: raw.Height}
	for _, ts := range raw.Tilesets {
		m.Tilesets = append(m.Tilesets, Tileset{FirstGID: ts.FirstGID, Name: ts.Name})
	}

	for _, layer := range raw.Layers {
		if err := layer.decode(); err != nil {
			return nil, fmt.Errorf("xmlmap: layer %q: %w", layer.NameAttr, err)
		}
		m.Layers = append(m.Layers, layer)
	}

	return m, nil
}

// decode populates l.gids from l.Data, dispatching on the encoding and
// compression attributes. TMX supports three encodings (xml, csv, base64)
// and, for base64, two optional compressions (gzip, zlib); this package
// implements csv (the path a retrieved reference parser left
// unimplemented) and base64 with either compression. The xml encoding
// (inline <tile> elements) is rejected with an error.
func (l *Layer) decode() error {
	switch l.Data.Encoding {
	case "csv":
		return l.decodeCSV()
	case "base64":
		return l.decodeBase64()
	case "":
		return fmt.Errorf("inline <tile> xml encoding is not supported")
	default:
		return fmt.Errorf("unknown layer data encoding %q", l.Data.Encoding)
	}
}

func (l *Layer) decodeCSV() error {
	reader := csv.NewReader(strings.NewReader(strings.TrimSpace(l.Data.CharData)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("decoding csv tile data: %w", err)
	}

	gids := make([]uint32, 0, l.WidthAttr*l.HeightAttr)
	for _, record := range records {
		for _, field := range record {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseUint(field, 10, 32)
			if err != nil {
				return fmt.Errorf("decoding csv tile data: %w", err)
			}
			gids = append(gids, uint32(v))
		}
	}
	l.gids = gids
	return nil
}

func (l *Layer) decodeBase64() error {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(l.Data.CharData))
	if err != nil {
		return fmt.Errorf("decoding base64 tile data: %w", err)
	}

	var plain []byte
	switch l.Data.Compression {
	case "gzip":
		zr, err := gzip.NewReader(bytes.NewReader(decoded))
		if err != nil {
			return fmt.Errorf("decoding gzip tile data: %w", err)
		}
		defer zr.Close()
		plain, err = io.ReadAll(zr)
		if err != nil {
			return fmt.Errorf("decoding gzip tile data: %w", err)
		}
	case "zlib":
		zr, err := zlib.NewReader(bytes.NewReader(decoded))
		if err != nil {
			return fmt.Errorf("decoding zlib tile data: %w", err)
		}
		defer zr.Close()
		plain, err = io.ReadAll(zr)
		if err != nil {
			return fmt.Errorf("decoding zlib tile data: %w", err)
		}
	case "":
		plain = decoded
	default:
		return fmt.Errorf("unknown layer data compression %q", l.Data.Compression)
	}

	if len(plain)%4 != 0 {
		return fmt.Errorf("decoded tile data length %d is not a multiple of 4", len(plain))
	}
	gids := make([]uint32, len(plain)/4)
	for i := range gids {
		o := i * 4
		gids[i] = uint32(plain[o]) | uint32(plain[o+1])<<8 | uint32(plain[o+2])<<16 | uint32(plain[o+3])<<24
	}
	l.gids = gids
	return nil
}

// Name returns the layer's TMX name attribute.
func (l *Layer) Name() string {
	return l.NameAttr
}

// Width returns the layer's TMX width attribute, in tiles.
func (l *Layer) Width() int {
	return l.WidthAttr
}

// Height returns the layer's TMX height attribute, in tiles.
func (l *Layer) Height() int {
	return l.HeightAttr
}

// Property returns the value of the named TMX property and whether it was
// present, satisfying femap's layer-classification interface.
func (l *Layer) Property(name string) (string, bool) {
	return l.Properties.Get(name)
}

// PropertyNames returns the layer's property names in declaration order.
func (l *Layer) PropertyNames() []string {
	names := make([]string, len(l.Properties.Items))
	for i, item := range l.Properties.Items {
		names[i] = item.Name
	}
	return names
}

// TileAt returns the raw GID (with any flip flags still set) at (x, y), or
// ok=false if out of bounds.
func (l *Layer) TileAt(x, y int) (gid uint32, ok bool) {
	if x < 0 || y < 0 || x >= l.WidthAttr || y >= l.HeightAttr {
		return 0, false
	}
	idx := y*l.WidthAttr + x
	if idx >= len(l.gids) {
		return 0, false
	}
	return l.gids[idx], true
}

// GID flip flags, carried by the top 3 bits of every GID TMX emits.
const (
	FlipHorizontal uint32 = 1 << 31
	FlipVertical   uint32 = 1 << 30
	FlipDiagonal   uint32 = 1 << 29
	FlipMask       uint32 = FlipHorizontal | FlipVertical | FlipDiagonal
)
