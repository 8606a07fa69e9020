package xmlmap

import (
	"strings"
	"testing"
)

const csvDoc = `<?xml version="1.0"?>
<map width="2" height="2">
  <tileset firstgid="1" name="tiles"/>
  <layer name="main" width="2" height="2">
    <properties>
      <property name="kind" value="primary"/>
    </properties>
    <data encoding="csv">
1,2,
3,0
    </data>
  </layer>
</map>`

func TestDecode_CSV(t *testing.T) {
	m, err := Decode(strings.NewReader(csvDoc))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(m.Layers) != 1 {
		t.Fatalf("got %d layers, want 1", len(m.Layers))
	}
	layer := m.Layers[0]
	if layer.Name() != "main" {
		t.Fatalf("got layer name %q, want main", layer.Name())
	}
	if v, ok := layer.Properties.Get("kind"); !ok || v != "primary" {
		t.Fatalf("got property kind=%q,%v, want primary,true", v, ok)
	}

	cases := []struct {
		x, y int
		want uint32
	}{
		{0, 0, 1}, {1, 0, 2}, {0, 1, 3}, {1, 1, 0},
	}
	for _, c := range cases {
		gid, ok := layer.TileAt(c.x, c.y)
		if !ok || gid != c.want {
			t.Fatalf("TileAt(%d,%d) = %d,%v, want %d,true", c.x, c.y, gid, ok, c.want)
		}
	}

	if _, ok := layer.TileAt(5, 5); ok {
		t.Fatal("expected out-of-bounds TileAt to return ok=false")
	}
}

func TestDecode_UnknownEncoding(t *testing.T) {
	doc := `<map width="1" height="1"><layer name="x" width="1" height="1"><data encoding="weird"></data></layer></map>`
	if _, err := Decode(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for unknown encoding")
	}
}
