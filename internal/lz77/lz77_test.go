package lz77

import (
	"bytes"
	"testing"
)

func TestDecompress_EmptyInput(t *testing.T) {
	out, diags := Decompress(nil)
	if out != nil {
		t.Fatalf("got %v, want nil", out)
	}
	if len(diags) != 1 || diags[0].Kind != KindDataTooShort {
		t.Fatalf("got diags %v, want single DataTooShort", diags)
	}
}

func TestDecompress_LiteralOnly(t *testing.T) {
	// header(10 03 00 00) flag(00...) 'A' 'B' 'C'
	frame := []byte{0x10, 0x03, 0x00, 0x00, 0x00, 'A', 'B', 'C'}
	out, diags := Decompress(frame)
	if len(diags) != 0 {
		t.Fatalf("unexpected diags: %v", diags)
	}
	if !bytes.Equal(out, []byte("ABC")) {
		t.Fatalf("got %q, want %q", out, "ABC")
	}
}

func TestDecompress_OverlappingRunLength(t *testing.T) {
	// one literal 'A', then a backref of length 18 at distance 1: repeats
	// 'A' a further 18 times via overlapping self-copy.
	frame := []byte{
		0x10, 19, 0x00, 0x00,
		0b01000000,
		'A',
		0xF0, 0x00, // length nibble 0xF -> 18, offset-1 = 0 -> distance 1
	}
	out, diags := Decompress(frame)
	if len(diags) != 0 {
		t.Fatalf("unexpected diags: %v", diags)
	}
	want := bytes.Repeat([]byte("A"), 19)
	if !bytes.Equal(out, want) {
		t.Fatalf("got %q (len %d), want %d bytes of 'A'", out, len(out), len(want))
	}
}

func TestDecompress_BadHeader(t *testing.T) {
	out, diags := Decompress([]byte{0x11, 0, 0, 0})
	if out != nil {
		t.Fatalf("got %v, want nil", out)
	}
	if len(diags) != 1 || diags[0].Kind != KindBadHeader {
		t.Fatalf("got diags %v, want single BadHeader", diags)
	}
}

func TestDecompress_BadReferenceRecoversWithZeros(t *testing.T) {
	// single token: backref pointing 5 bytes back with nothing decoded yet.
	frame := []byte{
		0x10, 0x03, 0x00, 0x00,
		0b10000000,
		0x00, 0x04, // length 3, offset-1 = 4 -> distance 5
	}
	out, diags := Decompress(frame)
	if len(diags) != 1 || diags[0].Kind != KindBadReference {
		t.Fatalf("got diags %v, want single BadReference", diags)
	}
	if !bytes.Equal(out, []byte{0, 0, 0}) {
		t.Fatalf("got %v, want three zero bytes", out)
	}
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte("x"),
		[]byte("abcabcabcabcabcabc"),
		bytes.Repeat([]byte{0xAB}, 500),
		[]byte("the quick brown fox jumps over the lazy dog, the quick brown fox again"),
	}
	for _, strategy := range []Strategy{StrategyMostRecentOnly, StrategyAllCandidates} {
		for _, in := range cases {
			frame := Compress(in, strategy)
			out, diags := Decompress(frame)
			if len(diags) != 0 {
				t.Fatalf("[%s] unexpected diags for %q: %v", strategy, in, diags)
			}
			if !bytes.Equal(out, in) {
				t.Fatalf("[%s] round-trip mismatch: got %q, want %q", strategy, out, in)
			}
		}
	}
}

func TestCompress_AllCandidatesNeverLargerThanMostRecentOnly(t *testing.T) {
	in := bytes.Repeat([]byte("abcdefgh"), 40)
	recent := Compress(in, StrategyMostRecentOnly)
	all := Compress(in, StrategyAllCandidates)
	if len(all) > len(recent) {
		t.Fatalf("all-candidates produced larger output: %d > %d", len(all), len(recent))
	}
}

func TestCompress_EmptyInput(t *testing.T) {
	out := Compress(nil, StrategyAllCandidates)
	if !bytes.Equal(out, []byte{0x10, 0, 0, 0}) {
		t.Fatalf("got %v, want bare 4-byte header", out)
	}
}
