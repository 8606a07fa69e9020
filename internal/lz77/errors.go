package lz77

import "fmt"

// Kind identifies the diagnostic categories a decompress pass can raise.
type Kind int

const (
	// KindBadHeader means byte 0 of the input was not 0x10.
	KindBadHeader Kind = iota
	// KindDataTooShort means the input was shorter than the 4-byte header.
	KindDataTooShort
	// KindUnexpectedEOF means the input ran out mid-token.
	KindUnexpectedEOF
	// KindBadReference means a back-reference's offset exceeded the
	// output produced so far.
	KindBadReference
)

func (k Kind) String() string {
	switch k {
	case KindBadHeader:
		return "bad header"
	case KindDataTooShort:
		return "data too short"
	case KindUnexpectedEOF:
		return "unexpected eof"
	case KindBadReference:
		return "bad reference"
	default:
		return "unknown"
	}
}

// Diagnostic is one structured decode-time finding. Decompression is
// tolerant: it keeps going past a recoverable error and reports every one
// it saw instead of aborting on the first.
type Diagnostic struct {
	Kind Kind

	// Expected is set for KindUnexpectedEOF: what token was being read
	// ("flag byte", "literal", or "backref").
	Expected string

	// BlockIndex and BackIndex are set for KindBadReference: the token
	// index being decoded and the out-of-range back-distance it named.
	BlockIndex int
	BackIndex  int
}

func (d Diagnostic) Error() string {
	switch d.Kind {
	case KindUnexpectedEOF:
		return fmt.Sprintf("lz77: unexpected eof reading %s", d.Expected)
	case KindBadReference:
		return fmt.Sprintf("lz77: bad back-reference at token %d: back-index %d exceeds output so far", d.BlockIndex, d.BackIndex)
	default:
		return "lz77: " + d.Kind.String()
	}
}

// ErrorSink is the dependency-inversion hook for diagnostic construction:
// the decompressor never constructs a concrete diagnostic type itself, it
// only calls the four methods below. Callers that want their own error
// taxonomy can implement ErrorSink directly; callers happy with the
// built-in kind just use a *Diagnostics.
type ErrorSink interface {
	BadHeader()
	DataTooShort()
	UnexpectedEOF(expected string)
	BadReference(blockIndex, backIndex int)
}

// Diagnostics is the default ErrorSink: it accumulates every diagnostic in
// the order raised.
type Diagnostics struct {
	items []Diagnostic
}

func (d *Diagnostics) BadHeader() {
	d.items = append(d.items, Diagnostic{Kind: KindBadHeader})
}

func (d *Diagnostics) DataTooShort() {
	d.items = append(d.items, Diagnostic{Kind: KindDataTooShort})
}

func (d *Diagnostics) UnexpectedEOF(expected string) {
	d.items = append(d.items, Diagnostic{Kind: KindUnexpectedEOF, Expected: expected})
}

func (d *Diagnostics) BadReference(blockIndex, backIndex int) {
	d.items = append(d.items, Diagnostic{Kind: KindBadReference, BlockIndex: blockIndex, BackIndex: backIndex})
}

// Items returns every diagnostic accumulated so far, in raise order.
func (d *Diagnostics) Items() []Diagnostic {
	return d.items
}

// Empty reports whether no diagnostics were raised.
func (d *Diagnostics) Empty() bool {
	return len(d.items) == 0
}
