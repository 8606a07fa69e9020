package tilemage

import "fmt"

// Kind identifies the categories of problem Validate and Convert can report.
type Kind int

const (
	// KindDimensionMismatch means the pixel buffer's length doesn't match
	// width*height. This can only happen if a caller builds an Image by
	// hand incorrectly; it is a programmer bug, not a bad input file.
	KindDimensionMismatch Kind = iota
	// KindBadDimensions means neither width nor height is a multiple of 8
	// (the tile grid's cell size).
	KindBadDimensions
	// KindBadColorIndex means a pixel's palette index is out of range for
	// the palette length. Like KindDimensionMismatch, this can only arise
	// from a hand-built Image, since every resolution path only ever
	// stores indices it just assigned.
	KindBadColorIndex
	// KindTooManyColors means a source image uses more than MaxColors
	// distinct colors and no fixed-palette convention applied.
	KindTooManyColors
	// KindUnknownColor means a source image's color isn't present in an
	// explicitly supplied palette.
	KindUnknownColor
)

func (k Kind) String() string {
	switch k {
	case KindDimensionMismatch:
		return "dimension mismatch"
	case KindBadDimensions:
		return "bad dimensions"
	case KindBadColorIndex:
		return "bad color index"
	case KindTooManyColors:
		return "too many colors"
	case KindUnknownColor:
		return "unknown color"
	default:
		return "unknown"
	}
}

// Problem is one validation finding.
type Problem struct {
	Kind Kind

	// X, Y locate the offending pixel for KindBadColorIndex/KindUnknownColor.
	X, Y int

	// Index is the out-of-range palette index for KindBadColorIndex.
	Index int

	// Count is the distinct-color count for KindTooManyColors.
	Count int
}

func (p Problem) Error() string {
	switch p.Kind {
	case KindBadColorIndex:
		return fmt.Sprintf("tilemage: bad color index %d at (%d,%d)", p.Index, p.X, p.Y)
	case KindUnknownColor:
		return fmt.Sprintf("tilemage: color at (%d,%d) not present in palette", p.X, p.Y)
	case KindTooManyColors:
		return fmt.Sprintf("tilemage: %d distinct colors exceeds the %d-color limit", p.Count, MaxColors)
	default:
		return "tilemage: " + p.Kind.String()
	}
}

// BugError wraps a Problem that indicates an internal invariant violation
// rather than a bad input file: KindDimensionMismatch and
// KindBadColorIndex can only arise from an Image built incorrectly by this
// package's own code, never from a well-formed source image.
type BugError struct {
	Problem Problem
}

func (e BugError) Error() string {
	return "tilemage: internal bug: " + e.Problem.Error()
}

func (e BugError) Unwrap() error {
	return e.Problem
}
