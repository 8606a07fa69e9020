// Package lz77 implements the GBA BIOS LZ77 variant (SWI 0x11): a 4-byte
// header followed by flag-framed literals and back-references over a
// 4096-byte sliding window.
//
// The format is not general-purpose LZ77 or DEFLATE-compatible; it is
// byte-exact to what the GBA BIOS decompresses in hardware, so every
// encoding decision here (minimum match length 3, offset-minus-1 encoding,
// nibble-packed length/offset fields) must reproduce the BIOS convention
// precisely rather than any "improved" scheme.
package lz77

// Frame format constants.
const (
	headerByte = 0x10

	// MinMatchLength is the shortest back-reference the frame format can
	// express: a 4-bit length field stores length-3.
	MinMatchLength = 3
	// MaxMatchLength is the longest back-reference the frame format can
	// express: a 4-bit length field maxes out at 0xF, plus the +3 bias.
	MaxMatchLength = 18
	// MaxWindow is the largest back-reference distance: a 12-bit
	// offset-minus-1 field maxes out at 0xFFF, plus the +1 bias.
	MaxWindow = 4096
)

// Strategy selects how the compressor's match finder picks among multiple
// candidate back-references at a given position.
type Strategy int

const (
	// StrategyMostRecentOnly tries only the most recently seen position
	// sharing the current 3-byte prefix. Fast, but may miss a longer match
	// further back in the window.
	StrategyMostRecentOnly Strategy = iota
	// StrategyAllCandidates walks every position in the window sharing the
	// current 3-byte prefix and keeps the longest match, breaking ties by
	// the smallest offset. Slower, never produces a larger output than
	// StrategyMostRecentOnly.
	StrategyAllCandidates
)

func (s Strategy) String() string {
	switch s {
	case StrategyMostRecentOnly:
		return "most-recent-only"
	case StrategyAllCandidates:
		return "all-candidates"
	default:
		return "unknown"
	}
}
