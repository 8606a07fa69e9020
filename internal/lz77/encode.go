package lz77

// Compress encodes data into a GBA-LZ77 frame using a greedy, left-to-right
// match search: at each cursor position, consult the match finder for the
// best available back-reference under strategy, and take it whenever it
// meets the format's minimum match length, otherwise emit a literal.
func Compress(data []byte, strategy Strategy) []byte {
	out := make([]byte, 4, len(data)+4)
	out[0] = headerByte
	out[1] = byte(len(data))
	out[2] = byte(len(data) >> 8)
	out[3] = byte(len(data) >> 16)

	if len(data) == 0 {
		return out
	}

	mf := newMatchFinder(data)

	var flagByte byte
	var bitsUsed uint
	flagPos := len(out)
	out = append(out, 0)

	flush := func() {
		out[flagPos] = flagByte
		flagByte = 0
		bitsUsed = 0
	}

	setBit := func() {
		flagByte |= 1 << (7 - bitsUsed)
	}

	pos := 0
	for pos < len(data) {
		if bitsUsed == 8 {
			flush()
			flagPos = len(out)
			out = append(out, 0)
		}

		length, distance := mf.findMatch(pos, strategy)
		if length >= MinMatchLength {
			setBit()
			backoff := distance - 1
			lenField := byte(length - 3)
			out = append(out, lenField<<4|byte(backoff>>8), byte(backoff))
			for i := 0; i < length; i++ {
				mf.insert(pos + i)
			}
			pos += length
		} else {
			out = append(out, data[pos])
			mf.insert(pos)
			pos++
		}
		bitsUsed++
	}
	flush()

	return out
}
