package lz77

// matchFinder is a hash-chain index over a single input buffer: a
// bucket-head table keyed by a rolling hash plus a per-position "previous
// occurrence at this hash" link array. Rather than hashing a pair of pixels
// the way an image codec's chain might, this hashes the 3-byte prefix that
// is this format's minimum match length.
type matchFinder struct {
	data []byte

	// head[h] is the most recently inserted position whose 3-byte prefix
	// hashes to h, or -1 if none.
	head [1 << 16]int32

	// prev[i] is the previous position sharing data[i:i+3]'s hash with i,
	// or -1 if i was the first.
	prev []int32
}

func newMatchFinder(data []byte) *matchFinder {
	mf := &matchFinder{
		data: data,
		prev: make([]int32, len(data)),
	}
	for i := range mf.head {
		mf.head[i] = -1
	}
	return mf
}

func hash3(a, b, c byte) uint16 {
	return uint16(uint32(a)<<8|uint32(b)) ^ uint16(uint32(c)<<5)
}

// insert adds position pos to the chain for its own 3-byte prefix. Callers
// insert every position as the cursor advances past it, whether it was
// emitted as a literal or consumed by a match, so later positions can find
// it as a candidate.
func (mf *matchFinder) insert(pos int) {
	if pos+3 > len(mf.data) {
		mf.prev[pos] = -1
		return
	}
	h := hash3(mf.data[pos], mf.data[pos+1], mf.data[pos+2])
	mf.prev[pos] = mf.head[h]
	mf.head[h] = int32(pos)
}

// matchAt returns the match length between the window starting at cand and
// the window starting at pos, capped at MaxMatchLength and at the data's
// end. Overlapping matches (cand within MaxWindow of pos, extending past
// pos) are permitted, matching the frame format's overlapping-copy
// semantics.
func matchAt(data []byte, pos, cand int) int {
	max := MaxMatchLength
	if pos+max > len(data) {
		max = len(data) - pos
	}
	n := 0
	for n < max && data[cand+n] == data[pos+n] {
		n++
	}
	return n
}

// findMatch looks for the best back-reference starting at pos, returning
// (length, distance) with length 0 if nothing usable was found. Candidates
// are restricted to the 4096-byte window the frame format can address.
func (mf *matchFinder) findMatch(pos int, strategy Strategy) (length, distance int) {
	if pos+MinMatchLength > len(mf.data) {
		return 0, 0
	}
	h := hash3(mf.data[pos], mf.data[pos+1], mf.data[pos+2])
	cand := mf.head[h]

	bestLen, bestDist := 0, 0
	for cand >= 0 {
		c := int(cand)
		if pos-c > MaxWindow {
			break
		}
		n := matchAt(mf.data, pos, c)
		if n >= MinMatchLength && n > bestLen {
			bestLen, bestDist = n, pos-c
		}
		if strategy == StrategyMostRecentOnly {
			break
		}
		cand = mf.prev[c]
	}
	return bestLen, bestDist
}
