package bitset

import "fmt"

// rangeMasks returns the mask of bits >= start within start's word and the
// mask of bits < end within (end-1)'s word. Shift amounts are masked to
// [0,63]; an end on a word boundary yields an all-ones end mask.
func rangeMasks(start, end int) (startMask, endMask uint64) {
	startMask = ^uint64(0) << (uint(start) & 63)
	endMask = ^uint64(0) >> ((64 - uint(end)&63) & 63)
	return startMask, endMask
}

func (b *FixedBitSet) checkRange(start, end int) {
	if start < 0 || start > b.numBits || end < 0 || end > b.numBits {
		panic(fmt.Errorf("%w: range [%d,%d), numBits=%d", ErrInvalidArgument, start, end, b.numBits))
	}
}

// FlipRange toggles every bit in [start, end).
func (b *FixedBitSet) FlipRange(start, end int) {
	b.checkRange(start, end)
	if end <= start {
		return
	}

	startWord := start >> 6
	endWord := (end - 1) >> 6
	startMask, endMask := rangeMasks(start, end)

	if startWord == endWord {
		b.words[startWord] ^= startMask & endMask
		return
	}

	b.words[startWord] ^= startMask
	for i := startWord + 1; i < endWord; i++ {
		b.words[i] = ^b.words[i]
	}
	b.words[endWord] ^= endMask
}

// SetRange sets every bit in [start, end).
func (b *FixedBitSet) SetRange(start, end int) {
	b.checkRange(start, end)
	if end <= start {
		return
	}

	startWord := start >> 6
	endWord := (end - 1) >> 6
	startMask, endMask := rangeMasks(start, end)

	if startWord == endWord {
		b.words[startWord] |= startMask & endMask
		return
	}

	b.words[startWord] |= startMask
	for i := startWord + 1; i < endWord; i++ {
		b.words[i] = ^uint64(0)
	}
	b.words[endWord] |= endMask
}

// ClearRange clears every bit in [start, end).
func (b *FixedBitSet) ClearRange(start, end int) {
	b.checkRange(start, end)
	if end <= start {
		return
	}

	startWord := start >> 6
	endWord := (end - 1) >> 6
	startMask, endMask := rangeMasks(start, end)

	if startWord == endWord {
		b.words[startWord] &^= startMask & endMask
		return
	}

	b.words[startWord] &^= startMask
	clear(b.words[startWord+1 : endWord])
	b.words[endWord] &^= endMask
}
