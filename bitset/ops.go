package bitset

import (
	"fmt"
	"math/bits"
)

// IntersectionCount returns |a AND b| without modifying either set.
func IntersectionCount(a, b *FixedBitSet) int {
	n := min(a.numWords, b.numWords)
	count := 0
	for i := range n {
		count += bits.OnesCount64(a.words[i] & b.words[i])
	}
	return count
}

// UnionCount returns |a OR b| without modifying either set.
// The tail of the longer set contributes its own popcount.
func UnionCount(a, b *FixedBitSet) int {
	n := min(a.numWords, b.numWords)
	count := 0
	for i := range n {
		count += bits.OnesCount64(a.words[i] | b.words[i])
	}
	if a.numWords > n {
		count += popArray(a.words[n:a.numWords])
	} else if b.numWords > n {
		count += popArray(b.words[n:b.numWords])
	}
	return count
}

// AndNotCount returns |a AND NOT b| without modifying either set.
func AndNotCount(a, b *FixedBitSet) int {
	n := min(a.numWords, b.numWords)
	count := 0
	for i := range n {
		count += bits.OnesCount64(a.words[i] &^ b.words[i])
	}
	if a.numWords > n {
		count += popArray(a.words[n:a.numWords])
	}
	return count
}

// Intersects reports whether a and b share at least one set bit.
func (b *FixedBitSet) Intersects(other *FixedBitSet) bool {
	n := min(b.numWords, other.numWords)
	for i := range n {
		if b.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// And performs in-place intersection. Words of b beyond other's length are zeroed.
func (b *FixedBitSet) And(other *FixedBitSet) {
	n := min(b.numWords, other.numWords)
	for i := range n {
		b.words[i] &= other.words[i]
	}
	if b.numWords > n {
		clear(b.words[n:b.numWords])
	}
}

// Or performs in-place union. other must not have more words than b.
func (b *FixedBitSet) Or(other *FixedBitSet) error {
	if err := b.checkOperand("or", other); err != nil {
		return err
	}
	for i := range other.numWords {
		b.words[i] |= other.words[i]
	}
	b.clearGhostBits()
	return nil
}

// Xor performs in-place symmetric difference. other must not have more words than b.
func (b *FixedBitSet) Xor(other *FixedBitSet) error {
	if err := b.checkOperand("xor", other); err != nil {
		return err
	}
	for i := range other.numWords {
		b.words[i] ^= other.words[i]
	}
	b.clearGhostBits()
	return nil
}

// AndNot performs in-place difference. other must not have more words than b.
func (b *FixedBitSet) AndNot(other *FixedBitSet) error {
	if err := b.checkOperand("andNot", other); err != nil {
		return err
	}
	for i := range other.numWords {
		b.words[i] &^= other.words[i]
	}
	return nil
}

func (b *FixedBitSet) checkOperand(op string, other *FixedBitSet) error {
	if other.numWords > b.numWords {
		return fmt.Errorf("%w: %s operand has %d words, receiver has %d", ErrInvalidArgument, op, other.numWords, b.numWords)
	}
	return nil
}
