package bitset

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// NoMoreDocs is returned by NextSetBit when no set bit exists at or after the index.
const NoMoreDocs = math.MaxInt32

// ErrInvalidArgument is returned (or panicked with, for bounds violations)
// when an index or operand does not satisfy an operation's precondition.
var ErrInvalidArgument = errors.New("invalid argument")

// DocSet is a read-only set of document ordinals in [0, Len()).
type DocSet interface {
	// Get reports whether index is in the set.
	Get(index int) bool
	// Len returns the number of addressable ordinals.
	Len() int
	// Cardinality returns the number of ordinals in the set.
	Cardinality() int
}

// Compile time check to ensure FixedBitSet satisfies DocSet.
var _ DocSet = (*FixedBitSet)(nil)

// FixedBitSet is a fixed-length bit set backed by 64-bit words.
type FixedBitSet struct {
	words    []uint64
	numBits  int
	numWords int
}

// Bits2Words returns the number of words needed to hold numBits bits.
func Bits2Words(numBits int) int {
	return int((uint(numBits) + 63) >> 6)
}

// New creates a zero-filled FixedBitSet of numBits bits.
func New(numBits int) *FixedBitSet {
	if numBits < 0 {
		panic(fmt.Errorf("%w: negative numBits %d", ErrInvalidArgument, numBits))
	}
	numWords := Bits2Words(numBits)
	return &FixedBitSet{
		words:    make([]uint64, numWords),
		numBits:  numBits,
		numWords: numWords,
	}
}

// NewFromWords creates a FixedBitSet of numBits bits on top of words.
// The slice is used as storage, not copied.
func NewFromWords(words []uint64, numBits int) (*FixedBitSet, error) {
	if numBits < 0 {
		return nil, fmt.Errorf("%w: negative numBits %d", ErrInvalidArgument, numBits)
	}
	numWords := Bits2Words(numBits)
	if numWords > len(words) {
		return nil, fmt.Errorf("%w: %d words are too small to hold %d bits", ErrInvalidArgument, len(words), numBits)
	}
	b := &FixedBitSet{words: words, numBits: numBits, numWords: numWords}
	b.clearGhostBits()
	return b, nil
}

// EnsureCapacity returns a set able to hold numBits bits.
//
// If numBits < b.Len(), b itself is returned. Otherwise the storage is grown
// to at least Bits2Words(numBits)+1 words, existing bits are kept, and the
// returned set's Len() is the full bit capacity of the storage, which may be
// larger than numBits.
func EnsureCapacity(b *FixedBitSet, numBits int) *FixedBitSet {
	if numBits < b.numBits {
		return b
	}
	numWords := Bits2Words(numBits)
	words := b.words
	if numWords >= len(words) {
		size := numWords + 1
		size += size >> 3 // amortize repeated growth
		grown := make([]uint64, size)
		copy(grown, words)
		words = grown
	}
	return &FixedBitSet{words: words, numBits: len(words) << 6, numWords: len(words)}
}

// Len returns the number of bits in the set.
func (b *FixedBitSet) Len() int {
	return b.numBits
}

// Words returns the backing words. Callers must not break the ghost-bit invariant.
func (b *FixedBitSet) Words() []uint64 {
	return b.words
}

// SizeInBytes returns the approximate heap size of the set.
func (b *FixedBitSet) SizeInBytes() uint64 {
	return uint64(cap(b.words))*8 + 40
}

// Cardinality returns the number of set bits.
func (b *FixedBitSet) Cardinality() int {
	return popArray(b.words[:b.numWords])
}

// Get reports whether the bit at index is set.
func (b *FixedBitSet) Get(index int) bool {
	b.checkIndex(index)
	return b.words[index>>6]&(uint64(1)<<(uint(index)&63)) != 0
}

// Set sets the bit at index.
func (b *FixedBitSet) Set(index int) {
	b.checkIndex(index)
	b.words[index>>6] |= uint64(1) << (uint(index) & 63)
}

// GetAndSet sets the bit at index and returns its previous value.
func (b *FixedBitSet) GetAndSet(index int) bool {
	b.checkIndex(index)
	wordNum := index >> 6
	mask := uint64(1) << (uint(index) & 63)
	prev := b.words[wordNum]&mask != 0
	b.words[wordNum] |= mask
	return prev
}

// Clear clears the bit at index.
func (b *FixedBitSet) Clear(index int) {
	b.checkIndex(index)
	b.words[index>>6] &^= uint64(1) << (uint(index) & 63)
}

// GetAndClear clears the bit at index and returns its previous value.
func (b *FixedBitSet) GetAndClear(index int) bool {
	b.checkIndex(index)
	wordNum := index >> 6
	mask := uint64(1) << (uint(index) & 63)
	prev := b.words[wordNum]&mask != 0
	b.words[wordNum] &^= mask
	return prev
}

// Flip toggles the bit at index.
func (b *FixedBitSet) Flip(index int) {
	b.checkIndex(index)
	b.words[index>>6] ^= uint64(1) << (uint(index) & 63)
}

// NextSetBit returns the smallest set index >= index, or NoMoreDocs.
func (b *FixedBitSet) NextSetBit(index int) int {
	b.checkIndex(index)
	i := index >> 6
	word := b.words[i] >> (uint(index) & 63)
	if word != 0 {
		return index + bits.TrailingZeros64(word)
	}
	for i++; i < b.numWords; i++ {
		if w := b.words[i]; w != 0 {
			return i<<6 + bits.TrailingZeros64(w)
		}
	}
	return NoMoreDocs
}

// PrevSetBit returns the largest set index <= index, or -1.
func (b *FixedBitSet) PrevSetBit(index int) int {
	b.checkIndex(index)
	i := index >> 6
	sub := uint(index) & 63
	word := b.words[i] << (63 - sub)
	if word != 0 {
		return i<<6 + int(sub) - bits.LeadingZeros64(word)
	}
	for i--; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return i<<6 + 63 - bits.LeadingZeros64(w)
		}
	}
	return -1
}

// All returns an iterator over the set bits in ascending order.
func (b *FixedBitSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, w := range b.words[:b.numWords] {
			for w != 0 {
				if !yield(i<<6 + bits.TrailingZeros64(w)) {
					return
				}
				w &= w - 1
			}
		}
	}
}

// OrSeq sets every index produced by seq.
func (b *FixedBitSet) OrSeq(seq iter.Seq[int]) {
	for index := range seq {
		b.Set(index)
	}
}

// Clone returns an independent copy of the set.
func (b *FixedBitSet) Clone() *FixedBitSet {
	words := make([]uint64, len(b.words))
	copy(words, b.words)
	return &FixedBitSet{words: words, numBits: b.numBits, numWords: b.numWords}
}

// Equal reports whether both sets have the same length and the same bits.
func (b *FixedBitSet) Equal(other *FixedBitSet) bool {
	if b == other {
		return true
	}
	if other == nil || b.numBits != other.numBits {
		return false
	}
	for i := range b.numWords {
		if b.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// HashCode folds all words with rotate-XOR. Equal sets hash equally.
func (b *FixedBitSet) HashCode() uint64 {
	var h uint64
	for i := b.numWords - 1; i >= 0; i-- {
		h ^= b.words[i]
		h = bits.RotateLeft64(h, 1)
	}
	return ((h >> 32) ^ h) + 0x98761234
}

// String renders the set bits as {a, b, c}.
func (b *FixedBitSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for index := range b.All() {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(index))
		first = false
	}
	sb.WriteByte('}')
	return sb.String()
}

func (b *FixedBitSet) checkIndex(index int) {
	if index < 0 || index >= b.numBits {
		panic(fmt.Errorf("%w: index=%d, numBits=%d", ErrInvalidArgument, index, b.numBits))
	}
}

// clearGhostBits zeroes the bits past numBits in the last word.
func (b *FixedBitSet) clearGhostBits() {
	if b.numWords == 0 {
		return
	}
	if rem := uint(b.numBits) & 63; rem != 0 {
		b.words[b.numWords-1] &= ^uint64(0) >> (64 - rem)
	}
}

func popArray(words []uint64) int {
	count := 0
	for _, w := range words {
		count += bits.OnesCount64(w)
	}
	return count
}
