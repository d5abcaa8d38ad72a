package bitset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// FromRoaring densifies rb into a FixedBitSet of numBits bits.
// Every value of rb must be < numBits.
func FromRoaring(rb *roaring.Bitmap, numBits int) (*FixedBitSet, error) {
	if numBits < 0 {
		return nil, fmt.Errorf("%w: negative numBits %d", ErrInvalidArgument, numBits)
	}
	b := New(numBits)
	if rb == nil || rb.IsEmpty() {
		return b, nil
	}
	if maxVal := int64(rb.Maximum()); maxVal >= int64(numBits) {
		return nil, fmt.Errorf("%w: bitmap value %d does not fit in %d bits", ErrInvalidArgument, maxVal, numBits)
	}

	buf := make([]uint32, 256)
	it := rb.ManyIterator()
	for n := it.NextMany(buf); n > 0; n = it.NextMany(buf) {
		for _, v := range buf[:n] {
			b.words[v>>6] |= uint64(1) << (v & 63)
		}
	}
	return b, nil
}

// ToRoaring returns the set bits as a new roaring bitmap.
func (b *FixedBitSet) ToRoaring() *roaring.Bitmap {
	vals := make([]uint32, 0, b.Cardinality())
	for index := range b.All() {
		vals = append(vals, uint32(index))
	}
	rb := roaring.New()
	rb.AddMany(vals)
	return rb
}

// Sparse is a read-only DocSet backed by a roaring bitmap.
// It is not a dense set; use Dense to obtain a FixedBitSet.
type Sparse struct {
	rb      *roaring.Bitmap
	numBits int
}

// Compile time check to ensure Sparse satisfies DocSet.
var _ DocSet = (*Sparse)(nil)

// NewSparse wraps rb as a DocSet over [0, numBits).
func NewSparse(rb *roaring.Bitmap, numBits int) *Sparse {
	if rb == nil {
		rb = roaring.New()
	}
	return &Sparse{rb: rb, numBits: numBits}
}

// Get reports whether index is in the set.
func (s *Sparse) Get(index int) bool {
	if index < 0 || index >= s.numBits {
		return false
	}
	return s.rb.Contains(uint32(index))
}

// Len returns the number of addressable ordinals.
func (s *Sparse) Len() int {
	return s.numBits
}

// Cardinality returns the number of ordinals in the set.
func (s *Sparse) Cardinality() int {
	return int(s.rb.GetCardinality())
}

// Bitmap returns the underlying roaring bitmap.
func (s *Sparse) Bitmap() *roaring.Bitmap {
	return s.rb
}

// Dense converts the set into a FixedBitSet.
func (s *Sparse) Dense() (*FixedBitSet, error) {
	return FromRoaring(s.rb, s.numBits)
}
