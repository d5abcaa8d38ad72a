package bitset_test

import (
	"testing"

	bbset "github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/blockjoin/bitset"
	"github.com/hupe1980/blockjoin/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLengths = []int{1, 2, 63, 64, 65, 127, 128, 129, 500, 1000, 4097}

// reference mirrors b into an independent bit set implementation.
func reference(b *bitset.FixedBitSet) *bbset.BitSet {
	ref := bbset.New(uint(b.Len()))
	for i := range b.All() {
		ref.Set(uint(i))
	}
	return ref
}

func TestFixedBitSet_SetGetClear(t *testing.T) {
	for _, n := range testLengths {
		b := bitset.New(n)
		for i := range n {
			b.Set(i)
			require.True(t, b.Get(i), "n=%d i=%d", n, i)
			b.Clear(i)
			require.False(t, b.Get(i), "n=%d i=%d", n, i)
		}
		assert.Equal(t, 0, b.Cardinality())
	}
}

func TestFixedBitSet_GetAndSetGetAndClear(t *testing.T) {
	b := bitset.New(100)

	assert.False(t, b.GetAndSet(70))
	assert.True(t, b.GetAndSet(70))
	assert.True(t, b.Get(70))

	assert.True(t, b.GetAndClear(70))
	assert.False(t, b.GetAndClear(70))
	assert.False(t, b.Get(70))
}

func TestFixedBitSet_Flip(t *testing.T) {
	b := bitset.New(10)
	b.Flip(3)
	assert.True(t, b.Get(3))
	b.Flip(3)
	assert.False(t, b.Get(3))
}

func TestFixedBitSet_Cardinality(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for _, n := range testLengths {
		for _, density := range []float64{0.01, 0.3, 0.9} {
			b := rng.BitSet(n, density)
			assert.Equal(t, int(reference(b).Count()), b.Cardinality(), "n=%d density=%v", n, density)
		}
	}
}

func TestFixedBitSet_Counts(t *testing.T) {
	rng := testutil.NewRNG(42)
	pairs := [][2]int{{100, 100}, {64, 200}, {300, 65}, {1000, 1}, {129, 128}}

	for _, p := range pairs {
		a := rng.BitSet(p[0], 0.4)
		b := rng.BitSet(p[1], 0.4)
		refA, refB := reference(a), reference(b)

		want := a.Clone()
		want.And(b)
		assert.Equal(t, want.Cardinality(), bitset.IntersectionCount(a, b), "lengths %v", p)
		assert.Equal(t, int(refA.IntersectionCardinality(refB)), bitset.IntersectionCount(a, b), "lengths %v", p)
		assert.Equal(t, int(refA.UnionCardinality(refB)), bitset.UnionCount(a, b), "lengths %v", p)
		assert.Equal(t, int(refA.DifferenceCardinality(refB)), bitset.AndNotCount(a, b), "lengths %v", p)
		assert.Equal(t, refA.IntersectionCardinality(refB) > 0, a.Intersects(b), "lengths %v", p)
	}
}

func TestFixedBitSet_NextSetBit(t *testing.T) {
	rng := testutil.NewRNG(7)
	for _, n := range testLengths {
		b := rng.BitSet(n, 0.05)
		ref := reference(b)
		for i := range n {
			got := b.NextSetBit(i)
			want, ok := ref.NextSet(uint(i))
			if !ok {
				require.Equal(t, bitset.NoMoreDocs, got, "n=%d i=%d", n, i)
				continue
			}
			require.Equal(t, int(want), got, "n=%d i=%d", n, i)
			for j := i; j < got; j++ {
				require.False(t, b.Get(j))
			}
		}
	}
}

func TestFixedBitSet_PrevSetBit(t *testing.T) {
	rng := testutil.NewRNG(8)
	for _, n := range testLengths {
		b := rng.BitSet(n, 0.05)
		for i := range n {
			want := -1
			for j := i; j >= 0; j-- {
				if b.Get(j) {
					want = j
					break
				}
			}
			require.Equal(t, want, b.PrevSetBit(i), "n=%d i=%d", n, i)
		}
	}
}

func TestFixedBitSet_Ranges(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
	}{
		{"empty range", 10, 10},
		{"inverted range", 20, 10},
		{"single word", 3, 40},
		{"whole word", 64, 128},
		{"word boundary end", 0, 64},
		{"cross word", 60, 70},
		{"last bit of word", 63, 64},
		{"multiple words", 5, 300},
		{"full set", 0, 333},
		{"tail", 320, 333},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := testutil.NewRNG(99)
			orig := rng.BitSet(333, 0.5)

			flipped := orig.Clone()
			flipped.FlipRange(tt.start, tt.end)
			set := orig.Clone()
			set.SetRange(tt.start, tt.end)
			cleared := orig.Clone()
			cleared.ClearRange(tt.start, tt.end)

			for i := range orig.Len() {
				in := i >= tt.start && i < tt.end
				if in {
					assert.Equal(t, !orig.Get(i), flipped.Get(i), "flip %d", i)
					assert.True(t, set.Get(i), "set %d", i)
					assert.False(t, cleared.Get(i), "clear %d", i)
				} else {
					assert.Equal(t, orig.Get(i), flipped.Get(i), "flip %d", i)
					assert.Equal(t, orig.Get(i), set.Get(i), "set %d", i)
					assert.Equal(t, orig.Get(i), cleared.Get(i), "clear %d", i)
				}
			}

			flipped.FlipRange(tt.start, tt.end)
			assert.True(t, orig.Equal(flipped), "double flip must restore the set")
		})
	}
}

func TestFixedBitSet_FlipRangeKeepsGhostBitsZero(t *testing.T) {
	b := bitset.New(70)
	b.FlipRange(0, 70)
	assert.Equal(t, 70, b.Cardinality())
	assert.Equal(t, uint64(0x3f), b.Words()[1])
}

func TestFixedBitSet_And(t *testing.T) {
	a := bitset.New(200)
	a.SetRange(0, 200)
	b := bitset.New(64)
	b.SetRange(10, 20)

	a.And(b)

	assert.Equal(t, 10, a.Cardinality())
	assert.Equal(t, 10, a.NextSetBit(0))
	assert.Equal(t, bitset.NoMoreDocs, a.NextSetBit(64))
}

func TestFixedBitSet_OrXorAndNot(t *testing.T) {
	a := bitset.New(128)
	a.SetRange(0, 64)
	b := bitset.New(100)
	b.SetRange(32, 96)

	or := a.Clone()
	require.NoError(t, or.Or(b))
	assert.Equal(t, 96, or.Cardinality())

	xor := a.Clone()
	require.NoError(t, xor.Xor(b))
	assert.Equal(t, 64, xor.Cardinality())
	assert.True(t, xor.Get(0))
	assert.False(t, xor.Get(40))
	assert.True(t, xor.Get(80))

	andNot := a.Clone()
	require.NoError(t, andNot.AndNot(b))
	assert.Equal(t, 32, andNot.Cardinality())
	assert.Equal(t, 31, andNot.PrevSetBit(127))
}

func TestFixedBitSet_LongerOperandIsRejected(t *testing.T) {
	short := bitset.New(64)
	short.Set(1)
	long := bitset.New(65)
	long.Set(64)

	assert.ErrorIs(t, short.Or(long), bitset.ErrInvalidArgument)
	assert.ErrorIs(t, short.Xor(long), bitset.ErrInvalidArgument)
	assert.ErrorIs(t, short.AndNot(long), bitset.ErrInvalidArgument)
	assert.Equal(t, 1, short.Cardinality(), "rejected operations must not mutate")
}

func TestFixedBitSet_OrKeepsGhostBitsZero(t *testing.T) {
	a := bitset.New(10)
	b := bitset.New(60)
	b.Set(5)
	b.Set(50)

	require.NoError(t, a.Or(b))

	assert.Equal(t, 1, a.Cardinality())
	assert.Equal(t, "{5}", a.String())
}

func TestFixedBitSet_EnsureCapacity(t *testing.T) {
	b := bitset.New(100)
	b.Set(99)

	assert.Same(t, b, bitset.EnsureCapacity(b, 50))

	grown := bitset.EnsureCapacity(b, 100)
	assert.GreaterOrEqual(t, grown.Len(), 100+64, "growth keeps a spare word")
	assert.Equal(t, 0, grown.Len()%64, "length reports full storage capacity")
	assert.True(t, grown.Get(99))

	grown = bitset.EnsureCapacity(b, 10000)
	assert.GreaterOrEqual(t, grown.Len(), 10000)
	assert.True(t, grown.Get(99))
	grown.Set(9999)
	assert.Equal(t, 2, grown.Cardinality())
}

func TestFixedBitSet_EqualAndHashCode(t *testing.T) {
	rng := testutil.NewRNG(3)
	a := rng.BitSet(300, 0.3)
	b := a.Clone()

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.HashCode(), b.HashCode())

	b.Flip(17)
	assert.False(t, a.Equal(b))

	c := bitset.New(301)
	assert.False(t, bitset.New(300).Equal(c), "different lengths are never equal")
	assert.False(t, a.Equal(nil))
}

func TestFixedBitSet_NewFromWords(t *testing.T) {
	b, err := bitset.NewFromWords([]uint64{0b1010, ^uint64(0)}, 70)
	require.NoError(t, err)
	assert.Equal(t, 2+6, b.Cardinality(), "bits past numBits are dropped")

	_, err = bitset.NewFromWords(make([]uint64, 1), 65)
	assert.ErrorIs(t, err, bitset.ErrInvalidArgument)
}

func TestFixedBitSet_OutOfRangePanics(t *testing.T) {
	b := bitset.New(10)

	assert.Panics(t, func() { b.Get(10) })
	assert.Panics(t, func() { b.Set(-1) })
	assert.Panics(t, func() { b.Clear(11) })
	assert.Panics(t, func() { b.NextSetBit(10) })
	assert.Panics(t, func() { b.FlipRange(0, 11) })
	assert.NotPanics(t, func() { b.SetRange(10, 10) })
}

func TestFixedBitSet_AllAndOrSeq(t *testing.T) {
	a := bitset.New(200)
	for _, i := range []int{0, 63, 64, 199} {
		a.Set(i)
	}

	var got []int
	for i := range a.All() {
		got = append(got, i)
	}
	assert.Equal(t, []int{0, 63, 64, 199}, got)

	b := bitset.New(200)
	b.OrSeq(a.All())
	assert.True(t, a.Equal(b))
	assert.Equal(t, "{0, 63, 64, 199}", b.String())
}
