package bitset_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/blockjoin/bitset"
	"github.com/hupe1980/blockjoin/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoaring_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(11)
	b := rng.BitSet(5000, 0.2)

	rb := b.ToRoaring()
	assert.Equal(t, uint64(b.Cardinality()), rb.GetCardinality())

	back, err := bitset.FromRoaring(rb, b.Len())
	require.NoError(t, err)
	assert.True(t, b.Equal(back))
}

func TestFromRoaring_ValueOutOfRange(t *testing.T) {
	rb := roaring.BitmapOf(1, 2, 64)

	_, err := bitset.FromRoaring(rb, 64)
	assert.ErrorIs(t, err, bitset.ErrInvalidArgument)

	b, err := bitset.FromRoaring(rb, 65)
	require.NoError(t, err)
	assert.Equal(t, "{1, 2, 64}", b.String())
}

func TestFromRoaring_Empty(t *testing.T) {
	b, err := bitset.FromRoaring(roaring.New(), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, b.Len())
	assert.Equal(t, 0, b.Cardinality())

	b, err = bitset.FromRoaring(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}

func TestSparse(t *testing.T) {
	s := bitset.NewSparse(roaring.BitmapOf(2, 5), 6)

	assert.Equal(t, 6, s.Len())
	assert.Equal(t, 2, s.Cardinality())
	assert.True(t, s.Get(5))
	assert.False(t, s.Get(4))
	assert.False(t, s.Get(100))

	dense, err := s.Dense()
	require.NoError(t, err)
	assert.Equal(t, 5, dense.NextSetBit(3))
}
