package join_test

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"testing"

	"github.com/hupe1980/blockjoin/join"
	"github.com/hupe1980/blockjoin/model"
	"github.com/hupe1980/blockjoin/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregator(t *testing.T) {
	agg := join.NewAggregator()
	agg.Add("a", 1)
	agg.Add("a", 3)
	agg.Add("b", 2)

	assert.Equal(t, 2, agg.Len())

	v, ok, err := agg.Score("a", join.Avg)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, float32(2), v)

	_, ok, err = agg.Score("missing", join.Avg)
	require.NoError(t, err)
	assert.False(t, ok, "no accumulator exists without a contribution")

	seen := map[string]int{}
	for v, s := range agg.All() {
		seen[v] = s.Count()
	}
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, seen)
}

func TestResolver_FirstJoinValueWins(t *testing.T) {
	agg := join.NewAggregator()
	agg.Add("x", 5)
	agg.Add("y", 1)
	agg.Add("y", 1)

	r := join.NewResolver(agg)
	assert.False(t, r.Assign(0, "missing"))
	assert.True(t, r.Assign(1, "missing", "y", "x"))
	assert.True(t, r.Assign(2, "x", "y"))
	assert.True(t, r.Assign(2, "y"), "already bound documents keep their value")

	hits, err := r.Hits(join.Total)
	require.NoError(t, err)
	assert.Equal(t, []model.Hit{{Doc: 2, Score: 5}, {Doc: 1, Score: 2}}, hits)
	assert.Equal(t, 2, r.Len())
}

func TestResolver_TopN(t *testing.T) {
	rng := testutil.NewRNG(4711)
	agg := join.NewAggregator()
	r := join.NewResolver(agg)

	for doc := range 200 {
		value := fmt.Sprintf("v%d", rng.Intn(40))
		agg.Add(value, float32(rng.Intn(10)))
		r.Assign(doc, value)
	}

	for _, mode := range []join.ScoreMode{join.None, join.Total, join.Avg, join.Max} {
		all, err := r.Hits(mode)
		require.NoError(t, err)

		for _, n := range []int{1, 10, 500} {
			top, err := r.TopN(mode, n)
			require.NoError(t, err)
			assert.Equal(t, all[:min(n, len(all))], top, "mode=%s n=%d", mode, n)
		}
	}

	_, err := r.TopN(join.Max, 0)
	assert.ErrorIs(t, err, join.ErrInvalidArgument)
}

func matches(ms ...join.Match) iter.Seq[join.Match] {
	return slices.Values(ms)
}

func TestCollect(t *testing.T) {
	rng := testutil.NewRNG(42)
	serial := join.NewAggregator()

	var sources []iter.Seq[join.Match]
	for range 8 {
		var shard []join.Match
		for range 100 {
			m := join.Match{JoinValue: fmt.Sprintf("v%d", rng.Intn(25)), Score: float32(rng.Intn(8))}
			shard = append(shard, m)
			serial.Add(m.JoinValue, m.Score)
		}
		sources = append(sources, matches(shard...))
	}

	got, err := join.Collect(context.Background(), sources...)
	require.NoError(t, err)
	require.Equal(t, serial.Len(), got.Len())

	for v, want := range serial.All() {
		s, ok := got.Get(v)
		require.True(t, ok, v)
		assert.Equal(t, want.Count(), s.Count(), v)
		assert.Equal(t, want.Sum(), s.Sum(), v)
		assert.Equal(t, want.Max(), s.Max(), v)
	}
}

func TestCollect_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := join.Collect(ctx, matches(join.Match{JoinValue: "a", Score: 1}))
	assert.ErrorIs(t, err, context.Canceled)
}
