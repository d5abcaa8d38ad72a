package join

import (
	"context"
	"iter"

	"golang.org/x/sync/errgroup"
)

// Match is one scored document reached through joinValue.
type Match struct {
	JoinValue string
	Score     float32
}

// Collect aggregates the matches of every source. Each source is drained by its
// own goroutine into a private Aggregator; the shards are merged in source order
// once all of them finish.
func Collect(ctx context.Context, sources ...iter.Seq[Match]) (*Aggregator, error) {
	shards := make([]*Aggregator, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			agg := NewAggregator()
			for m := range src {
				if err := ctx.Err(); err != nil {
					return err
				}
				agg.Add(m.JoinValue, m.Score)
			}
			shards[i] = agg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := NewAggregator()
	for _, shard := range shards {
		out.Merge(shard)
	}
	return out, nil
}
