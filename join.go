package blockjoin

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/hupe1980/blockjoin/join"
	"github.com/hupe1980/blockjoin/model"
)

// JoinTarget is a document on the receiving side of a join together with its
// join values, in the order they were encountered.
type JoinTarget struct {
	Doc        int
	JoinValues []string
}

// JoinRequest describes one join scoring pass.
type JoinRequest struct {
	// Mode combines the scores reaching one target.
	Mode join.ScoreMode
	// N limits the result to the N best hits. N <= 0 returns every hit.
	N int
	// Targets are resolved in order; a document listed twice keeps its first value.
	Targets []JoinTarget
	// Sources are the scored matches of the other side, one sequence per shard.
	Sources []iter.Seq[join.Match]
}

// ScoreJoin aggregates the matches of req.Sources per join value and scores
// every target reached by at least one of its join values.
// Hits are ordered by descending score, then ascending document.
func ScoreJoin(ctx context.Context, req JoinRequest, optFns ...Option) (hits []model.Hit, err error) {
	opts := applyOptions(optFns)

	start := time.Now()
	joinValues := 0
	defer func() {
		opts.metricsCollector.RecordJoin(len(hits), time.Since(start), err)
		opts.logger.LogJoin(ctx, req.Mode, joinValues, len(hits), err)
	}()

	if req.Mode < join.None || req.Mode > join.Max {
		return nil, translateError(fmt.Errorf("%w: %s", join.ErrUnsupportedScoreMode, req.Mode))
	}

	agg, err := join.Collect(ctx, req.Sources...)
	if err != nil {
		return nil, translateError(err)
	}
	joinValues = agg.Len()

	r := join.NewResolver(agg)
	for _, t := range req.Targets {
		r.Assign(t.Doc, t.JoinValues...)
	}

	if req.N > 0 {
		hits, err = r.TopN(req.Mode, req.N)
	} else {
		hits, err = r.Hits(req.Mode)
	}
	if err != nil {
		return nil, translateError(err)
	}
	return hits, nil
}
