package join

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/hupe1980/blockjoin/internal/queue"
	"github.com/hupe1980/blockjoin/model"
)

// Resolver binds target documents to the accumulator of one join value.
type Resolver struct {
	agg  *Aggregator
	docs map[int]*Score
}

// NewResolver creates a resolver reading accumulators from agg.
func NewResolver(agg *Aggregator) *Resolver {
	return &Resolver{agg: agg, docs: make(map[int]*Score)}
}

// Assign binds doc to the first of joinValues that has an accumulator.
// A document that is already bound keeps its accumulator.
// It reports whether doc is bound after the call.
func (r *Resolver) Assign(doc int, joinValues ...string) bool {
	if _, ok := r.docs[doc]; ok {
		return true
	}
	for _, v := range joinValues {
		if s, ok := r.agg.Get(v); ok {
			r.docs[doc] = s
			return true
		}
	}
	return false
}

// Len returns the number of bound documents.
func (r *Resolver) Len() int { return len(r.docs) }

// Hits returns every bound document ordered by descending score, then ascending doc.
func (r *Resolver) Hits(mode ScoreMode) ([]model.Hit, error) {
	hits := make([]model.Hit, 0, len(r.docs))
	for doc, s := range r.docs {
		v, err := s.Score(mode)
		if err != nil {
			return nil, err
		}
		hits = append(hits, model.Hit{Doc: doc, Score: v})
	}
	slices.SortFunc(hits, compareHits)
	return hits, nil
}

// TopN returns the n best bound documents in the order of Hits.
func (r *Resolver) TopN(mode ScoreMode, n int) ([]model.Hit, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n must be positive, got %d", ErrInvalidArgument, n)
	}
	// The top of the queue is the weakest kept hit.
	pq := queue.New(n, func(a, b model.Hit) bool { return compareHits(a, b) > 0 })
	for doc, s := range r.docs {
		v, err := s.Score(mode)
		if err != nil {
			return nil, err
		}
		pq.PushItemBounded(model.Hit{Doc: doc, Score: v}, n)
	}
	return pq.Drain(), nil
}

func compareHits(a, b model.Hit) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return cmp.Compare(a.Doc, b.Doc)
}
