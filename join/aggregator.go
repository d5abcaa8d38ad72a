package join

import "iter"

// Aggregator holds one Score per join value for a single search.
// It is not safe for concurrent use; see Collect for sharded collection.
type Aggregator struct {
	scores map[string]*Score
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{scores: make(map[string]*Score)}
}

// Add records score for joinValue, creating its accumulator on first use.
func (a *Aggregator) Add(joinValue string, score float32) {
	s, ok := a.scores[joinValue]
	if !ok {
		s = NewScore()
		a.scores[joinValue] = s
	}
	s.AddScore(score)
}

// Get returns the accumulator of joinValue, if any score was added for it.
func (a *Aggregator) Get(joinValue string) (*Score, bool) {
	s, ok := a.scores[joinValue]
	return s, ok
}

// Score returns the combined score of joinValue. The boolean is false when
// nothing was added for joinValue.
func (a *Aggregator) Score(joinValue string, mode ScoreMode) (float32, bool, error) {
	s, ok := a.scores[joinValue]
	if !ok {
		return 0, false, nil
	}
	v, err := s.Score(mode)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// Len returns the number of join values with an accumulator.
func (a *Aggregator) Len() int { return len(a.scores) }

// All iterates over the join values and their accumulators in no particular order.
func (a *Aggregator) All() iter.Seq2[string, *Score] {
	return func(yield func(string, *Score) bool) {
		for v, s := range a.scores {
			if !yield(v, s) {
				return
			}
		}
	}
}

// Merge folds the accumulators of other into a. other must not be used afterwards.
func (a *Aggregator) Merge(other *Aggregator) {
	for v, s := range other.scores {
		if mine, ok := a.scores[v]; ok {
			mine.Merge(s)
			continue
		}
		a.scores[v] = s
	}
}
