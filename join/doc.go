// Package join combines the relevance scores of the documents matched across a
// join into one score per target document.
//
// Scores are accumulated per join value by an Aggregator and resolved to
// target documents by a Resolver:
//
//	agg := join.NewAggregator()
//	agg.Add("movie-1", 1.0)
//	agg.Add("movie-1", 3.0)
//
//	r := join.NewResolver(agg)
//	r.Assign(42, "movie-1", "movie-7")
//	hits, _ := r.TopN(join.Avg, 10) // [{42 2}]
//
// A document carrying several join values takes the score of the first value
// that has any contribution. Scores are not merged across its values.
package join
