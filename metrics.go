package blockjoin

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSort is called after each segment sort.
	// docs is the number of documents ordered, err is nil if successful.
	RecordSort(docs int, duration time.Duration, err error)

	// RecordTopDocs is called after each top-k selection.
	RecordTopDocs(k int, duration time.Duration, err error)

	// RecordJoin is called after each join scoring pass.
	// hits is the number of scored target documents.
	RecordJoin(hits int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSort(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordTopDocs(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordJoin(int, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SortCount      atomic.Int64
	SortErrors     atomic.Int64
	SortDocs       atomic.Int64
	SortTotalNanos atomic.Int64
	TopDocsCount   atomic.Int64
	TopDocsErrors  atomic.Int64
	JoinCount      atomic.Int64
	JoinErrors     atomic.Int64
	JoinHits       atomic.Int64
	JoinTotalNanos atomic.Int64
}

// RecordSort implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSort(docs int, duration time.Duration, err error) {
	b.SortCount.Add(1)
	b.SortTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SortErrors.Add(1)
		return
	}
	b.SortDocs.Add(int64(docs))
}

// RecordTopDocs implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTopDocs(k int, duration time.Duration, err error) {
	b.TopDocsCount.Add(1)
	if err != nil {
		b.TopDocsErrors.Add(1)
	}
}

// RecordJoin implements MetricsCollector.
func (b *BasicMetricsCollector) RecordJoin(hits int, duration time.Duration, err error) {
	b.JoinCount.Add(1)
	b.JoinTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.JoinErrors.Add(1)
		return
	}
	b.JoinHits.Add(int64(hits))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SortCount:     b.SortCount.Load(),
		SortErrors:    b.SortErrors.Load(),
		SortDocs:      b.SortDocs.Load(),
		SortAvgNanos:  avgNanos(b.SortTotalNanos.Load(), b.SortCount.Load()),
		TopDocsCount:  b.TopDocsCount.Load(),
		TopDocsErrors: b.TopDocsErrors.Load(),
		JoinCount:     b.JoinCount.Load(),
		JoinErrors:    b.JoinErrors.Load(),
		JoinHits:      b.JoinHits.Load(),
		JoinAvgNanos:  avgNanos(b.JoinTotalNanos.Load(), b.JoinCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SortCount     int64
	SortErrors    int64
	SortDocs      int64
	SortAvgNanos  int64
	TopDocsCount  int64
	TopDocsErrors int64
	JoinCount     int64
	JoinErrors    int64
	JoinHits      int64
	JoinAvgNanos  int64
}
