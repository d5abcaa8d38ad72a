package blockjoin

import (
	"log/slog"
	"runtime"

	"github.com/hupe1980/blockjoin/resource"
	"github.com/hupe1980/blockjoin/sorter"
)

type options struct {
	parentSort       sorter.Sort
	childSort        sorter.Sort
	concurrency      int
	parentsCacheSize int
	resources        *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Sorter and ScoreJoin behavior.
type Option func(*options)

// WithParentSort configures the order of blocks.
// Blocks whose parents compare equal keep their ordinal order.
func WithParentSort(fields ...sorter.SortField) Option {
	return func(o *options) {
		o.parentSort = fields
	}
}

// WithChildSort configures the order of children inside a block.
// Without a child sort children keep their ordinal order.
func WithChildSort(fields ...sorter.SortField) Option {
	return func(o *options) {
		o.childSort = fields
	}
}

// WithConcurrency limits the number of segments sorted in parallel by
// SortSegments. Values <= 0 use runtime.GOMAXPROCS(0).
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithParentsCache caches the dense parent sets of up to size segments.
// A size of 0 disables caching.
func WithParentsCache(size int) Option {
	return func(o *options) {
		o.parentsCacheSize = size
	}
}

// WithResourceLimits bounds the comparator memory held by concurrent sorts and
// the number of documents sorted per second. A sort of a segment larger than
// the memory limit fails with resource.ErrOverBudget.
func WithResourceLimits(cfg resource.Config) Option {
	return func(o *options) {
		o.resources = resource.NewController(cfg)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &blockjoin.BasicMetricsCollector{}
//	s, _ := blockjoin.New(parents, blockjoin.WithMetricsCollector(metrics))
//	// ... use s ...
//	stats := metrics.GetStats()
//	fmt.Printf("Sorts: %d, Avg latency: %dns\n", stats.SortCount, stats.SortAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := blockjoin.NewJSONLogger(slog.LevelInfo)
//	s, _ := blockjoin.New(parents, blockjoin.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.concurrency <= 0 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}
