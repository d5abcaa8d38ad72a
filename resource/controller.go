// Package resource bounds the memory and throughput spent on sorting segments.
package resource

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrOverBudget is returned when a single request exceeds the memory limit.
var ErrOverBudget = errors.New("request exceeds memory limit")

// SlotBytes is the slot memory a block sort needs per document:
// the child and parent slot of the block comparator plus the order entry.
const SlotBytes = 3 * 8

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for comparator slot memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// DocsPerSecond is the maximum number of documents sorted per second.
	// If 0, unlimited.
	DocsPerSecond int64
}

// Controller manages the resources shared by concurrent sorts.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Throughput
	limiter *rate.Limiter
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.DocsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.DocsPerSecond), int(cfg.DocsPerSecond))
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// If a hard limit is configured and usage would exceed it,
// this blocks until memory is available or ctx is canceled.
func (c *Controller) AcquireMemory(ctx context.Context, bytes int64) error {
	if c == nil || bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if bytes > c.cfg.MemoryLimitBytes {
			return fmt.Errorf("%w: %d > %d bytes", ErrOverBudget, bytes, c.cfg.MemoryLimitBytes)
		}
		if err := c.memSem.Acquire(ctx, bytes); err != nil {
			return err
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// TryAcquireMemory attempts to reserve memory without blocking.
// Returns true if acquired, false if limit would be exceeded.
func (c *Controller) TryAcquireMemory(bytes int64) bool {
	if c == nil || bytes <= 0 {
		return true
	}

	if c.memSem != nil && !c.memSem.TryAcquire(bytes) {
		return false
	}

	c.memUsed.Add(bytes)
	return true
}

// ReleaseMemory releases reserved memory.
func (c *Controller) ReleaseMemory(bytes int64) {
	if c == nil || bytes <= 0 {
		return
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	c.memUsed.Add(-bytes)
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// WaitDocs waits until the throughput limit allows sorting docs documents.
// Requests larger than one second of budget are split.
func (c *Controller) WaitDocs(ctx context.Context, docs int) error {
	if c == nil || c.limiter == nil {
		return nil
	}
	burst := c.limiter.Burst()
	for docs > 0 {
		n := min(docs, burst)
		if err := c.limiter.WaitN(ctx, n); err != nil {
			return err
		}
		docs -= n
	}
	return nil
}

// AcquireSort reserves the memory of the given number of comparator slots and waits until
// scanning docs documents is allowed. A full sort uses one slot per document;
// a top-k selection keeps k slots but still scans every document.
// The returned func releases the memory.
func (c *Controller) AcquireSort(ctx context.Context, slots, docs int) (func(), error) {
	bytes := int64(slots) * SlotBytes
	if err := c.AcquireMemory(ctx, bytes); err != nil {
		return nil, err
	}
	if err := c.WaitDocs(ctx, docs); err != nil {
		c.ReleaseMemory(bytes)
		return nil, err
	}
	return func() { c.ReleaseMemory(bytes) }, nil
}
