package resource

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 100})

	require.NoError(t, c.AcquireMemory(context.Background(), 50))
	require.NoError(t, c.AcquireMemory(context.Background(), 40))
	assert.Equal(t, int64(90), c.MemoryUsage())

	// TryAcquire 20 (should fail)
	assert.False(t, c.TryAcquireMemory(20))
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Acquire 20 (should block/timeout)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireMemory(ctx, 20), context.DeadlineExceeded)

	c.ReleaseMemory(50)
	assert.Equal(t, int64(40), c.MemoryUsage())

	require.NoError(t, c.AcquireMemory(context.Background(), 20))
	assert.Equal(t, int64(60), c.MemoryUsage())

	assert.ErrorIs(t, c.AcquireMemory(context.Background(), 101), ErrOverBudget)
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{})

	require.NoError(t, c.AcquireMemory(context.Background(), 1000))
	assert.Equal(t, int64(1000), c.MemoryUsage())

	c.ReleaseMemory(500)
	assert.Equal(t, int64(500), c.MemoryUsage())
}

func TestController_AcquireSort(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 10 * SlotBytes, DocsPerSecond: 1000})

	release, err := c.AcquireSort(context.Background(), 10, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10*SlotBytes), c.MemoryUsage())
	assert.False(t, c.TryAcquireMemory(1))

	release()
	assert.Equal(t, int64(0), c.MemoryUsage())

	_, err = c.AcquireSort(context.Background(), 11, 11)
	assert.ErrorIs(t, err, ErrOverBudget)
}

func TestController_WaitDocs(t *testing.T) {
	c := NewController(Config{DocsPerSecond: 10})

	// The bucket starts full: one burst passes immediately.
	require.NoError(t, c.WaitDocs(context.Background(), 10))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, c.WaitDocs(ctx, 10))

	var nilController *Controller
	assert.NoError(t, nilController.WaitDocs(context.Background(), 1<<20))
	release, err := nilController.AcquireSort(context.Background(), 5, 5)
	require.NoError(t, err)
	release()
}

func TestController_AcquireSortPacesScannedDocs(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 2 * SlotBytes, DocsPerSecond: 10})

	// Two slots fit the budget; scanning 10 docs uses the whole first second.
	release, err := c.AcquireSort(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2*SlotBytes), c.MemoryUsage())
	release()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = c.AcquireSort(ctx, 2, 10)
	assert.Error(t, err)
	assert.Equal(t, int64(0), c.MemoryUsage(), "memory is released when pacing fails")
}
