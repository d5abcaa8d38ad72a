package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/blockjoin/bitset"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Scores returns n random scores in [0, 1).
func (r *RNG) Scores(n int) []float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]float32, n)
	for i := range out {
		out[i] = r.rand.Float32()
	}
	return out
}

// Shuffle returns a shuffled copy of s.
func Shuffle[T any](r *RNG, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// BitSet returns a set of numBits bits where each bit is set with probability density.
func (r *RNG) BitSet(numBits int, density float64) *bitset.FixedBitSet {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := bitset.New(numBits)
	for i := range numBits {
		if r.rand.Float64() < density {
			b.Set(i)
		}
	}
	return b
}

// ParentBits returns a parent set describing numBlocks consecutive blocks,
// each with 0..maxChildren children followed by its parent.
func (r *RNG) ParentBits(numBlocks, maxChildren int) *bitset.FixedBitSet {
	r.mu.Lock()
	sizes := make([]int, numBlocks)
	total := 0
	for i := range sizes {
		sizes[i] = r.rand.Intn(maxChildren+1) + 1
		total += sizes[i]
	}
	r.mu.Unlock()

	parents := bitset.New(total)
	end := 0
	for _, size := range sizes {
		end += size
		parents.Set(end - 1)
	}
	return parents
}

// CheckBlockOrder verifies that order is a permutation of [0, parents.Len())
// in which every block is contiguous and ends with its parent.
func CheckBlockOrder(order []int, parents *bitset.FixedBitSet) error {
	if len(order) != parents.Len() {
		return fmt.Errorf("order has %d docs, want %d", len(order), parents.Len())
	}
	seen := make([]bool, len(order))
	for _, doc := range order {
		if doc < 0 || doc >= len(order) || seen[doc] {
			return fmt.Errorf("doc %d is out of range or repeated", doc)
		}
		seen[doc] = true
	}

	for i := 0; i < len(order); {
		parent := parents.NextSetBit(order[i])
		if parent == bitset.NoMoreDocs {
			return fmt.Errorf("doc %d has no enclosing parent", order[i])
		}
		first := 0
		if parent > 0 {
			if prev := parents.PrevSetBit(parent - 1); prev >= 0 {
				first = prev + 1
			}
		}
		size := parent - first + 1
		if i+size > len(order) {
			return fmt.Errorf("block [%d,%d] is cut off at position %d", first, parent, i)
		}
		for j := i; j < i+size; j++ {
			if parents.NextSetBit(order[j]) != parent {
				return fmt.Errorf("position %d: doc %d is outside block [%d,%d]", j, order[j], first, parent)
			}
		}
		if order[i+size-1] != parent {
			return fmt.Errorf("block [%d,%d] does not end with its parent", first, parent)
		}
		i += size
	}
	return nil
}
