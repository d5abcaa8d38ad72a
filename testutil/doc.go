// Package testutil provides testing utilities for blockjoin.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random bit sets and block layouts and
// for checking that an ordering keeps every block contiguous.
//
// # Random Generation
//
//	rng := testutil.NewRNG(seed)
//	set := rng.BitSet(1000, 0.1)          // ~10% of 1000 bits set
//	parents := rng.ParentBits(50, 4)      // 50 blocks of up to 4 children
//
// # Block Order Verification
//
//	err := testutil.CheckBlockOrder(order, parents)
package testutil
