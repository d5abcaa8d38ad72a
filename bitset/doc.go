// Package bitset provides FixedBitSet, a word-packed set of document ordinals.
//
// A FixedBitSet covers the ordinals [0, Len()) with one bit per ordinal stored
// in 64-bit words. It supports point and range mutation, in-place set algebra,
// popcount-based counting and forward/backward bit scans.
//
// # Layout
//
//	┌──────────────────┬──────────────────┬─────┬──────────────────────┐
//	│ word 0           │ word 1           │ ... │ word n-1             │
//	│ bits [0,63]      │ bits [64,127]    │     │ bits [64(n-1), N)    │
//	└──────────────────┴──────────────────┴─────┴──────────────────────┘
//
// Bits at positions >= Len() inside the last word are always zero.
//
// # Concurrency
//
// A FixedBitSet is not synchronized. A set under mutation must have a single
// writer; once fully built (e.g. a segment's parent set) it may be read by any
// number of goroutines.
//
// # Roaring interop
//
// Postings are usually held as roaring bitmaps. FromRoaring densifies one into
// a FixedBitSet and ToRoaring goes the other way. Sparse wraps a roaring bitmap
// as a read-only DocSet without densifying it.
package bitset
