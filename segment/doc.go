// Package segment defines the per-segment collaborator interface consumed by
// the sorter and join packages, plus an in-memory implementation.
//
// A Segment is one physical slice of the index with a flat document space
// [0, MaxDoc). It exposes typed per-document columns for sorting and roaring
// postings for term lookups. Everything handed out by a Segment is read-only
// and may be shared between goroutines.
package segment
