// Package model defines core types shared across blockjoin packages.
//
// # Identity Types
//
//   - SegmentID: Unique identifier for a segment (uint64)
//
// A document's ordinal is a dense, segment-local int in [0, MaxDoc).
//
// # Result Types
//
//   - Hit: A scored document ordinal
package model
