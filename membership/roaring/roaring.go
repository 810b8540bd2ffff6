// Package roaring provides the compressed-bitmap membership index.
//
// It wraps the official 64-bit Roaring implementation. Dense stretches of
// the prime sequence collapse into run and bitmap containers, landing the
// footprint between the bit table and the hash set at intermediate
// densities. It is never auto-selected; callers opt in.
package roaring

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/primefold/truncprime/membership"
)

// Compile-time check to ensure Set satisfies the membership contract.
var _ membership.Index = (*Set)(nil)

// Set is a compressed bitmap over uint64 values.
type Set struct {
	rb *roaring64.Bitmap
}

// Build creates a Set containing values. The input need not be sorted or
// deduplicated; inserting a value twice leaves the set unchanged.
func Build(values []uint64) (*Set, error) {
	rb := roaring64.New()
	for _, v := range values {
		rb.Add(v)
	}
	rb.RunOptimize()

	return &Set{rb: rb}, nil
}

// Add inserts v. Inserting a present value is a no-op. The Set must not be
// read concurrently with Add.
func (s *Set) Add(v uint64) {
	s.rb.Add(v)
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v uint64) bool {
	return s.rb.Contains(v)
}

// Len returns the number of distinct values in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// Stats returns bitmap statistics.
func (s *Set) Stats() membership.Stats {
	return membership.Stats{
		Kind:        "Roaring",
		Len:         s.Len(),
		MemoryBytes: s.rb.GetSizeInBytes(),
	}
}
