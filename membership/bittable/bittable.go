// Package bittable provides the dense bit-indexed membership table.
//
// One bit per value in [0, bound]: membership is a single bounds-checked
// bit read, so queries beyond the bound answer false without any special
// casing. Memory follows the bound, not the value count, which is why the
// table serves narrow ranges and the hash set serves wide ones.
package bittable

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/primefold/truncprime/membership"
)

// Compile-time check to ensure Table satisfies the membership contract.
var _ membership.Index = (*Table)(nil)

// MaxTableBits caps the addressable table size (128GB of bits). Builds
// over a larger bound fail with ErrRangeTooLarge instead of attempting an
// allocation that cannot succeed.
const MaxTableBits uint64 = 1 << 40

// ErrRangeTooLarge is a named error type for a bound beyond MaxTableBits.
type ErrRangeTooLarge struct {
	Bound uint64
}

// Error returns the error message for an oversized bound.
func (e *ErrRangeTooLarge) Error() string {
	return fmt.Sprintf("bit table bound %d exceeds %d bits", e.Bound, MaxTableBits)
}

// Table is a dense bit-indexed membership table over [0, bound].
type Table struct {
	bits  *bitset.BitSet
	bound uint64
	n     int
}

// Build creates a Table answering for values in [0, bound]. Values above
// bound are rejected; duplicate values leave the table unchanged.
func Build(values []uint64, bound uint64) (*Table, error) {
	if bound >= MaxTableBits {
		return nil, &ErrRangeTooLarge{Bound: bound}
	}

	t := &Table{
		bits:  bitset.New(uint(bound + 1)),
		bound: bound,
	}

	for _, v := range values {
		if err := t.Add(v); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Add inserts v. Inserting a present value is a no-op. The Table must not
// be read concurrently with Add.
func (t *Table) Add(v uint64) error {
	if v > t.bound {
		return fmt.Errorf("bittable: value %d above table bound %d", v, t.bound)
	}

	if !t.bits.Test(uint(v)) {
		t.bits.Set(uint(v))
		t.n++
	}

	return nil
}

// Contains reports whether v is in the table. Values above the bound are
// false by the bounds check of the underlying bit read.
func (t *Table) Contains(v uint64) bool {
	return t.bits.Test(uint(v))
}

// Len returns the number of distinct values in the table.
func (t *Table) Len() int {
	return t.n
}

// Stats returns table statistics.
func (t *Table) Stats() membership.Stats {
	return membership.Stats{
		Kind:        "BitTable",
		Len:         t.n,
		MemoryBytes: uint64(Footprint(t.bound)),
	}
}

// Footprint predicts the resident bytes of a Table over [0, bound], for
// memory budgeting before the build.
func Footprint(bound uint64) int64 {
	words := (bound + 1 + 63) / 64
	return int64(words) * 8
}
