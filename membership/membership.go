// Package membership defines the read-only index contract the truncation
// scan queries, shared by the interchangeable implementations in the
// subpackages hashset, bittable and roaring.
package membership

import "fmt"

// DenseLimit is the exclusive value bound up to which automatic selection
// uses the dense bit table: one bit per value up to here costs at most
// 512MB. Above it the chained hash set takes over, whose memory follows
// the number of values instead of the range.
const DenseLimit uint64 = 1 << 32

// Kind selects a membership index implementation.
type Kind int

const (
	// KindAuto selects KindBitTable for value bounds below DenseLimit and
	// KindHashSet otherwise.
	KindAuto Kind = iota

	// KindHashSet is the chained hash set. Memory scales with the number
	// of values; suited to sparse sets over wide ranges.
	KindHashSet

	// KindBitTable is the dense bit-indexed table. Memory scales with the
	// value bound; unbeatable lookup cost on narrow ranges.
	KindBitTable

	// KindRoaring is the compressed bitmap. A middle ground that is never
	// auto-selected; callers opt in explicitly.
	KindRoaring
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindAuto:
		return "Auto"
	case KindHashSet:
		return "HashSet"
	case KindBitTable:
		return "BitTable"
	case KindRoaring:
		return "Roaring"
	default:
		return "Unknown"
	}
}

// ParseKind maps the flag spellings onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "auto":
		return KindAuto, nil
	case "hash":
		return KindHashSet, nil
	case "bits":
		return KindBitTable, nil
	case "roaring":
		return KindRoaring, nil
	default:
		return KindAuto, &ErrInvalidKind{Name: s}
	}
}

// ErrInvalidKind is a named error type for an unrecognized kind spelling.
type ErrInvalidKind struct {
	Name string
}

// Error returns the error message for an unrecognized kind spelling.
func (e *ErrInvalidKind) Error() string {
	return fmt.Sprintf("invalid index kind: %q (want auto, hash, bits or roaring)", e.Name)
}

// Stats describes a built index.
type Stats struct {
	// Kind names the implementation.
	Kind string

	// Len is the number of distinct indexed values.
	Len int

	// MemoryBytes approximates the resident size of the index.
	MemoryBytes uint64

	// Buckets, MaxChain and AvgChain describe the chain layout of the
	// hash set; zero for the other implementations. AvgChain averages
	// over non-empty buckets.
	Buckets  int
	MaxChain int
	AvgChain float64
}

// Index answers membership queries for the value set it was built over.
// Implementations are immutable behind this interface and safe for
// concurrent readers.
type Index interface {
	// Contains reports whether v was in the build set. It must accept any
	// uint64, including values far outside the indexed range, and answer
	// false rather than fail for them.
	Contains(v uint64) bool

	// Len returns the number of distinct indexed values.
	Len() int

	// Stats returns implementation statistics.
	Stats() Stats
}
