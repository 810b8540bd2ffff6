// Package hashset provides the chained hash set membership index.
//
// Layout follows the classic separate-chaining table: the bucket count is
// fixed at build time to twice the value count (floored at a small prime),
// chains are singly linked with prepend insertion, and there is no
// rehashing. At that sizing the expected chain length stays below one, so
// lookups are O(1) with a short constant tail.
package hashset

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"

	"github.com/primefold/truncprime/membership"
)

// Compile-time check to ensure Set satisfies the membership contract.
var _ membership.Index = (*Set)(nil)

// minBuckets is the bucket floor for empty or tiny builds.
const minBuckets = 17

// Mixer selects the avalanche function spreading keys across buckets.
type Mixer int

const (
	// MixerWang is Thomas Wang's 64-bit integer mix.
	MixerWang Mixer = iota

	// MixerXXH3 hashes the little-endian key bytes with XXH3.
	MixerXXH3
)

// String returns a string representation of the Mixer.
func (m Mixer) String() string {
	switch m {
	case MixerWang:
		return "Wang"
	case MixerXXH3:
		return "XXH3"
	default:
		return "Unknown"
	}
}

// Options contains configuration options for the Set.
type Options struct {
	// Mixer is the avalanche function. Defaults to MixerWang.
	Mixer Mixer
}

// DefaultOptions contains the default options for the Set.
var DefaultOptions = Options{
	Mixer: MixerWang,
}

// Set is a chained hash set over uint64 values.
//
// Chains live in flat arrays rather than pointer nodes: next[i] links the
// entry values[i] to the rest of its chain, buckets[h] holds the chain
// head, -1 ends a chain. Inserts prepend.
type Set struct {
	opts    Options
	buckets []int
	values  []uint64
	next    []int
}

// Build creates a Set containing values. The input need not be sorted or
// deduplicated; inserting a value twice leaves the set unchanged.
func Build(values []uint64, optFns ...func(o *Options)) (*Set, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Mixer != MixerWang && opts.Mixer != MixerXXH3 {
		return nil, fmt.Errorf("hashset: unknown mixer %d", opts.Mixer)
	}

	n := len(values)
	b := 2 * n
	if b < minBuckets {
		b = minBuckets
	}

	s := &Set{
		opts:    opts,
		buckets: make([]int, b),
		values:  make([]uint64, 0, n),
		next:    make([]int, 0, n),
	}
	for i := range s.buckets {
		s.buckets[i] = -1
	}

	for _, v := range values {
		s.Add(v)
	}

	return s, nil
}

// Add inserts v. Inserting a present value is a no-op, so chains hold
// distinct values only. The Set must not be read concurrently with Add.
func (s *Set) Add(v uint64) {
	h := s.bucket(v)
	for i := s.buckets[h]; i >= 0; i = s.next[i] {
		if s.values[i] == v {
			return
		}
	}

	s.values = append(s.values, v)
	s.next = append(s.next, s.buckets[h])
	s.buckets[h] = len(s.values) - 1
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v uint64) bool {
	for i := s.buckets[s.bucket(v)]; i >= 0; i = s.next[i] {
		if s.values[i] == v {
			return true
		}
	}
	return false
}

// Len returns the number of distinct values in the set.
func (s *Set) Len() int {
	return len(s.values)
}

func (s *Set) bucket(v uint64) int {
	switch s.opts.Mixer {
	case MixerXXH3:
		v = mixXXH3(v)
	default:
		v = mixWang(v)
	}
	return int(v % uint64(len(s.buckets)))
}

// mixWang applies Thomas Wang's 64-bit avalanche mix.
func mixWang(key uint64) uint64 {
	key = ^key + key<<21
	key ^= key >> 24
	key = key + key<<3 + key<<8
	key ^= key >> 14
	key = key + key<<2 + key<<4
	key ^= key >> 28
	key = key + key<<31
	return key
}

// mixXXH3 hashes the little-endian bytes of key with XXH3.
func mixXXH3(key uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	return xxh3.Hash(buf[:])
}

// Footprint predicts the resident bytes of a Set built over n values,
// for memory budgeting before the build.
func Footprint(n int) int64 {
	b := 2 * n
	if b < minBuckets {
		b = minBuckets
	}
	return int64(b)*8 + int64(n)*16
}
