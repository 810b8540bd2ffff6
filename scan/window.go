package scan

import (
	"github.com/primefold/truncprime/internal/digits"
	"github.com/primefold/truncprime/membership"
)

// Window is the index span of one digit length within an ascending prime
// slice: primes[Lo:Hi] are exactly the Digits-digit primes.
type Window struct {
	Digits int
	Lo, Hi int
}

// Count returns the number of primes in the window.
func (w Window) Count() int {
	return w.Hi - w.Lo
}

// Partition splits an ascending prime slice into one window per digit
// length 1..maxDigits using a single forward cursor pass, O(len(primes))
// overall. Digit lengths past the largest prime yield empty, well-formed
// windows. maxDigits must be in [1, digits.MaxDigits]; values at or above
// 10^maxDigits are ignored.
func Partition(primes []uint64, maxDigits int) []Window {
	windows := make([]Window, 0, maxDigits)

	cur := 0
	for k := 1; k <= maxDigits; k++ {
		upper := digits.Pow10(k)
		lo := cur
		for cur < len(primes) && primes[cur] < upper {
			cur++
		}
		windows = append(windows, Window{Digits: k, Lo: lo, Hi: cur})
	}

	return windows
}

// CountTruncatable returns how many candidates remain prime through every
// right truncation, per idx. The candidate itself is queried first; a
// single miss stops that candidate's truncation chain.
func CountTruncatable(candidates []uint64, idx membership.Index) uint64 {
	var count uint64
	for _, v := range candidates {
		if rightTruncatable(v, idx) {
			count++
		}
	}
	return count
}

func rightTruncatable(v uint64, idx membership.Index) bool {
	for ; v > 0; v /= 10 {
		if !idx.Contains(v) {
			return false
		}
	}
	return true
}
