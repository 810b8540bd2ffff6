package primes

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/bits-and-blooms/bitset"

	"github.com/primefold/truncprime/internal/resource"
)

// DefaultSegmentSize is the numeric width of one sieve window.
const DefaultSegmentSize = 1 << 20

const max64 = ^uint64(0)

// Options contains configuration options for the Sieve.
type Options struct {
	// SegmentSize is the numeric width of the window sieved per pass.
	SegmentSize uint64

	// Resources accounts the memory retained by generated slices and
	// paces progress callbacks. Nil disables both.
	Resources *resource.Controller

	// OnProgress, if set, is called after sieved segments with the upper
	// bound processed so far and the overall upper bound. Calls are paced
	// through Resources.AllowProgress.
	OnProgress func(done, total uint64)
}

// DefaultOptions contains the default options for the Sieve.
var DefaultOptions = Options{
	SegmentSize: DefaultSegmentSize,
}

// Sieve generates primes with a segmented sieve of Eratosthenes.
type Sieve struct {
	opts Options
}

// New creates a new Sieve.
func New(optFns ...func(o *Options)) *Sieve {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.SegmentSize == 0 {
		opts.SegmentSize = DefaultSegmentSize
	}

	return &Sieve{opts: opts}
}

// Generate returns every prime p with min <= p <= max, strictly ascending,
// no duplicates. A range below 2 or with min > max yields an empty result
// and no error.
//
// On failure (context cancellation, memory budget refusal) no partial slice
// is returned and every reservation made for it is released. On success the
// returned slice's element bytes remain reserved against Resources; the
// caller releases them when the slice is dropped.
func (s *Sieve) Generate(ctx context.Context, min, max uint64) ([]uint64, error) {
	if max < 2 || min > max {
		return nil, nil
	}
	if min < 2 {
		min = 2
	}

	rc := s.opts.Resources

	base := smallOddPrimes(isqrt(max))
	baseBytes := int64(len(base)) * 8
	if err := rc.AcquireMemory(baseBytes); err != nil {
		return nil, fmt.Errorf("primes: reserve base primes: %w", err)
	}
	defer rc.ReleaseMemory(baseBytes)

	var out []uint64
	if min <= 2 {
		out = append(out, 2)
	}

	// charged tracks the output bytes reserved so far; reconciled after
	// every segment so a budget refusal surfaces before the next window.
	var charged int64
	fail := func(err error) ([]uint64, error) {
		rc.ReleaseMemory(charged)
		return nil, err
	}

	lo := min
	if lo < 3 {
		lo = 3
	}
	if lo%2 == 0 {
		lo++
	}

	segBits := uint((s.opts.SegmentSize + 1) / 2)
	if segBits == 0 {
		segBits = 1
	}
	seg := bitset.New(segBits)

	for lo <= max {
		select {
		case <-ctx.Done():
			return fail(ctx.Err())
		default:
		}

		hi := lo + s.opts.SegmentSize - 1
		if hi < lo || hi > max {
			hi = max
		}

		seg.ClearAll()
		markComposites(seg, base, lo, hi)

		n := uint((hi-lo)/2 + 1)
		for i, ok := seg.NextClear(0); ok && i < n; i, ok = seg.NextClear(i + 1) {
			out = append(out, lo+2*uint64(i))
		}

		delta := int64(len(out))*8 - charged
		if err := rc.AcquireMemory(delta); err != nil {
			return fail(fmt.Errorf("primes: reserve output: %w", err))
		}
		charged += delta

		if s.opts.OnProgress != nil && rc.AllowProgress() {
			s.opts.OnProgress(hi, max)
		}

		if hi >= max {
			break
		}
		lo = hi + 1
		if lo%2 == 0 {
			lo++
		}
	}

	return out, nil
}

// Generate returns every prime in [min, max] using a Sieve with default
// options.
func Generate(ctx context.Context, min, max uint64) ([]uint64, error) {
	return New().Generate(ctx, min, max)
}

// markComposites sets the bit for every composite odd value in [lo, hi].
// lo must be odd; bit i stands for the value lo + 2i.
func markComposites(seg *bitset.BitSet, base []uint64, lo, hi uint64) {
	for _, p := range base {
		if p*p > hi {
			break
		}

		// First odd multiple of p in the window, never below p*p so the
		// prime itself survives. All additions are wrap-checked: near the
		// top of the uint64 range the next multiple may not exist.
		start := p * p
		if start < lo {
			rem := lo % p
			start = lo
			if rem != 0 {
				add := p - rem
				if lo > max64-add {
					continue
				}
				start = lo + add
			}
		}
		if start%2 == 0 {
			if start > max64-p {
				continue
			}
			start += p
		}

		for m := start; m <= hi; {
			seg.Set(uint((m - lo) / 2))
			next := m + 2*p
			if next < m {
				break
			}
			m = next
		}
	}
}

// smallOddPrimes returns the odd primes up to n with a plain in-memory
// sieve. Bit i stands for the odd value 2i+3.
func smallOddPrimes(n uint64) []uint64 {
	if n < 3 {
		return nil
	}

	count := (n - 1) / 2
	b := bitset.New(uint(count))

	for i := uint64(0); ; i++ {
		p := 2*i + 3
		if p*p > n {
			break
		}
		if b.Test(uint(i)) {
			continue
		}
		for m := p * p; m <= n; m += 2 * p {
			b.Set(uint((m - 3) / 2))
		}
	}

	out := make([]uint64, 0, count/2)
	for i := uint64(0); i < count; i++ {
		if !b.Test(uint(i)) {
			out = append(out, 2*i+3)
		}
	}

	return out
}

// isqrt returns floor(sqrt(n)) using integer Newton iteration, exact for
// the whole uint64 range.
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}

	// Start at a power of two >= sqrt(n); the iteration is monotone
	// decreasing from above.
	g := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		next := (g + n/g) / 2
		if next >= g {
			return g
		}
		g = next
	}
}
