package scan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primefold/truncprime/internal/digits"
	"github.com/primefold/truncprime/membership/bittable"
	"github.com/primefold/truncprime/membership/hashset"
	"github.com/primefold/truncprime/primes"
)

func TestScanPerDigitCounts(t *testing.T) {
	const maxDigits = 6

	in, err := primes.Generate(context.Background(), 0, digits.MaxValue(maxDigits))
	require.NoError(t, err)

	idx, err := bittable.Build(in, digits.MaxValue(maxDigits))
	require.NoError(t, err)

	results, err := New().Scan(context.Background(), in, idx, maxDigits)
	require.NoError(t, err)
	require.Len(t, results, maxDigits)

	wantTruncatable := []uint64{4, 9, 14, 16, 15, 12}
	wantPrimes := []uint64{4, 21, 143, 1_061, 8_363, 68_906}
	for i, r := range results {
		assert.Equal(t, i+1, r.Digits)
		assert.Equal(t, wantTruncatable[i], r.Truncatable, "digits %d", r.Digits)
		assert.Equal(t, wantPrimes[i], r.Primes, "digits %d", r.Digits)
	}
}

func TestScanMatchesBruteForce(t *testing.T) {
	// Oracle with no index involved: trial-divide every truncation.
	const maxDigits = 5

	in, err := primes.Generate(context.Background(), 0, digits.MaxValue(maxDigits))
	require.NoError(t, err)

	idx, err := bittable.Build(in, digits.MaxValue(maxDigits))
	require.NoError(t, err)

	results, err := New().Scan(context.Background(), in, idx, maxDigits)
	require.NoError(t, err)

	for _, r := range results {
		assert.Equal(t, bruteForceCount(r.Digits), r.Truncatable, "digits %d", r.Digits)
	}
}

func bruteForceCount(k int) uint64 {
	lo := digits.Lower(k)
	if k == 1 {
		lo = 2
	}

	var n uint64
	for v := lo; v <= digits.MaxValue(k); v++ {
		ok := true
		for t := v; t > 0; t /= 10 {
			if !primes.IsPrime(t) {
				ok = false
				break
			}
		}
		if ok {
			n++
		}
	}
	return n
}

func TestScanParallelMatchesSequential(t *testing.T) {
	const maxDigits = 5

	in, err := primes.Generate(context.Background(), 0, digits.MaxValue(maxDigits))
	require.NoError(t, err)

	idx, err := hashset.Build(in)
	require.NoError(t, err)

	seq, err := New().Scan(context.Background(), in, idx, maxDigits)
	require.NoError(t, err)

	par, err := New(func(o *Options) {
		o.Workers = 4
	}).Scan(context.Background(), in, idx, maxDigits)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestScanEmpty(t *testing.T) {
	idx, err := bittable.Build(nil, 9)
	require.NoError(t, err)

	results, err := New().Scan(context.Background(), nil, idx, 3)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Zero(t, r.Truncatable)
		assert.Zero(t, r.Primes)
	}
}

func TestScanCancelled(t *testing.T) {
	in, err := primes.Generate(context.Background(), 0, 9_999)
	require.NoError(t, err)

	idx, err := bittable.Build(in, 9_999)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		s := New(func(o *Options) {
			o.Workers = workers
		})
		_, err := s.Scan(ctx, in, idx, 4)
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
	}
}

func BenchmarkScan(b *testing.B) {
	const maxDigits = 6

	in, err := primes.Generate(context.Background(), 0, digits.MaxValue(maxDigits))
	if err != nil {
		b.Fatal(err)
	}
	idx, err := bittable.Build(in, digits.MaxValue(maxDigits))
	if err != nil {
		b.Fatal(err)
	}
	s := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Scan(context.Background(), in, idx, maxDigits); err != nil {
			b.Fatal(err)
		}
	}
}
