package truncprime_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primefold/truncprime"
	"github.com/primefold/truncprime/membership"
)

// truncatableByLength is OEIS A024770 grouped by digit length: all 83
// right-truncatable primes have at most 8 digits.
var truncatableByLength = []uint64{4, 9, 14, 16, 15, 12, 8, 5}

func TestCountSingleDigit(t *testing.T) {
	rep, err := truncprime.Count(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Digits)
	assert.Equal(t, uint64(4), rep.Truncatable)
	assert.Equal(t, uint64(4), rep.Primes)
	require.Len(t, rep.Lengths, 1)
	assert.Equal(t, truncprime.LengthCount{Digits: 1, Truncatable: 4, Primes: 4}, rep.Lengths[0])
}

func TestCountThreeDigits(t *testing.T) {
	rep, err := truncprime.Count(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, uint64(27), rep.Truncatable)
	require.Len(t, rep.Lengths, 3)
	for i, lc := range rep.Lengths {
		assert.Equal(t, i+1, lc.Digits)
		assert.Equal(t, truncatableByLength[i], lc.Truncatable, "digits %d", lc.Digits)
	}
}

func TestCountEightDigits(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10^8 run in short mode")
	}

	rep, err := truncprime.Count(context.Background(), 8)
	require.NoError(t, err)

	assert.Equal(t, uint64(83), rep.Truncatable)
	assert.Equal(t, uint64(5_761_455), rep.Primes)
	require.Len(t, rep.Lengths, 8)
	for i, lc := range rep.Lengths {
		assert.Equal(t, truncatableByLength[i], lc.Truncatable, "digits %d", lc.Digits)
	}
}

func TestCountNineDigitsAddsNothing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 10^9 run in short mode")
	}

	// No right-truncatable prime has more than 8 digits. The scan has to
	// find that out, not assume it.
	rep, err := truncprime.Count(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, uint64(83), rep.Truncatable)
	require.Len(t, rep.Lengths, 9)
	assert.Equal(t, uint64(0), rep.Lengths[8].Truncatable)
	assert.NotZero(t, rep.Lengths[8].Primes)
}

func TestCountInvalidDigits(t *testing.T) {
	for _, d := range []int{-1, 0, 20, 100} {
		_, err := truncprime.Count(context.Background(), d)
		require.Error(t, err, "digits %d", d)

		var oor *truncprime.ErrDigitsOutOfRange
		require.ErrorAs(t, err, &oor, "digits %d", d)
		assert.Equal(t, d, oor.Digits)
	}
}

func TestCountIndexKindsAgree(t *testing.T) {
	kinds := []membership.Kind{
		membership.KindAuto,
		membership.KindHashSet,
		membership.KindBitTable,
		membership.KindRoaring,
	}

	want, err := truncprime.Count(context.Background(), 4)
	require.NoError(t, err)

	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			rep, err := truncprime.Count(context.Background(), 4, truncprime.WithIndexKind(kind))
			require.NoError(t, err)
			assert.Equal(t, want.Lengths, rep.Lengths)
			assert.Equal(t, want.Truncatable, rep.Truncatable)
		})
	}
}

func TestCountParallelMatchesSequential(t *testing.T) {
	seq, err := truncprime.Count(context.Background(), 5)
	require.NoError(t, err)

	par, err := truncprime.Count(context.Background(), 5, truncprime.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestCountMemoryLimit(t *testing.T) {
	// A few kilobytes cannot hold the prime slice for 10^6.
	_, err := truncprime.Count(context.Background(), 6, truncprime.WithMemoryLimit(4<<10))
	require.Error(t, err)
	assert.ErrorIs(t, err, truncprime.ErrResourceLimit)

	// The same limit is plenty for a single-digit run.
	rep, err := truncprime.Count(context.Background(), 1, truncprime.WithMemoryLimit(4<<10))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), rep.Truncatable)
}

func TestCounterReuse(t *testing.T) {
	c, err := truncprime.New()
	require.NoError(t, err)

	for _, d := range []int{1, 2, 3} {
		rep, err := c.Count(context.Background(), d)
		require.NoError(t, err)
		assert.Len(t, rep.Lengths, d)
	}

	// Runs are independent: repeating a bound repeats its report.
	a, err := c.Count(context.Background(), 3)
	require.NoError(t, err)
	b, err := c.Count(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCountMetrics(t *testing.T) {
	mc := &truncprime.BasicMetricsCollector{}

	_, err := truncprime.Count(context.Background(), 3, truncprime.WithMetricsCollector(mc))
	require.NoError(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(1), stats.CountRuns)
	assert.Equal(t, int64(1), stats.GenerateRuns)
	assert.Equal(t, int64(1), stats.IndexBuilds)
	assert.Equal(t, int64(0), stats.CountErrors)

	_, err = truncprime.Count(context.Background(), 0, truncprime.WithMetricsCollector(mc))
	require.Error(t, err)
	assert.Equal(t, int64(1), mc.GetStats().CountErrors)
}
