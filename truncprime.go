package truncprime

import (
	"context"
	"fmt"
	"time"

	"github.com/primefold/truncprime/internal/digits"
	"github.com/primefold/truncprime/internal/resource"
	"github.com/primefold/truncprime/membership"
	"github.com/primefold/truncprime/membership/bittable"
	"github.com/primefold/truncprime/membership/hashset"
	"github.com/primefold/truncprime/membership/roaring"
	"github.com/primefold/truncprime/primes"
	"github.com/primefold/truncprime/scan"
)

// MaxDigits is the largest supported digit bound: 10^19-1 is the widest
// full digit range a uint64 can hold.
const MaxDigits = digits.MaxDigits

// LengthCount carries the outcome for one digit length.
type LengthCount struct {
	// Digits is the digit length the entry describes.
	Digits int

	// Truncatable is the number of right-truncatable primes of that length.
	Truncatable uint64

	// Primes is the number of primes of that length.
	Primes uint64
}

// Report is the outcome of a counting run.
type Report struct {
	// Digits is the requested digit bound.
	Digits int

	// Lengths holds one entry per digit length, ascending: Lengths[0]
	// describes the 1-digit primes.
	Lengths []LengthCount

	// Truncatable is the total number of right-truncatable primes below
	// 10^Digits.
	Truncatable uint64

	// Primes is the total number of primes below 10^Digits.
	Primes uint64
}

// Counter counts right-truncatable primes: primes that remain prime after
// each successive removal of their rightmost decimal digit.
//
// A Counter holds no state between runs; the same instance may serve
// multiple Count calls, sequentially or concurrently.
type Counter struct {
	opts      options
	resources *resource.Controller
	sieve     *primes.Sieve
	scanner   *scan.Scanner
}

// New creates a Counter.
func New(optFns ...Option) (*Counter, error) {
	opts := applyOptions(optFns)

	if opts.indexKind < membership.KindAuto || opts.indexKind > membership.KindRoaring {
		return nil, fmt.Errorf("truncprime: invalid index kind %d", opts.indexKind)
	}

	rc := resource.NewController(resource.Config{
		MemoryLimitBytes: opts.memoryLimit,
		ProgressInterval: opts.progressInterval,
	})

	c := &Counter{
		opts:      opts,
		resources: rc,
	}

	c.sieve = primes.New(func(o *primes.Options) {
		o.SegmentSize = opts.segmentSize
		o.Resources = rc
		o.OnProgress = opts.logger.LogGenerateProgress
	})

	c.scanner = scan.New(func(o *scan.Options) {
		o.Workers = opts.workers
		o.Logger = opts.logger.Logger
	})

	return c, nil
}

// Count runs the full pipeline for the digit bound: generate every prime
// below 10^digitCount, build the membership index, scan each digit window
// and aggregate the report.
//
// digitCount outside [1, MaxDigits] fails with ErrDigitsOutOfRange before
// any work; budget refusals fail with ErrResourceLimit. Failed runs
// release everything they reserved.
func (c *Counter) Count(ctx context.Context, digitCount int) (*Report, error) {
	start := time.Now()

	rep, err := c.count(ctx, digitCount)
	c.opts.metricsCollector.RecordCount(digitCount, time.Since(start), err)
	if err != nil {
		c.opts.logger.LogCount(ctx, digitCount, 0, 0, err)
		return nil, translateError(err)
	}

	c.opts.logger.LogCount(ctx, digitCount, rep.Truncatable, rep.Primes, nil)
	return rep, nil
}

func (c *Counter) count(ctx context.Context, digitCount int) (*Report, error) {
	if !digits.Valid(digitCount) {
		return nil, &ErrDigitsOutOfRange{Digits: digitCount}
	}
	bound := digits.MaxValue(digitCount)

	genStart := time.Now()
	ps, err := c.sieve.Generate(ctx, 2, bound)
	c.opts.metricsCollector.RecordGenerate(len(ps), time.Since(genStart), err)
	c.opts.logger.LogGenerate(ctx, bound, len(ps), err)
	if err != nil {
		return nil, err
	}
	defer c.resources.ReleaseMemory(int64(len(ps)) * 8)

	kind := resolveKind(c.opts.indexKind, bound)

	buildStart := time.Now()
	idx, release, err := c.buildIndex(ps, bound, kind)
	c.opts.metricsCollector.RecordIndexBuild(kind.String(), len(ps), time.Since(buildStart), err)
	c.opts.logger.LogIndexBuild(ctx, kind.String(), len(ps), err)
	if err != nil {
		return nil, err
	}
	defer release()

	scanStart := time.Now()
	results, err := c.scanner.Scan(ctx, ps, idx, digitCount)
	rep := aggregate(digitCount, results)
	c.opts.metricsCollector.RecordScan(digitCount, time.Since(scanStart), err)
	c.opts.logger.LogScan(ctx, digitCount, rep.Truncatable, err)
	if err != nil {
		return nil, err
	}

	return rep, nil
}

// buildIndex reserves the implementation's predicted footprint against the
// memory budget, builds, and returns a release paired with the
// reservation. The dense table and hash set have exact predictions; the
// compressed bitmap is charged by its measured size after the build.
func (c *Counter) buildIndex(ps []uint64, bound uint64, kind membership.Kind) (membership.Index, func(), error) {
	acquire := func(bytes int64) (func(), error) {
		if err := c.resources.AcquireMemory(bytes); err != nil {
			return nil, err
		}
		return func() { c.resources.ReleaseMemory(bytes) }, nil
	}

	switch kind {
	case membership.KindBitTable:
		release, err := acquire(bittable.Footprint(bound))
		if err != nil {
			return nil, nil, err
		}
		idx, err := bittable.Build(ps, bound)
		if err != nil {
			release()
			return nil, nil, err
		}
		return idx, release, nil

	case membership.KindRoaring:
		idx, err := roaring.Build(ps)
		if err != nil {
			return nil, nil, err
		}
		release, err := acquire(int64(idx.Stats().MemoryBytes))
		if err != nil {
			return nil, nil, err
		}
		return idx, release, nil

	default:
		release, err := acquire(hashset.Footprint(len(ps)))
		if err != nil {
			return nil, nil, err
		}
		idx, err := hashset.Build(ps, func(o *hashset.Options) {
			o.Mixer = c.opts.mixer
		})
		if err != nil {
			release()
			return nil, nil, err
		}
		return idx, release, nil
	}
}

// resolveKind pins KindAuto to a concrete implementation by the value
// bound the index must answer for.
func resolveKind(kind membership.Kind, bound uint64) membership.Kind {
	if kind != membership.KindAuto {
		return kind
	}
	if bound < membership.DenseLimit {
		return membership.KindBitTable
	}
	return membership.KindHashSet
}

func aggregate(digitCount int, results []scan.Result) *Report {
	rep := &Report{
		Digits:  digitCount,
		Lengths: make([]LengthCount, 0, len(results)),
	}
	for _, r := range results {
		rep.Lengths = append(rep.Lengths, LengthCount{
			Digits:      r.Digits,
			Truncatable: r.Truncatable,
			Primes:      r.Primes,
		})
		rep.Truncatable += r.Truncatable
		rep.Primes += r.Primes
	}
	return rep
}

// Count counts right-truncatable primes below 10^digitCount with a
// one-shot Counter.
func Count(ctx context.Context, digitCount int, optFns ...Option) (*Report, error) {
	c, err := New(optFns...)
	if err != nil {
		return nil, err
	}
	return c.Count(ctx, digitCount)
}
