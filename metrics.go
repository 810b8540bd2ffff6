package truncprime

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    generateHistogram prometheus.Histogram
//	    scanHistogram     prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordGenerate(count int, duration time.Duration, err error) {
//	    p.generateHistogram.Observe(duration.Seconds())
//	    // ... record error state, count, etc.
//	}
type MetricsCollector interface {
	// RecordGenerate is called after each prime generation pass.
	// count is the number of primes produced, duration is the total time
	// taken, err is nil if successful.
	RecordGenerate(count int, duration time.Duration, err error)

	// RecordIndexBuild is called after each membership index build.
	// kind names the implementation built, count is the number of values
	// indexed.
	RecordIndexBuild(kind string, count int, duration time.Duration, err error)

	// RecordScan is called after each truncation scan.
	// digits is the requested digit bound.
	RecordScan(digits int, duration time.Duration, err error)

	// RecordCount is called after each full counting run.
	RecordCount(digits int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(int, time.Duration, error)           {}
func (NoopMetricsCollector) RecordIndexBuild(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordScan(int, time.Duration, error)               {}
func (NoopMetricsCollector) RecordCount(int, time.Duration, error)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GenerateRuns       atomic.Int64
	GenerateErrors     atomic.Int64
	GeneratePrimes     atomic.Int64
	GenerateTotalNanos atomic.Int64
	IndexBuilds        atomic.Int64
	IndexBuildErrors   atomic.Int64
	IndexBuildNanos    atomic.Int64
	ScanRuns           atomic.Int64
	ScanErrors         atomic.Int64
	ScanTotalNanos     atomic.Int64
	CountRuns          atomic.Int64
	CountErrors        atomic.Int64
	CountTotalNanos    atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(count int, duration time.Duration, err error) {
	b.GenerateRuns.Add(1)
	b.GeneratePrimes.Add(int64(count))
	b.GenerateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GenerateErrors.Add(1)
	}
}

// RecordIndexBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexBuild(kind string, count int, duration time.Duration, err error) {
	b.IndexBuilds.Add(1)
	b.IndexBuildNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IndexBuildErrors.Add(1)
	}
}

// RecordScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordScan(digits int, duration time.Duration, err error) {
	b.ScanRuns.Add(1)
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ScanErrors.Add(1)
	}
}

// RecordCount implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCount(digits int, duration time.Duration, err error) {
	b.CountRuns.Add(1)
	b.CountTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CountErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GenerateRuns:     b.GenerateRuns.Load(),
		GenerateErrors:   b.GenerateErrors.Load(),
		GeneratePrimes:   b.GeneratePrimes.Load(),
		GenerateAvgNanos: avgNanos(&b.GenerateTotalNanos, &b.GenerateRuns),
		IndexBuilds:      b.IndexBuilds.Load(),
		IndexBuildErrors: b.IndexBuildErrors.Load(),
		ScanRuns:         b.ScanRuns.Load(),
		ScanErrors:       b.ScanErrors.Load(),
		ScanAvgNanos:     avgNanos(&b.ScanTotalNanos, &b.ScanRuns),
		CountRuns:        b.CountRuns.Load(),
		CountErrors:      b.CountErrors.Load(),
		CountAvgNanos:    avgNanos(&b.CountTotalNanos, &b.CountRuns),
	}
}

func avgNanos(total, count *atomic.Int64) int64 {
	n := count.Load()
	if n == 0 {
		return 0
	}
	return total.Load() / n
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GenerateRuns     int64
	GenerateErrors   int64
	GeneratePrimes   int64
	GenerateAvgNanos int64
	IndexBuilds      int64
	IndexBuildErrors int64
	ScanRuns         int64
	ScanErrors       int64
	ScanAvgNanos     int64
	CountRuns        int64
	CountErrors      int64
	CountAvgNanos    int64
}
