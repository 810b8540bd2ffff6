package truncprime

import (
	"log/slog"
	"time"

	"github.com/primefold/truncprime/membership"
	"github.com/primefold/truncprime/membership/hashset"
)

type options struct {
	indexKind        membership.Kind
	mixer            hashset.Mixer
	workers          int
	segmentSize      uint64
	memoryLimit      int64
	progressInterval time.Duration
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Counter construction.
type Option func(*options)

// WithIndexKind selects the membership index implementation. The default,
// membership.KindAuto, picks the dense bit table for narrow digit bounds
// and the chained hash set for wide ones.
func WithIndexKind(kind membership.Kind) Option {
	return func(o *options) {
		o.indexKind = kind
	}
}

// WithHashMixer selects the avalanche function of the chained hash set.
// Only consulted when that implementation is built.
func WithHashMixer(mixer hashset.Mixer) Option {
	return func(o *options) {
		o.mixer = mixer
	}
}

// WithWorkers caps the number of digit windows scanned concurrently.
// Values below 2 keep the canonical sequential pass (the default); the
// result is identical either way.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithSegmentSize sets the numeric width of one sieve window. Zero keeps
// the generator default.
func WithSegmentSize(size uint64) Option {
	return func(o *options) {
		o.segmentSize = size
	}
}

// WithMemoryLimit caps the managed memory of a run: the generated prime
// slice plus the index backing array. Exceeding the cap fails the run
// with ErrResourceLimit; nothing is retried. Zero disables the cap.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithProgressInterval sets the minimum spacing between generation
// progress log events. Zero leaves progress unthrottled.
func WithProgressInterval(interval time.Duration) Option {
	return func(o *options) {
		o.progressInterval = interval
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &truncprime.BasicMetricsCollector{}
//	c, _ := truncprime.New(truncprime.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg: %dns\n", stats.CountRuns, stats.CountAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := truncprime.NewJSONLogger(slog.LevelInfo)
//	c, _ := truncprime.New(truncprime.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		indexKind:        membership.KindAuto,
		mixer:            hashset.MixerWang,
		workers:          1,
		progressInterval: time.Second,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	return o
}
