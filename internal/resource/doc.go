// Package resource implements the resource Controller for run-level limits.
//
// The Controller governs two concerns of a counting run:
//
//   - Memory: track and cap the managed allocations of a run, i.e. the
//     generated prime slice and the membership-index backing array
//     (non-blocking, fail-fast)
//   - Progress: throttle progress log events to a configured cadence so
//     long generation passes stay observable without flooding the log
//
// # Memory Management
//
// Memory tracking uses a weighted semaphore for hard limits and an atomic
// counter for usage tracking. AcquireMemory is non-blocking and returns
// immediately with ErrMemoryLimitExceeded if the limit would be exceeded:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 512 << 20, // 512MB limit
//	})
//
//	if err := rc.AcquireMemory(tableBytes); err != nil {
//	    // ErrMemoryLimitExceeded - fatal for the run, nothing is retried
//	}
//	defer rc.ReleaseMemory(tableBytes)
//
// A failed acquire reserves nothing; a successful one must be paired with a
// release when the run ends, so budget accounting stays scoped to the run.
//
// # Progress Throttling
//
// AllowProgress gates progress events through a token bucket:
//
//	rc := resource.NewController(resource.Config{
//	    ProgressInterval: time.Second,
//	})
//
//	if rc.AllowProgress() {
//	    logger.Debug("segment done", "hi", hi)
//	}
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use.
//
// # Nil Safety
//
// All methods handle nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
