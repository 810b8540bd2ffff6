package scan

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/primefold/truncprime/membership"
)

// Result carries the outcome for one digit length.
type Result struct {
	// Digits is the digit length the result describes.
	Digits int

	// Truncatable is the number of right-truncatable primes of that length.
	Truncatable uint64

	// Primes is the number of primes of that length.
	Primes uint64
}

// Options contains configuration options for the Scanner.
type Options struct {
	// Workers caps the number of windows counted concurrently. Values
	// below 2 keep the canonical sequential pass.
	Workers int

	// Logger receives per-window debug events.
	Logger *slog.Logger
}

// DefaultOptions contains the default options for the Scanner.
var DefaultOptions = Options{
	Workers: 1,
}

// Scanner drives a full truncation pass: partition once, count every
// window against the membership index.
type Scanner struct {
	opts Options
}

// New creates a new Scanner.
func New(optFns ...func(o *Options)) *Scanner {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Scanner{opts: opts}
}

// Scan counts the right-truncatable primes per digit length 1..maxDigits.
// Results come back ascending by digit length and are identical whether
// windows run sequentially or fanned out: every result lands in its
// pre-sized slot.
func (s *Scanner) Scan(ctx context.Context, primes []uint64, idx membership.Index, maxDigits int) ([]Result, error) {
	windows := Partition(primes, maxDigits)
	results := make([]Result, len(windows))

	if s.opts.Workers > 1 {
		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.Workers)

		for i, w := range windows {
			i, w := i, w
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = s.scanWindow(primes, w, idx)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
		return results, nil
	}

	// Sequential pass walks the windows from the widest digit length
	// down, the order the report is presented in.
	for i := len(windows) - 1; i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results[i] = s.scanWindow(primes, windows[i], idx)
	}

	return results, nil
}

func (s *Scanner) scanWindow(primes []uint64, w Window, idx membership.Index) Result {
	start := time.Now()
	count := CountTruncatable(primes[w.Lo:w.Hi], idx)

	s.opts.Logger.Debug("window scanned",
		"digits", w.Digits,
		"primes", w.Count(),
		"truncatable", count,
		"elapsed", time.Since(start),
	)

	return Result{
		Digits:      w.Digits,
		Truncatable: count,
		Primes:      uint64(w.Count()),
	}
}
