// Command truncprime counts right-truncatable primes below 10^digits and
// prints a per-digit-length breakdown.
//
// Usage:
//
//	truncprime [flags] <digits>
//
// Flag defaults fall back to TRUNCPRIME_* environment variables before
// the hard default.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/primefold/truncprime"
	"github.com/primefold/truncprime/membership"
)

var (
	flagIndex    = flag.String("index", envOr("TRUNCPRIME_INDEX", "auto"), "membership index implementation: auto|hash|bits|roaring")
	flagWorkers  = flag.Int("workers", envOrInt("TRUNCPRIME_WORKERS", 1), "number of digit windows scanned concurrently")
	flagMemLimit = flag.Int64("mem-limit", envOrInt64("TRUNCPRIME_MEM_LIMIT", 0), "memory budget in bytes for the prime slice and index (0 = unlimited)")
	flagCommas   = flag.Bool("commas", false, "group digits in printed counts")
	flagLog      = flag.String("log", envOr("TRUNCPRIME_LOG", "off"), "log format: text|json|off")
	flagVerbose  = flag.Bool("v", false, "enable debug logging")
	flagTime     = flag.Bool("time", true, "print elapsed time after the report")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	digitCount, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "truncprime: invalid digit bound %q\n", flag.Arg(0))
		os.Exit(1)
	}

	if err := run(context.Background(), digitCount, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "truncprime: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, digitCount int, w io.Writer) error {
	kind, err := membership.ParseKind(*flagIndex)
	if err != nil {
		return err
	}

	logger, err := newLogger(*flagLog, *flagVerbose)
	if err != nil {
		return err
	}

	start := time.Now()
	rep, err := truncprime.Count(ctx, digitCount,
		truncprime.WithIndexKind(kind),
		truncprime.WithWorkers(*flagWorkers),
		truncprime.WithMemoryLimit(*flagMemLimit),
		truncprime.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printReport(w, rep, *flagCommas)
	if *flagTime {
		printElapsed(w, elapsed)
	}

	return nil
}

// printReport writes the per-length lines widest digit length first, then
// the total. Each n is the prime count of that line's scope.
func printReport(w io.Writer, rep *truncprime.Report, commas bool) {
	printf := func(w io.Writer, format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	}
	if commas {
		p := message.NewPrinter(language.English)
		printf = func(w io.Writer, format string, args ...any) {
			p.Fprintf(w, format, args...)
		}
	}

	for i := len(rep.Lengths) - 1; i >= 0; i-- {
		lc := rep.Lengths[i]
		printf(w, "Number of %d-digit right-truncatable primes: %d (n = %d)\n",
			lc.Digits, lc.Truncatable, lc.Primes)
	}

	printf(w, "\nTotal number of right-truncatable primes up to %d digits: %d (n = %d)\n",
		rep.Digits, rep.Truncatable, rep.Primes)
}

func printElapsed(w io.Writer, elapsed time.Duration) {
	ns := elapsed.Nanoseconds()
	fmt.Fprintf(w, "\nExecution time: %.3f milliseconds\n", float64(ns)/1e6)
	fmt.Fprintf(w, "Execution time: %.3f microseconds\n", float64(ns)/1e3)
	fmt.Fprintf(w, "Execution time: %d nanoseconds\n", ns)
}

func newLogger(format string, verbose bool) (*truncprime.Logger, error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	switch format {
	case "off":
		if verbose {
			// -v alone still gets debug output.
			return truncprime.NewTextLogger(slog.LevelDebug), nil
		}
		return truncprime.NoopLogger(), nil
	case "text":
		return truncprime.NewTextLogger(level), nil
	case "json":
		return truncprime.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text, json or off)", format)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: truncprime [flags] <digits>\n\n")
	fmt.Fprintf(os.Stderr, "Counts right-truncatable primes below 10^digits (digits in [1, %d]).\n\nFlags:\n", truncprime.MaxDigits)
	flag.PrintDefaults()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}
