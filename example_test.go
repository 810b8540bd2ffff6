package truncprime_test

import (
	"context"
	"fmt"
	"log"

	"github.com/primefold/truncprime"
	"github.com/primefold/truncprime/membership"
)

// Example_count demonstrates the one-shot convenience function.
func Example_count() {
	ctx := context.Background()

	rep, err := truncprime.Count(ctx, 3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Right-truncatable primes up to 3 digits: %d\n", rep.Truncatable)
	// Output: Right-truncatable primes up to 3 digits: 27
}

// Example_perLength demonstrates reading the per-digit-length breakdown.
func Example_perLength() {
	ctx := context.Background()

	rep, err := truncprime.Count(ctx, 3)
	if err != nil {
		log.Fatal(err)
	}

	for _, lc := range rep.Lengths {
		fmt.Printf("%d-digit: %d of %d primes\n", lc.Digits, lc.Truncatable, lc.Primes)
	}
	// Output:
	// 1-digit: 4 of 4 primes
	// 2-digit: 9 of 21 primes
	// 3-digit: 14 of 143 primes
}

// Example_indexKind demonstrates selecting a membership index implementation.
func Example_indexKind() {
	ctx := context.Background()

	// The chained hash set keeps memory proportional to the prime count
	// instead of the value range.
	rep, err := truncprime.Count(ctx, 4,
		truncprime.WithIndexKind(membership.KindHashSet),
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Total: %d\n", rep.Truncatable)
	// Output: Total: 43
}

// Example_counter demonstrates a reusable Counter with options.
func Example_counter() {
	ctx := context.Background()

	c, err := truncprime.New(
		truncprime.WithWorkers(4),
		truncprime.WithMemoryLimit(512<<20),
	)
	if err != nil {
		log.Fatal(err)
	}

	for _, d := range []int{1, 2, 3} {
		rep, err := c.Count(ctx, d)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("D=%d total=%d\n", d, rep.Truncatable)
	}
	// Output:
	// D=1 total=4
	// D=2 total=13
	// D=3 total=27
}
