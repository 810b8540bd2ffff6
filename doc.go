// Package truncprime counts right-truncatable primes: primes that stay
// prime after each successive removal of their rightmost decimal digit,
// down to a single digit (7393 -> 739 -> 73 -> 7).
//
// Given a digit bound D in [1, 19], a run generates every prime below
// 10^D with a segmented sieve, builds a membership index over them, and
// scans each digit-length window, classifying a candidate by querying the
// index for every truncation.
//
// # Quick Start
//
// One-shot:
//
//	ctx := context.Background()
//	rep, _ := truncprime.Count(ctx, 8)
//	fmt.Println(rep.Truncatable) // 83
//
// Reusable counter with options:
//
//	c, _ := truncprime.New(
//	    truncprime.WithIndexKind(membership.KindBitTable),
//	    truncprime.WithWorkers(4),
//	)
//	rep, _ := c.Count(ctx, 8)
//	for _, lc := range rep.Lengths {
//	    fmt.Println(lc.Digits, lc.Truncatable, lc.Primes)
//	}
//
// # Membership Index
//
// Three interchangeable index implementations answer the truncation
// queries, selected with WithIndexKind:
//
//   - membership.KindBitTable — dense bit table, one bit per value up to
//     the bound. The fastest choice for every bound KindAuto covers.
//   - membership.KindHashSet — chained hash set with an avalanche-mixed
//     integer hash. Memory follows the prime count, not the range.
//   - membership.KindRoaring — compressed bitmap; explicit opt-in.
//
// The default, membership.KindAuto, picks the bit table for bounds below
// membership.DenseLimit and the hash set above it.
//
// # Resource Budget
//
// WithMemoryLimit caps the managed memory of a run (the prime slice plus
// the index). A run exceeding the cap fails with ErrResourceLimit and
// releases everything it reserved; nothing is retried.
package truncprime
