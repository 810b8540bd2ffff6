// Package primes generates prime numbers over uint64 ranges.
//
// The workhorse is a segmented sieve of Eratosthenes: base primes up to
// the square root of the range are sieved once, then fixed-width windows
// are marked and collected, so peak scratch memory is bounded by the
// segment size rather than the range. Only odd candidates are tracked.
//
// IsPrime complements the sieve with exact trial division for single
// values; it is the cross-check used by the package tests and suits
// callers that need a handful of answers rather than a range.
package primes
