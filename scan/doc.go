// Package scan partitions an ascending prime sequence into digit-length
// windows and counts the right-truncatable primes in each.
//
// Partitioning walks the sequence once with a forward cursor; counting
// asks the membership index about every truncation of every candidate and
// nothing else, so the scan itself performs no divisibility work. The
// Scanner runs windows sequentially by default and fans them out over an
// errgroup when configured with workers.
package scan
