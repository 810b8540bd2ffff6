// Package digits provides decimal digit arithmetic on uint64 values.
//
// All helpers are table-driven integer operations. Floating-point math is
// never used, so results are exact across the full uint64 range.
package digits

// MaxDigits is the largest digit count whose full range fits in a uint64:
// 10^19-1 is representable, 10^20-1 is not.
const MaxDigits = 19

// pow10 holds 10^i for i in [0, MaxDigits].
// pow10[19] = 10^19 still fits: math.MaxUint64 > 1.8e19.
var pow10 = [MaxDigits + 1]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

// Pow10 returns 10^n. It panics if n is negative or greater than MaxDigits;
// callers validate digit counts before doing arithmetic with them.
func Pow10(n int) uint64 {
	return pow10[n]
}

// MaxValue returns the largest n-digit value, 10^n - 1.
// MaxValue(MaxDigits) returns 10^19-1, the largest fully representable
// digit range.
func MaxValue(n int) uint64 {
	return pow10[n] - 1
}

// Lower returns the smallest n-digit value, 10^(n-1). Lower(1) is 1.
func Lower(n int) uint64 {
	return pow10[n-1]
}

// Count returns the number of decimal digits in v. Count(0) is 1.
func Count(v uint64) int {
	for n := 1; n < len(pow10); n++ {
		if v < pow10[n] {
			return n
		}
	}
	return MaxDigits + 1
}

// Valid reports whether n is a digit count this package can do exact
// uint64 arithmetic for.
func Valid(n int) bool {
	return n >= 1 && n <= MaxDigits
}
