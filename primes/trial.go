package primes

// IsPrime reports whether v is prime, by trial division over 6k+-1
// candidates. Exact for every uint64, but O(sqrt v) divisions: suited to
// single values and cross-checks, not bulk generation.
func IsPrime(v uint64) bool {
	if v < 2 {
		return false
	}
	if v < 4 {
		return true
	}
	if v%2 == 0 || v%3 == 0 {
		return false
	}

	for f := uint64(5); f <= v/f; f += 6 {
		if v%f == 0 || v%(f+2) == 0 {
			return false
		}
	}

	return true
}
