package hashset

import "github.com/primefold/truncprime/membership"

// Stats returns chain-layout statistics. AvgChain averages over non-empty
// buckets, so a well-mixed build reports a value near one.
func (s *Set) Stats() membership.Stats {
	maxChain, nonEmpty := 0, 0
	for _, head := range s.buckets {
		if head < 0 {
			continue
		}
		nonEmpty++
		n := 0
		for i := head; i >= 0; i = s.next[i] {
			n++
		}
		if n > maxChain {
			maxChain = n
		}
	}

	avg := 0.0
	if nonEmpty > 0 {
		avg = float64(len(s.values)) / float64(nonEmpty)
	}

	return membership.Stats{
		Kind:        "HashSet/" + s.opts.Mixer.String(),
		Len:         len(s.values),
		MemoryBytes: uint64(len(s.buckets))*8 + uint64(len(s.values))*16,
		Buckets:     len(s.buckets),
		MaxChain:    maxChain,
		AvgChain:    avg,
	}
}
