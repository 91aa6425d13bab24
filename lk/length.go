// Package lk — length and gain arithmetic over the Problem oracle.
//
// Design:
//   - Pure functions, no allocations, strict about nothing: distance
//     validity (symmetry, nonnegativity) is the oracle's contract.
//   - Gains are int64; a walk touches at most ~2n edges, so sums of
//     realistic distances never overflow.
package lk

// Length returns the total length of the cycle under the problem's
// distance function, including the closing edge.
//
// Complexity: O(n).
func Length(p Problem, t Tour) int64 {
	seq := t.Sequence()
	if len(seq) == 0 {
		return 0
	}

	var (
		sum int64 // running cycle length
		i   int   // position along the sequence
	)
	for i = 0; i+1 < len(seq); i++ {
		sum += p.Dist(seq[i], seq[i+1])
	}
	sum += p.Dist(seq[len(seq)-1], seq[0]) // closing edge

	return sum
}

// ExchangeGain scores an alternating walk: the sum of removed-edge lengths
// (even-indexed edges) minus the sum of added-edge lengths (odd-indexed
// edges). Defined for both open walks (an upper bound on achievable gain)
// and closed walks (the exact gain of the exchange).
//
// Complexity: O(k) for a walk of k+1 vertices.
func ExchangeGain(p Problem, w AlternatingWalk) int64 {
	var (
		gain int64 // removed minus added so far
		i    int   // edge index = position of the edge's first vertex
	)
	for i = 0; i+1 < len(w); i++ {
		if i%2 == 0 {
			gain += p.Dist(w[i], w[i+1])
		} else {
			gain -= p.Dist(w[i], w[i+1])
		}
	}

	return gain
}
