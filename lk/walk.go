// Package lk — alternating walks.
package lk

// AlternatingWalk is an ordered vertex sequence (x0, x1, …, xk) modelling
// the edges of an exchange: {x0,x1} is removed from the tour, {x1,x2} is
// added, {x2,x3} removed, and so on. A closed walk repeats x0 at the end.
//
// The type carries no invariants of its own; the search maintains them
// (no edge appears twice, closed walks have an odd k).
type AlternatingWalk []int

// Close returns a copy of the walk with the first vertex appended.
//
// Complexity: O(k) time and space.
func (w AlternatingWalk) Close() AlternatingWalk {
	out := make(AlternatingWalk, len(w)+1)
	copy(out, w)
	out[len(w)] = w[0]

	return out
}

// AppendAndClose returns a copy of the walk with v and then the first
// vertex appended, i.e. w.push(v).Close() without the intermediate copy.
//
// Complexity: O(k) time and space.
func (w AlternatingWalk) AppendAndClose(v int) AlternatingWalk {
	out := make(AlternatingWalk, len(w)+2)
	copy(out, w)
	out[len(w)] = v
	out[len(w)+1] = w[0]

	return out
}

// ContainsEdge reports whether some consecutive pair of the walk equals
// {u, v} as an unordered pair.
//
// Complexity: O(k) time, O(1) space.
func (w AlternatingWalk) ContainsEdge(u, v int) bool {
	var i int
	for i = 0; i+1 < len(w); i++ {
		if (w[i] == u && w[i+1] == v) || (w[i] == v && w[i+1] == u) {
			return true
		}
	}

	return false
}
