// Package lk — the Lin–Kernighan alternating-walk search.
//
// ImproveTour drives a tour to a local optimum by repeated improvement
// rounds. Within a round the search grows an alternating walk position by
// position; at position i the stack X_i enumerates the legal extensions,
// drained back-to-front. Control rules:
//
//   - Empty X_i with a recorded positive gain: commit the best closed walk
//     found and start a new round.
//   - Empty X_0 with no gain: the tour is locally optimal; return it.
//   - Empty X_i elsewhere: backtrack to min(i−1, backtrackingDepth),
//     truncating both the stacks and the walk.
//
// Extension rules by parity of i (xᵢ = vertex just appended):
//
//   - Odd i (next edge is added): candidates of xᵢ that avoid x₀, current
//     tour edges, and walk edges, and whose remaining potential
//     gain(walk) − dist(xᵢ,x) still beats the best recorded gain
//     (positive-gain pruning — essential, do not relax).
//   - Even i (next edge is removed): the two tour neighbors of xᵢ. At
//     i == 0 with an incumbent best tour, neighbors that are best-tour
//     edges of x₀ are excluded (the first broken edge must diversify).
//     Up to infeasibilityDepth no feasibility is required; beyond it a
//     neighbor survives only if closing the walk through it would yield a
//     valid tour.
//
// Closed walks are scored at odd i ≥ 3; a walk is recorded only when its
// gain strictly beats the incumbent and the exchange passes the tour
// feasibility test, so ties keep the first walk found.
//
// The stacks and the walk live in the solver and are reused across rounds
// and trials; backtracking truncates, it never frees.
package lk

// lkSearch is the reusable per-solver search state.
type lkSearch struct {
	choices [][]int         // X_0..X_{live-1}; truncated levels keep capacity
	live    int             // number of live levels
	walk    AlternatingWalk // the walk built so far
}

// pushLevel activates an empty level on top of the stack and returns its
// index, reusing backing storage from earlier rounds.
func (st *lkSearch) pushLevel() int {
	if st.live == len(st.choices) {
		st.choices = append(st.choices, nil)
	}
	st.choices[st.live] = st.choices[st.live][:0]
	st.live++

	return st.live - 1
}

// ImproveTour improves the tour in place until no gainful exchange remains
// and returns it. The only error source is a Tour implementation breaking
// under a feasibility-checked exchange.
func (s *Solver) ImproveTour(cur *ArrayTour) (*ArrayTour, error) {
	var (
		n  = s.problem.Dimension()
		st = &s.search
		p1 = s.opts.BacktrackingDepth
		p2 = s.opts.InfeasibilityDepth
	)

	for { // one iteration per improvement round
		st.live = 0
		st.pushLevel()
		x0 := st.choices[0]
		var v int
		for v = 0; v < n; v++ {
			x0 = append(x0, v)
		}
		st.choices[0] = x0
		st.walk = st.walk[:0]

		var (
			bestWalk    AlternatingWalk // best closed walk of this round
			highestGain int64           // its gain; 0 = nothing recorded
			i           int             // current walk position
		)

		for {
			if len(st.choices[i]) == 0 {
				if highestGain > 0 {
					if err := cur.Exchange(bestWalk); err != nil {
						return nil, err
					}

					break // improvement committed; next round
				}
				if i == 0 {
					return cur, nil // local optimum
				}
				// Backtrack, bounded by p1.
				if i-1 < p1 {
					i--
				} else {
					i = p1
				}
				st.live = i + 1
				st.walk = st.walk[:i]

				continue
			}

			// Pop one extension off X_i and append it to the walk.
			last := len(st.choices[i]) - 1
			x := st.choices[i][last]
			st.choices[i] = st.choices[i][:last]
			st.walk = append(st.walk, x)

			// Score the closure of walks that can be valid exchanges.
			if i%2 == 1 && i >= 3 {
				closed := st.walk.Close()
				if gain := ExchangeGain(s.problem, closed); gain > highestGain &&
					cur.IsTourAfterExchange(closed) {
					bestWalk = closed
					highestGain = gain
				}
			}

			// Build X_{i+1}.
			j := st.pushLevel()
			next := st.choices[j]
			if i%2 == 1 {
				// Next edge is added: filter the candidate row of x.
				var (
					gainSoFar = ExchangeGain(s.problem, st.walk)
					pred      = cur.Predecessor(x)
					succ      = cur.Successor(x)
				)
				for _, c := range s.candidates[x] {
					if c == st.walk[0] || c == pred || c == succ {
						continue // x0 is reserved for closing; tour edges cannot be added
					}
					if st.walk.ContainsEdge(x, c) {
						continue
					}
					if gainSoFar-s.problem.Dist(x, c) <= highestGain {
						continue // cannot beat the recorded gain anymore
					}
					next = append(next, c)
				}
			} else {
				// Next edge is removed: consider the two tour neighbors of x.
				n1, n2 := cur.Neighbors(x)
				switch {
				case i == 0 && s.best != nil:
					// First broken edge must not lie on the incumbent best tour.
					bp := s.best.Predecessor(st.walk[0])
					bs := s.best.Successor(st.walk[0])
					for _, nb := range [2]int{n1, n2} {
						if nb != st.walk[0] && nb != bp && nb != bs {
							next = append(next, nb)
						}
					}
				case i <= p2:
					// Shallow positions: no feasibility requirement yet.
					for _, nb := range [2]int{n1, n2} {
						if nb != st.walk[0] && !st.walk.ContainsEdge(x, nb) {
							next = append(next, nb)
						}
					}
				default:
					// Deep positions: only keep neighbors whose closure is a tour.
					// nb == walk[1] would make the closing edge a walk edge.
					for _, nb := range [2]int{n1, n2} {
						if nb == st.walk[0] || nb == st.walk[1] {
							continue
						}
						if st.walk.ContainsEdge(x, nb) {
							continue
						}
						if !cur.IsTourAfterExchange(st.walk.AppendAndClose(nb)) {
							continue
						}
						next = append(next, nb)
					}
				}
			}
			st.choices[j] = next

			i++
		}
	}
}
