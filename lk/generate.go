// Package lk — randomized start-tour generation.
//
// Each trial starts from a tour that exploits structure instead of a
// uniform shuffle: from the current vertex, the generator prefers
// candidate neighbors that are also incumbent-best-tour edges
// (intensification), then any candidate neighbor (stay inside the
// candidate graph), then an arbitrary remaining vertex (guarantees a
// Hamiltonian cycle even when the candidate graph is disconnected over
// the remaining set). The pick inside the chosen class is uniform via the
// solver's RNG.
package lk

// GenerateRandomTour produces a start tour biased by the candidate table
// and the incumbent best tour (ignored while no best tour exists).
//
// Complexity: O(n·k) expected; scratch slices are reused across trials.
func (s *Solver) GenerateRandomTour() (*ArrayTour, error) {
	n := s.problem.Dimension()

	// Reset the remaining-vertex pool: remaining holds the vertices not yet
	// placed, pos[v] is v's index in remaining (-1 once placed).
	s.remaining = s.remaining[:0]
	var v int
	for v = 0; v < n; v++ {
		s.remaining = append(s.remaining, v)
		s.pos[v] = v
	}

	var (
		current = pickOne(s.rng, s.remaining) // random start vertex
		idx     int                           // tour position being filled
		w       int                           // candidate under consideration
	)
	s.takeVertex(current)
	s.genOrder[0] = current

	for idx = 1; idx < n; idx++ {
		s.classA = s.classA[:0] // candidate ∧ best-tour neighbors
		s.classB = s.classB[:0] // candidate neighbors
		for _, w = range s.candidates[current] {
			if s.pos[w] < 0 {
				continue // already on the tour
			}
			if s.best != nil && s.best.ContainsEdge(current, w) {
				s.classA = append(s.classA, w)
			}
			s.classB = append(s.classB, w)
		}

		switch {
		case len(s.classA) > 0:
			current = pickOne(s.rng, s.classA)
		case len(s.classB) > 0:
			current = pickOne(s.rng, s.classB)
		default:
			current = pickOne(s.rng, s.remaining)
		}
		s.takeVertex(current)
		s.genOrder[idx] = current
	}

	return NewArrayTour(s.genOrder)
}

// takeVertex removes v from the remaining pool by swap-removal.
//
// Complexity: O(1).
func (s *Solver) takeVertex(v int) {
	var (
		i    = s.pos[v]
		last = s.remaining[len(s.remaining)-1]
	)
	s.remaining[i] = last
	s.pos[last] = i
	s.remaining = s.remaining[:len(s.remaining)-1]
	s.pos[v] = -1
}
