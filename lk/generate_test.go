package lk_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lkh/lk"
)

func TestGenerateRandomTourIsHamiltonian(t *testing.T) {
	p := ringProblem(12)
	s := mustSolver(t, p, lk.NearestNeighbors, 3, seedDet)

	// Several tours in a row must all be valid cycles over all vertices.
	var trial int
	for trial = 0; trial < 5; trial++ {
		tour, err := s.GenerateRandomTour()
		if err != nil {
			t.Fatalf("GenerateRandomTour: %v", err)
		}

		seq := tour.Sequence()
		if len(seq) != 12 {
			t.Fatalf("tour visits %d vertices", len(seq))
		}
		seen := make([]bool, 12)
		for _, v := range seq {
			if seen[v] {
				t.Fatalf("vertex %d visited twice: %v", v, seq)
			}
			seen[v] = true
		}
	}
}

func TestGenerateRandomTourDeterministicPerSeed(t *testing.T) {
	p := ringProblem(10)

	a := mustSolver(t, p, lk.NearestNeighbors, 2, seedDet)
	b := mustSolver(t, p, lk.NearestNeighbors, 2, seedDet)

	var trial int
	for trial = 0; trial < 3; trial++ {
		ta, err := a.GenerateRandomTour()
		if err != nil {
			t.Fatalf("GenerateRandomTour: %v", err)
		}
		tb, err := b.GenerateRandomTour()
		if err != nil {
			t.Fatalf("GenerateRandomTour: %v", err)
		}
		if !slices.Equal(ta.Sequence(), tb.Sequence()) {
			t.Fatalf("trial %d diverged:\n a: %v\n b: %v", trial, ta.Sequence(), tb.Sequence())
		}
	}
}

func TestGenerateRandomTourSeedZeroIsStillReproducible(t *testing.T) {
	p := lineProblem(8)

	a := mustSolver(t, p, lk.NearestNeighbors, 3, 0)
	b := mustSolver(t, p, lk.NearestNeighbors, 3, 0)

	ta, err := a.GenerateRandomTour()
	if err != nil {
		t.Fatalf("GenerateRandomTour: %v", err)
	}
	tb, err := b.GenerateRandomTour()
	if err != nil {
		t.Fatalf("GenerateRandomTour: %v", err)
	}
	if !slices.Equal(ta.Sequence(), tb.Sequence()) {
		t.Fatal("seed 0 must map to a fixed default stream")
	}
}

// With the ring candidate graph (k=2) every step has a candidate in the
// remaining set until the walk wraps, so the generated tour follows
// candidate edges almost everywhere.
func TestGenerateRandomTourPrefersCandidateEdges(t *testing.T) {
	const n = 16
	p := ringProblem(n)
	s := mustSolver(t, p, lk.NearestNeighbors, 2, seedDet)

	tour, err := s.GenerateRandomTour()
	if err != nil {
		t.Fatalf("GenerateRandomTour: %v", err)
	}

	seq := tour.Sequence()
	var candidateEdges int
	var i int
	for i = 0; i < n; i++ {
		u, v := seq[i], seq[(i+1)%n]
		d := p.Dist(u, v)
		if d == 1 { // ring edges are exactly the candidate edges for k=2
			candidateEdges++
		}
	}
	if candidateEdges < n/2 {
		t.Fatalf("only %d of %d edges follow candidates", candidateEdges, n)
	}
}
