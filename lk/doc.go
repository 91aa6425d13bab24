// Package lk implements the Lin–Kernighan heuristic for the symmetric
// Travelling Salesman Problem.
//
// The solver improves tours by exchanging sequences of tour edges along a
// gain-directed alternating walk with bounded backtracking:
//
//   - CandidateEdges restricts which edges the search may add
//     (all neighbors, k nearest, or k α-nearest from a minimum 1-tree).
//
//   - Solver.FindBestTour runs multiple trials: each trial generates a
//     randomized start tour biased toward candidate edges and the incumbent
//     best tour, then drives it to a Lin–Kernighan local optimum.
//
//   - Complexity per improvement round is dominated by the O(n) tour
//     feasibility check; candidate pruning keeps the branching narrow.
//
// Distances are nonnegative int64 values supplied by a Problem oracle;
// gains are signed int64 (sums and differences of edge lengths never
// overflow for realistic instances).
//
// All randomness flows through a single RNG seeded via Options.Seed, so a
// fixed seed, problem, and candidate table reproduce the exact same tour.
package lk
