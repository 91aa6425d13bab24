// Package lkh is a Lin–Kernighan solver for the symmetric Travelling
// Salesman Problem.
//
// 🚀 What is lkh?
//
//	A small, deterministic heuristic solver built from three pieces:
//		• lk/     — the core: candidate edges (nearest / α-nearest from
//		            minimum 1-trees), the alternating-walk search with
//		            bounded backtracking, and the multi-trial driver
//		• tsplib/ — TSPLIB instance parsing (EUC_2D, CEIL_2D, ATT, GEO,
//		            EXPLICIT) into a dense integer distance oracle
//		• cmd/lkh — a CLI: `lkh solve file.tsp`
//
// ✨ Why choose lkh?
//
//   - Reproducible – one seeded RNG; same seed, same tour, every run
//   - Within a few percent of the optimum on classic instances
//   - Pure Go core – no cgo; the core uses charmbracelet/log only for its
//     optional progress logger, the CLI adds cobra and BurntSushi/toml
//
// Quick start:
//
//	ins, _ := tsplib.ParseFile("dantzig42.tsp")
//	ce, _ := lk.NewCandidateEdges(ins, lk.AlphaNearestNeighbors, 5)
//	solver, _ := lk.New(ins, ce, lk.DefaultOptions())
//	tour, _ := solver.FindBestTour(50, 699, 0.02)
//
// Dive into lk's package documentation for the search parameters and the
// contracts of the Problem and Tour interfaces.
package lkh
