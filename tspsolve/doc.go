// Package tspsolve implements the three metaheuristic TSP solvers (IG,
// IGN, ILS-B) that run atop a precomputed tspmatrix.TspMatrix.
//
// All three share the same perturbation and local-search primitives
// (destroy-reinsert, the two 2-opt neighborhoods, ensure-start) and
// the same deterministic RNG derivation scheme: a seed of zero selects
// a fixed default stream rather than a time-based one, so runs are
// reproducible for testing.
package tspsolve
