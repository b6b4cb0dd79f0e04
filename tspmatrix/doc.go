// Package tspmatrix precomputes an all-pairs shortest-distance matrix
// over a fixed set of waypoints, for consumption by the tspsolve
// heuristics.
//
// Precompute distributes rows across a fixed worker pool: each worker
// repeatedly claims the next unassigned row from an atomic counter and
// computes every cell of that row alone, so no two workers ever write
// the same cell and no locking is needed on the matrix itself.
package tspmatrix
