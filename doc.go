// Package ogr is a ground-transportation routing engine: a graph data
// model over OSM-style street data, Dijkstra/A* pathfinding under
// vehicle-profile restrictions, a parallel all-pairs distance-matrix
// precompute, three TSP metaheuristic solvers, and a versioned binary
// snapshot codec, wired together behind sync and async routing
// facades.
//
// Subpackages, leaves first:
//
//	geo/            — coordinates and distances
//	graph/          — the thread-safe graph store
//	profile/        — vehicle restriction profiles
//	pathfinding/    — Dijkstra and A*, sharing one heap-based runner
//	pathfindingfactory/ — name to pathfinding.Algorithm resolution
//	tspmatrix/      — parallel all-pairs distance precompute
//	tspsolve/       — IG, IGN, and ILS-B TSP solvers
//	tspsolvefactory/ — name to tspsolve.Solver resolution
//	routing/        — sync/async facades over the above
//	snapshot/       — binary graph snapshot codec
//	config/         — CLI defaults and custom vehicle profiles
//	cmd/ogr/        — the route/tsp command-line entrypoint
package ogr
