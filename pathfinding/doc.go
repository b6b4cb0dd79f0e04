// Package pathfinding implements single-source, single-target shortest
// path search over a graph.Graph, subject to a profile.Profile's road
// restrictions.
//
// Both Algorithm implementations (Dijkstra and AStar) share a common
// heap-based runner: a min-heap keyed on tentative distance, explored
// under a lazy-decrease-key discipline — a shorter distance to an
// already-queued node is pushed as a fresh heap entry rather than
// updating the existing one, and stale entries are discarded when
// popped if the node has already been finalized.
//
// Neither algorithm ever returns an error for "no path found" or "search
// capped" conditions; both report these through the returned Result
// (empty EdgeIDs, or a Warnings entry) so that callers driving an
// interactive UI never need to special-case error handling for
// ordinary search outcomes.
package pathfinding
