package pathfinding

import "errors"

var (
	// ErrStartNotFound indicates the requested start node does not
	// exist in the graph.
	ErrStartNotFound = errors.New("pathfinding: start node not found")

	// ErrEndNotFound indicates the requested end node does not exist
	// in the graph.
	ErrEndNotFound = errors.New("pathfinding: end node not found")

	// ErrUnknownAlgorithm indicates pathfindingfactory.ByName received
	// a name matching no registered algorithm.
	ErrUnknownAlgorithm = errors.New("pathfinding: unknown algorithm")

	// ErrNotImplemented indicates a recognized but unimplemented
	// algorithm name, e.g. "alt".
	ErrNotImplemented = errors.New("pathfinding: algorithm recognized but not implemented")
)
