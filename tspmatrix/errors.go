package tspmatrix

import "errors"

var (
	// ErrTooFewWaypoints indicates fewer than 2 waypoints were supplied.
	ErrTooFewWaypoints = errors.New("tspmatrix: at least 2 waypoints required")

	// ErrWaypointNotFound indicates a waypoint node id does not exist
	// in the graph.
	ErrWaypointNotFound = errors.New("tspmatrix: waypoint node not found in graph")

	// ErrIndexOutOfRange indicates a row/column index outside [0, N).
	ErrIndexOutOfRange = errors.New("tspmatrix: index out of range")
)
