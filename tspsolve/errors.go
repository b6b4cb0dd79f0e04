package tspsolve

import "errors"

// ErrTooFewWaypoints indicates the matrix has fewer than 2 waypoints.
var ErrTooFewWaypoints = errors.New("tspsolve: matrix has fewer than 2 waypoints")

// ErrStartIndexOutOfRange indicates startIdx is outside [0, N).
var ErrStartIndexOutOfRange = errors.New("tspsolve: start index out of range")
