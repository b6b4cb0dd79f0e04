// Package tspsolvefactory resolves TSP solver names to tspsolve.Solver
// instances, the way pathfindingfactory resolves pathfinding algorithm
// names.
package tspsolvefactory

import (
	"errors"
	"strings"

	"github.com/oroutengine/ogr/tspsolve"
)

// ErrUnknownAlgorithm indicates ByName received a name matching no
// registered solver.
var ErrUnknownAlgorithm = errors.New("tspsolvefactory: unknown algorithm")

// ErrAlgorithmRequiresThreading indicates a recognized but
// unimplemented solver name requiring a threading model this module
// does not provide, e.g. "igsa".
var ErrAlgorithmRequiresThreading = errors.New("tspsolvefactory: algorithm requires threading implementation (not available)")

// ByName resolves a case-insensitive solver name to a tspsolve.Solver.
// Supported: "ig"; "ign"; "ilsb"/"ils_b". "igsa" is recognized but
// rejected with ErrAlgorithmRequiresThreading. Any other name returns
// ErrUnknownAlgorithm.
func ByName(name string) (tspsolve.Solver, error) {
	switch strings.ToLower(name) {
	case "ig":
		return tspsolve.NewIG(), nil
	case "ign":
		return tspsolve.NewIGN(), nil
	case "ilsb", "ils_b":
		return tspsolve.NewILSB(), nil
	case "igsa":
		return nil, ErrAlgorithmRequiresThreading
	default:
		return nil, ErrUnknownAlgorithm
	}
}
