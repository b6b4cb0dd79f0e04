// Package pathfindingfactory resolves algorithm names to pathfinding.Algorithm
// instances, the way profile.ByName resolves vehicle profile names.
package pathfindingfactory

import (
	"strings"

	"github.com/oroutengine/ogr/pathfinding"
)

// ByName resolves a case-insensitive algorithm name to a
// pathfinding.Algorithm. Supported: "dijkstra"; "astar", "a*", "a_star".
// "alt" is recognized (ALT / landmark-based A* is a known extension)
// but not implemented, and returns pathfinding.ErrNotImplemented.
// Any other name returns pathfinding.ErrUnknownAlgorithm.
func ByName(name string) (pathfinding.Algorithm, error) {
	switch strings.ToLower(name) {
	case "dijkstra":
		return pathfinding.NewDijkstra(), nil
	case "astar", "a*", "a_star":
		return pathfinding.NewAStar(), nil
	case "alt":
		return nil, pathfinding.ErrNotImplemented
	default:
		return nil, pathfinding.ErrUnknownAlgorithm
	}
}
