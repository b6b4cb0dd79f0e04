package graph

import (
	"errors"
	"sync"

	"github.com/oroutengine/ogr/geo"
)

// Sentinel errors for graph mutation and lookup.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrDuplicateNodeID indicates AddNode was called with an id already in use.
	ErrDuplicateNodeID = errors.New("graph: duplicate node id")

	// ErrDuplicateEdgeID indicates AddEdge was called with an id already in use.
	ErrDuplicateEdgeID = errors.New("graph: duplicate edge id")
)

// highwayTagKey is the conventional tag key carrying a road's highway class.
const highwayTagKey = "highway"

// nameTagKey is the conventional tag key carrying a human street name.
const nameTagKey = "name"

// highwayClassNames provides a readable fallback name for an edge that has
// no "name" tag, keyed by its "highway" class. Unknown classes fall back
// to "Unnamed road".
var highwayClassNames = map[string]string{
	"motorway":      "Motorway",
	"trunk":         "Trunk road",
	"primary":       "Primary road",
	"secondary":     "Secondary road",
	"tertiary":      "Tertiary road",
	"residential":   "Residential street",
	"service":       "Service road",
	"track":         "Track",
	"footway":       "Footpath",
	"path":          "Path",
	"cycleway":      "Cycleway",
	"pedestrian":    "Pedestrian way",
	"living_street": "Living street",
	"steps":         "Steps",
}

// Node is a point in the street network, identified by a stable 64-bit
// id drawn from the source map.
type Node struct {
	ID    int64
	Coord geo.Coordinate
}

// Edge is a directed connection between two nodes.
type Edge struct {
	ID     int64
	From   int64
	To     int64
	OneWay bool
	Dist   geo.Distance
	Tags   map[string]string
}

// HighwayClass returns the value of the "highway" tag, or "" if absent.
func (e *Edge) HighwayClass() string {
	return e.Tags[highwayTagKey]
}

// StreetName derives a human-readable name for the edge: the "name" tag
// if present, otherwise a localized fallback keyed on the highway class.
func (e *Edge) StreetName() string {
	if name, ok := e.Tags[nameTagKey]; ok && name != "" {
		return name
	}
	if label, ok := highwayClassNames[e.HighwayClass()]; ok {
		return label
	}

	return "Unnamed road"
}

// Graph owns a set of nodes and directed edges and maintains an
// adjacency index plus an optional bounding box.
//
// muNodes guards the node table. muEdges guards the edge table and the
// adjacency index. The two are independent so concurrent readers
// (pathfinding, TSP precompute) never block on each other.
type Graph struct {
	muNodes sync.RWMutex
	muEdges sync.RWMutex

	nodes map[int64]*Node
	edges map[int64]*Edge

	// adjacency[nodeID] is the list of edge ids incident on nodeID: every
	// edge is present at its source, and additionally at its target iff
	// it is not one-way.
	adjacency map[int64][]int64

	hasBounds bool
	minLat    float64
	maxLat    float64
	minLon    float64
	maxLon    float64
}

// NewGraph creates an empty Graph.
//
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int64]*Node),
		edges:     make(map[int64]*Edge),
		adjacency: make(map[int64][]int64),
	}
}
