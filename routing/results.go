package routing

import (
	"time"

	"github.com/oroutengine/ogr/geo"
)

// PathResult is the outcome of a PathfindingFacade.FindPath call.
type PathResult struct {
	EdgeIDs       []int64
	NodeIDs       []int64
	TotalDistance geo.Distance
	NodesExplored int
	Elapsed       time.Duration
	Algorithm     string
}

// TspSegment is one leg of a TspResult: the path between two
// consecutive waypoints in tour order.
type TspSegment struct {
	FromWaypointIdx int
	ToWaypointIdx   int
	EdgeIDs         []int64
	NodeIDs         []int64
	Distance        geo.Distance
}

// TspResult is the outcome of a TspFacade.Solve call.
type TspResult struct {
	TourIndices    []int
	WaypointIDs    []int64
	Segments       []TspSegment
	TotalDistance  geo.Distance
	PrecomputeTime time.Duration
	SolveTime      time.Duration
	Algorithm      string
}
