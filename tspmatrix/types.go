package tspmatrix

import "github.com/oroutengine/ogr/geo"

// TspMatrix is a fixed-size N×N all-pairs distance matrix over a set
// of waypoint node ids. Row and column index 0..N-1 correspond
// positionally to Waypoints. Diagonal cells are always (0, empty);
// an unreachable off-diagonal cell holds (geo.Inf, empty).
type TspMatrix struct {
	Waypoints []int64

	dist [][]geo.Distance
	path [][][]int64
}

// newTspMatrix allocates an N×N matrix for the given waypoints, with
// every cell pre-filled as unreachable, and the diagonal set to zero.
func newTspMatrix(waypoints []int64) *TspMatrix {
	n := len(waypoints)
	m := &TspMatrix{
		Waypoints: waypoints,
		dist:      make([][]geo.Distance, n),
		path:      make([][][]int64, n),
	}
	for i := 0; i < n; i++ {
		m.dist[i] = make([]geo.Distance, n)
		m.path[i] = make([][]int64, n)
		for j := 0; j < n; j++ {
			if i == j {
				m.dist[i][j] = 0
			} else {
				m.dist[i][j] = geo.Inf
			}
		}
	}

	return m
}

// N returns the number of waypoints.
func (m *TspMatrix) N() int { return len(m.Waypoints) }

// Distance returns the precomputed shortest distance from waypoint
// index i to waypoint index j.
func (m *TspMatrix) Distance(i, j int) (geo.Distance, error) {
	if !m.inRange(i) || !m.inRange(j) {
		return 0, ErrIndexOutOfRange
	}

	return m.dist[i][j], nil
}

// PathEdgeIDs returns the ordered edge ids realizing the shortest path
// from waypoint index i to waypoint index j.
func (m *TspMatrix) PathEdgeIDs(i, j int) ([]int64, error) {
	if !m.inRange(i) || !m.inRange(j) {
		return nil, ErrIndexOutOfRange
	}

	return m.path[i][j], nil
}

func (m *TspMatrix) inRange(i int) bool { return i >= 0 && i < m.N() }
