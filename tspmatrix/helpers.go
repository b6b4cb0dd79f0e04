package tspmatrix

import "github.com/oroutengine/ogr/geo"

// CalculateTourCost sums matrix[tour[i]][tour[i+1]] over consecutive
// positions, adding matrix[tour[last]][tour[0]] when closed is true
// and len(tour) >= 2.
func (m *TspMatrix) CalculateTourCost(tour []int, closed bool) geo.Distance {
	var total geo.Distance
	for i := 0; i+1 < len(tour); i++ {
		total = total.Add(m.dist[tour[i]][tour[i+1]])
	}
	if closed && len(tour) >= 2 {
		total = total.Add(m.dist[tour[len(tour)-1]][tour[0]])
	}

	return total
}

// NearestNeighborRoute greedily builds an N-length permutation
// starting at startIdx: at each step it appends the unvisited index
// of minimum distance from the current tail, ties broken by index
// order.
func (m *TspMatrix) NearestNeighborRoute(startIdx int) []int {
	n := m.N()
	visited := make([]bool, n)
	route := make([]int, 0, n)

	cur := startIdx
	visited[cur] = true
	route = append(route, cur)

	for len(route) < n {
		best := -1
		var bestDist geo.Distance
		for j := 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d := m.dist[cur][j]
			if best == -1 || d < bestDist {
				best = j
				bestDist = d
			}
		}
		visited[best] = true
		route = append(route, best)
		cur = best
	}

	return route
}

// HasValidSolution reports whether every off-diagonal cell is
// reachable (finite distance).
func (m *TspMatrix) HasValidSolution() bool {
	n := m.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if m.dist[i][j].IsInf() {
				return false
			}
		}
	}

	return true
}

// UnreachablePairs enumerates every off-diagonal (i, j) with infinite
// distance.
func (m *TspMatrix) UnreachablePairs() [][2]int {
	var pairs [][2]int
	n := m.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if m.dist[i][j].IsInf() {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}
