package tspsolve

import (
	"math/rand"

	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/tspmatrix"
)

// costFunc evaluates the cost of a route (a permutation of waypoint
// indices) via TspMatrix.CalculateTourCost, including the closing leg
// back to route[0] when closed is true, so local search optimizes the
// same cost the solver reports.
func costFunc(m *tspmatrix.TspMatrix, closed bool) func([]int) geo.Distance {
	return func(route []int) geo.Distance { return m.CalculateTourCost(route, closed) }
}

// DestroyReinsert repeats k = min(3, len(route)) times: pick a
// uniformly random position, remove that element, remember it; then
// for each removed element, insert it at a uniformly random position
// in the (now shorter) sequence. route is mutated in place.
func DestroyReinsert(route []int, rng *rand.Rand) {
	k := 3
	if len(route) < k {
		k = len(route)
	}
	if k <= 0 {
		return
	}

	removed := make([]int, 0, k)
	for i := 0; i < k; i++ {
		if len(route) == 0 {
			break
		}
		pos := rng.Intn(len(route))
		removed = append(removed, route[pos])
		route = append(route[:pos], route[pos+1:]...)
	}

	for _, v := range removed {
		pos := 0
		if len(route) > 0 {
			pos = rng.Intn(len(route) + 1)
		}
		route = append(route, 0)
		copy(route[pos+1:], route[pos:])
		route[pos] = v
	}
}

// TwoOptSwap performs first-improvement adjacent-transpose local
// search: for every pair i < j, tentatively swap(route[i], route[j]);
// keep the swap iff it strictly improves cost, else undo. Restarts
// scanning from the top after every accepted move, and terminates
// when a full sweep finds no improvement. This is NOT classical
// 2-opt edge reversal — it transposes two single positions.
func TwoOptSwap(route []int, cost func([]int) geo.Distance) {
	n := len(route)
	for {
		improved := false
		for i := 0; i < n-1 && !improved; i++ {
			for j := i + 1; j < n; j++ {
				before := cost(route)
				route[i], route[j] = route[j], route[i]
				after := cost(route)
				if after.Meters() < before.Meters() {
					improved = true
					break
				}
				route[i], route[j] = route[j], route[i]
			}
		}
		if !improved {
			return
		}
	}
}

// TwoOptEdgeReverse performs first-improvement classical 2-opt: for
// every pair i < j with j >= i+2, reverse route[i+1..j]; keep the
// reversal iff cost improves, else undo. Repeats until no improvement.
func TwoOptEdgeReverse(route []int, cost func([]int) geo.Distance) {
	n := len(route)
	for {
		improved := false
		for i := 0; i < n-2 && !improved; i++ {
			for j := i + 2; j < n; j++ {
				before := cost(route)
				reverseSegment(route, i+1, j)
				after := cost(route)
				if after.Meters() < before.Meters() {
					improved = true
					break
				}
				reverseSegment(route, i+1, j)
			}
		}
		if !improved {
			return
		}
	}
}

// reverseSegment reverses route[lo..hi] in place, inclusive.
func reverseSegment(route []int, lo, hi int) {
	for lo < hi {
		route[lo], route[hi] = route[hi], route[lo]
		lo++
		hi--
	}
}

// EnsureStart rotates route in place so that route[0] == start.
func EnsureStart(route []int, start int) {
	pos := -1
	for i, v := range route {
		if v == start {
			pos = i
			break
		}
	}
	if pos <= 0 {
		return
	}

	rotated := make([]int, len(route))
	copy(rotated, route[pos:])
	copy(rotated[len(route)-pos:], route[:pos])
	copy(route, rotated)
}
