package tspsolve

import (
	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/tspmatrix"
)

// defaultILSBIterations is the spec's default iteration budget for ILS-B.
const defaultILSBIterations = 5000

// ILSB ("iterated local search, variant B") starts from a
// nearest-neighbor tour refined by first-improvement classical 2-opt
// edge-reversal, then repeatedly fully shuffles the tour and re-runs
// local search, keeping the result only when it strictly improves the
// incumbent.
type ILSB struct {
	Iterations int
	Seed       int64
}

// NewILSB constructs an ILS-B solver with the default iteration budget.
func NewILSB() *ILSB { return &ILSB{Iterations: defaultILSBIterations} }

// Solve implements Solver.
func (s *ILSB) Solve(m *tspmatrix.TspMatrix, startIdx int, closed bool) ([]int, geo.Distance, error) {
	if m.N() < 2 {
		return nil, 0, ErrTooFewWaypoints
	}
	if startIdx < 0 || startIdx >= m.N() {
		return nil, 0, ErrStartIndexOutOfRange
	}

	rng := rngFromSeed(s.Seed)
	cost := costFunc(m, closed)

	incumbent := m.NearestNeighborRoute(startIdx)
	TwoOptEdgeReverse(incumbent, cost)
	incumbentCost := cost(incumbent)

	iterations := s.Iterations
	if iterations <= 0 {
		iterations = defaultILSBIterations
	}

	for i := 0; i < iterations; i++ {
		candidate := make([]int, len(incumbent))
		copy(candidate, incumbent)

		shuffleIntsInPlace(candidate, rng)
		TwoOptEdgeReverse(candidate, cost)

		candidateCost := cost(candidate)
		if candidateCost.Meters() < incumbentCost.Meters() {
			incumbent = candidate
			incumbentCost = candidateCost
		}
	}

	EnsureStart(incumbent, startIdx)

	return incumbent, m.CalculateTourCost(incumbent, closed), nil
}
