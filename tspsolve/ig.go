package tspsolve

import (
	"github.com/oroutengine/ogr/geo"
	"github.com/oroutengine/ogr/tspmatrix"
)

// defaultIGIterations is the spec's default iteration budget for IG.
const defaultIGIterations = 5000

// IG ("iterated greedy") starts from a nearest-neighbor tour refined
// by first-improvement 2-opt swap local search, then repeatedly
// destroys and reinserts a handful of positions and re-runs local
// search, keeping the result only when it strictly improves the
// incumbent.
type IG struct {
	Iterations int
	Seed       int64
}

// NewIG constructs an IG solver with the default iteration budget and
// a deterministic RNG seed (0 selects the fixed default stream).
func NewIG() *IG { return &IG{Iterations: defaultIGIterations} }

// Solve implements Solver.
func (s *IG) Solve(m *tspmatrix.TspMatrix, startIdx int, closed bool) ([]int, geo.Distance, error) {
	if m.N() < 2 {
		return nil, 0, ErrTooFewWaypoints
	}
	if startIdx < 0 || startIdx >= m.N() {
		return nil, 0, ErrStartIndexOutOfRange
	}

	rng := rngFromSeed(s.Seed)
	cost := costFunc(m, closed)

	incumbent := m.NearestNeighborRoute(startIdx)
	TwoOptSwap(incumbent, cost)
	incumbentCost := cost(incumbent)

	iterations := s.Iterations
	if iterations <= 0 {
		iterations = defaultIGIterations
	}

	for i := 0; i < iterations; i++ {
		candidate := make([]int, len(incumbent))
		copy(candidate, incumbent)

		DestroyReinsert(candidate, rng)
		TwoOptSwap(candidate, cost)

		candidateCost := cost(candidate)
		if candidateCost.Meters() < incumbentCost.Meters() {
			incumbent = candidate
			incumbentCost = candidateCost
		}
	}

	EnsureStart(incumbent, startIdx)

	return incumbent, m.CalculateTourCost(incumbent, closed), nil
}
