package pathfindingfactory_test

import (
	"testing"

	"github.com/oroutengine/ogr/pathfinding"
	"github.com/oroutengine/ogr/pathfindingfactory"
	"github.com/stretchr/testify/require"
)

func TestByName_ResolvesKnownAlgorithms(t *testing.T) {
	d, err := pathfindingfactory.ByName("Dijkstra")
	require.NoError(t, err)
	require.Equal(t, "dijkstra", d.Name())

	a, err := pathfindingfactory.ByName("a*")
	require.NoError(t, err)
	require.Equal(t, "astar", a.Name())
}

func TestByName_AltIsNotImplemented(t *testing.T) {
	_, err := pathfindingfactory.ByName("alt")
	require.ErrorIs(t, err, pathfinding.ErrNotImplemented)
}

func TestByName_UnknownAlgorithm(t *testing.T) {
	_, err := pathfindingfactory.ByName("bogus")
	require.ErrorIs(t, err, pathfinding.ErrUnknownAlgorithm)
}
