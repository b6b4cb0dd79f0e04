package tspsolvefactory_test

import (
	"testing"

	"github.com/oroutengine/ogr/tspsolve"
	"github.com/oroutengine/ogr/tspsolvefactory"
	"github.com/stretchr/testify/require"
)

func TestByName_KnownAlgorithms(t *testing.T) {
	s, err := tspsolvefactory.ByName("IG")
	require.NoError(t, err)
	require.IsType(t, &tspsolve.IG{}, s)

	s, err = tspsolvefactory.ByName("ign")
	require.NoError(t, err)
	require.IsType(t, &tspsolve.IGN{}, s)

	s, err = tspsolvefactory.ByName("ils_b")
	require.NoError(t, err)
	require.IsType(t, &tspsolve.ILSB{}, s)
}

func TestByName_IgsaRequiresThreading(t *testing.T) {
	_, err := tspsolvefactory.ByName("igsa")
	require.ErrorIs(t, err, tspsolvefactory.ErrAlgorithmRequiresThreading)
}

func TestByName_UnknownAlgorithm(t *testing.T) {
	_, err := tspsolvefactory.ByName("bogus")
	require.ErrorIs(t, err, tspsolvefactory.ErrUnknownAlgorithm)
}
