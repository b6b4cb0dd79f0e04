package profile_test

import (
	"testing"

	"github.com/oroutengine/ogr/profile"
	"github.com/stretchr/testify/require"
)

func TestIsRoadSuitable_NoHighwayTagAlwaysSuitable(t *testing.T) {
	p := profile.CarProfile()
	require.True(t, p.IsRoadSuitable(map[string]string{}))
	require.True(t, p.IsRoadSuitable(map[string]string{"name": "Calle Mayor"}))
}

func TestIsRoadSuitable_BlockedClass(t *testing.T) {
	p := profile.CarProfile()
	require.False(t, p.IsRoadSuitable(map[string]string{"highway": "footway"}))
	require.True(t, p.IsRoadSuitable(map[string]string{"highway": "residential"}))
}

func TestCarProfile_Factors(t *testing.T) {
	p := profile.CarProfile()
	require.Equal(t, 1.5, p.Factor("motorway"))
	require.Equal(t, 1.0, p.Factor("residential"))
	require.Equal(t, 0.5, p.Factor("track"))
	require.True(t, p.IsBlocked("footway"))
	require.True(t, p.IsBlocked("pedestrian"))
}

func TestPedestrianProfile_Factors(t *testing.T) {
	p := profile.PedestrianProfile()
	require.Equal(t, 1.5, p.Factor("footway"))
	require.True(t, p.IsBlocked("motorway"))
	require.True(t, p.IsBlocked("trunk"))
}

func TestPreferredAvoidedBlocked(t *testing.T) {
	p := profile.CarProfile()
	require.Contains(t, p.Preferred(), "motorway")
	require.Contains(t, p.Avoided(), "track")
	require.Contains(t, p.Blocked(), "footway")
}

func TestByName_CaseInsensitiveAndAliases(t *testing.T) {
	p, err := profile.ByName("CAR")
	require.NoError(t, err)
	require.Equal(t, "Car", p.Name)

	p, err = profile.ByName("peaton")
	require.NoError(t, err)
	require.Equal(t, "Pedestrian", p.Name)

	_, err = profile.ByName("bicycle")
	require.ErrorIs(t, err, profile.ErrUnknownProfile)
}

func TestClone_IsIndependent(t *testing.T) {
	p := profile.CarProfile()
	c := p.Clone()
	c.SetFactor("motorway", 9)
	require.Equal(t, 1.5, p.Factor("motorway"))
	require.Equal(t, 9.0, c.Factor("motorway"))
}
