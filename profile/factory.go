package profile

import (
	"errors"
	"strings"
)

// ErrUnknownProfile indicates ByName received a name that does not
// match any registered profile.
var ErrUnknownProfile = errors.New("profile: unknown vehicle profile")

// CarProfile returns the factory-built car profile: motorways
// preferred, residential neutral, tracks avoided, and foot/cycle/
// service infrastructure blocked.
func CarProfile() *Profile {
	return New("Car", "car", 80, // km/h cruising default
		WithFactor("motorway", 1.5),
		WithFactor("residential", 1.0),
		WithFactor("track", 0.5),
		WithFactor("footway", 0),
		WithFactor("steps", 0),
		WithFactor("pedestrian", 0),
		WithFactor("cycleway", 0),
		WithFactor("path", 0),
		WithFactor("service", 0),
		WithFactor("living_street", 0),
		WithFactor("raceway", 0),
		WithFactor("construction", 0),
		WithFactor("bridleway", 0),
	)
}

// PedestrianProfile returns the factory-built pedestrian profile:
// footways and paths preferred, motor-vehicle-only infrastructure
// blocked.
func PedestrianProfile() *Profile {
	return New("Pedestrian", "pedestrian", 5,
		WithFactor("footway", 1.5),
		WithFactor("path", 1.5),
		WithFactor("trunk", 0),
		WithFactor("motorway", 0),
		WithFactor("living_street", 0),
		WithFactor("raceway", 0),
		WithFactor("motorway_link", 0),
		WithFactor("trunk_link", 0),
		WithFactor("primary_link", 0),
		WithFactor("secondary_link", 0),
	)
}

// NoRestrictions returns a profile with no factor overrides at all,
// so every highway class is neutral (factor 1) and nothing is
// blocked. Used where a routing query omits a vehicle profile.
func NoRestrictions() *Profile {
	return New("Unrestricted", "none", 0)
}

// ByName resolves a case-insensitive profile name to a factory-built
// Profile. Supported names: "CAR"/"car", "PEDESTRIAN"/"peaton".
// Unknown names return ErrUnknownProfile.
func ByName(name string) (*Profile, error) {
	switch strings.ToLower(name) {
	case "car":
		return CarProfile(), nil
	case "pedestrian", "peaton":
		return PedestrianProfile(), nil
	default:
		return nil, ErrUnknownProfile
	}
}
