// Package config loads CLI defaults and custom vehicle profile
// definitions from a YAML file, so routine queries against a fixed
// snapshot don't need to repeat the same flags on every invocation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oroutengine/ogr/profile"
)

// Config holds the CLI's default flag values and any custom vehicle
// profiles the operator wants available by name beyond the built-in
// "car" and "pedestrian".
type Config struct {
	DefaultAlgorithm    string        `yaml:"default_algorithm"`
	DefaultTspAlgorithm string        `yaml:"default_tsp_algorithm"`
	DefaultProfile      string        `yaml:"default_profile"`
	Profiles            []ProfileSpec `yaml:"profiles"`
}

// ProfileSpec describes one custom vehicle profile entry in the
// config file: a per-highway-class speed factor table, mirrored onto
// profile.Option values by Build.
type ProfileSpec struct {
	Name         string             `yaml:"name"`
	Type         string             `yaml:"type"`
	DefaultSpeed float64            `yaml:"default_speed_kmh"`
	Factors      map[string]float64 `yaml:"factors"`
}

// Build constructs a *profile.Profile from this spec.
func (s ProfileSpec) Build() *profile.Profile {
	opts := make([]profile.Option, 0, len(s.Factors))
	for class, factor := range s.Factors {
		opts = append(opts, profile.WithFactor(class, factor))
	}

	return profile.New(s.Name, s.Type, s.DefaultSpeed, opts...)
}

// ProfileByName looks up a custom profile by case-sensitive name among
// cfg.Profiles, reporting false if none matches.
func (cfg Config) ProfileByName(name string) (*profile.Profile, bool) {
	for _, spec := range cfg.Profiles {
		if spec.Name == name {
			return spec.Build(), true
		}
	}

	return nil, false
}

// Default returns a Config with the module's built-in defaults: the
// "dijkstra" pathfinding algorithm, the "ig" TSP solver, and no
// vehicle restrictions.
func Default() Config {
	return Config{
		DefaultAlgorithm:    "dijkstra",
		DefaultTspAlgorithm: "ig",
		DefaultProfile:      "",
	}
}

// Load reads cfg from a YAML file at path. A missing file is not an
// error: Load returns Default() in that case, so the CLI works
// without a config file present.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
