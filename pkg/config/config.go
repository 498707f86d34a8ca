// Package config loads the agency configuration from YAML with environment
// overrides. Every value has a default, so the binary runs with no config
// file at all.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file consulted when no -config flag is given.
const DefaultPath = "horizon.yaml"

// Defaults mirror the historical table sizes and the opening agency fund.
const (
	DefaultDataDir = "data"

	// DefaultBudget is the starting agency budget in billions.
	DefaultBudget = 50.0

	DefaultUserCapacity        = 200
	DefaultApplicationCapacity = 200
	DefaultMissionCapacity     = 200
	DefaultInventoryCapacity   = 500
	DefaultAstronautCapacity   = 100
	DefaultPlanetCapacity      = 100
	DefaultExoplanetCapacity   = 100
	DefaultLogCapacity         = 1000
)

// Capacity holds the per-repository table bounds.
type Capacity struct {
	Users        int `yaml:"users"`
	Applications int `yaml:"applications"`
	Missions     int `yaml:"missions"`
	Inventory    int `yaml:"inventory"`
	Astronauts   int `yaml:"astronauts"`
	Planets      int `yaml:"planets"`
	Exoplanets   int `yaml:"exoplanets"`
	LogEntries   int `yaml:"logEntries"`
}

// Config is the full agency configuration.
type Config struct {
	DataDir        string   `yaml:"dataDir"`
	LogLevel       string   `yaml:"logLevel"`
	StartingBudget float64  `yaml:"startingBudget"`
	Capacity       Capacity `yaml:"capacity"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DataDir:        DefaultDataDir,
		LogLevel:       "info",
		StartingBudget: DefaultBudget,
		Capacity: Capacity{
			Users:        DefaultUserCapacity,
			Applications: DefaultApplicationCapacity,
			Missions:     DefaultMissionCapacity,
			Inventory:    DefaultInventoryCapacity,
			Astronauts:   DefaultAstronautCapacity,
			Planets:      DefaultPlanetCapacity,
			Exoplanets:   DefaultExoplanetCapacity,
			LogEntries:   DefaultLogCapacity,
		},
	}
}

// Load reads config from path. An empty path falls back to DefaultPath;
// a missing file at the default path is not an error, an explicitly named
// file must exist. Environment variables override the file.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case explicit:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	// Override with environment variables
	if v := os.Getenv("HORIZON_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("HORIZON_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("HORIZON_STARTING_BUDGET"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.StartingBudget = f
		}
	}

	cfg.normalize()
	return cfg, nil
}

// normalize backfills zero or negative values with the defaults so a sparse
// config file stays usable.
func (c *Config) normalize() {
	def := Default()
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.StartingBudget <= 0 {
		c.StartingBudget = def.StartingBudget
	}
	caps := []struct {
		field *int
		def   int
	}{
		{&c.Capacity.Users, def.Capacity.Users},
		{&c.Capacity.Applications, def.Capacity.Applications},
		{&c.Capacity.Missions, def.Capacity.Missions},
		{&c.Capacity.Inventory, def.Capacity.Inventory},
		{&c.Capacity.Astronauts, def.Capacity.Astronauts},
		{&c.Capacity.Planets, def.Capacity.Planets},
		{&c.Capacity.Exoplanets, def.Capacity.Exoplanets},
		{&c.Capacity.LogEntries, def.Capacity.LogEntries},
	}
	for _, bound := range caps {
		if *bound.field <= 0 {
			*bound.field = bound.def
		}
	}
}
