package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBodies   = 3
	DefaultGravity  = 1e2
	DefaultSpeed    = 3.0
	DefaultDrag     = 0.99
	DefaultTrailCap = 600
	DefaultTheme    = "neon"
)

// Config holds the tunable scenario parameters. Gravity, speed, and
// drag seed the live settings; they keep changing at runtime.
type Config struct {
	Bodies   int     `yaml:"bodies"`
	Gravity  float64 `yaml:"gravity"`
	Speed    float64 `yaml:"speed"`
	Drag     float64 `yaml:"drag"`
	TrailCap int     `yaml:"trail_cap"`
	Theme    string  `yaml:"theme"`
	Seed     int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Bodies:   DefaultBodies,
		Gravity:  DefaultGravity,
		Speed:    DefaultSpeed,
		Drag:     DefaultDrag,
		TrailCap: DefaultTrailCap,
		Theme:    DefaultTheme,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations the scenario cannot build.
func (c *Config) Validate() error {
	if c.Bodies < 0 {
		return fmt.Errorf("bodies must be non-negative, got %d", c.Bodies)
	}
	if c.TrailCap < 0 {
		return fmt.Errorf("trail_cap must be non-negative, got %d", c.TrailCap)
	}
	return nil
}
