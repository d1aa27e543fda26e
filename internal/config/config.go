package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"procedural/noise"
)

// Batch modes the harness can time.
const (
	ModeGrid   = "grid"
	ModePoints = "points"
)

// Config holds the benchmark harness configuration.
type Config struct {
	Seed        uint32  `json:"seed"`
	Scale       float32 `json:"scale"`
	Persistence float32 `json:"persistence"`
	Iterations  int     `json:"iterations"`
	Fractal     string  `json:"fractal"`  // "fbm", "billow" or "rigid"
	Strategy    string  `json:"strategy"` // "scalar" or "lanes"

	Mode   string `json:"mode"` // "grid" or "points"
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Extra  []int  `json:"extra"` // constant axes after x and y

	Points    int `json:"points"`     // random points per batch in points mode
	PointDims int `json:"point_dims"` // coordinates per point

	Samples  int  `json:"samples"`
	Duration int  `json:"duration"` // seconds per sample
	Verbose  bool `json:"verbose"`
}

// DefaultConfig returns a Config that times a 1920x1080 grid with one
// extra axis, four FBM octaves, ten samples of ten seconds.
func DefaultConfig() *Config {
	return &Config{
		Seed:        1,
		Scale:       0.01,
		Persistence: 0.5,
		Iterations:  4,
		Fractal:     "fbm",
		Strategy:    "scalar",
		Mode:        ModeGrid,
		Width:       1920,
		Height:      1080,
		Extra:       []int{0},
		Points:      1 << 16,
		PointDims:   2,
		Samples:     10,
		Duration:    10,
	}
}

// Load reads a JSON config file. Fields missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["scale"] {
		cfg.Scale = fromFile.Scale
	}
	if !explicitFlags["persistence"] {
		cfg.Persistence = fromFile.Persistence
	}
	if !explicitFlags["iterations"] {
		cfg.Iterations = fromFile.Iterations
	}
	if !explicitFlags["fractal"] {
		cfg.Fractal = fromFile.Fractal
	}
	if !explicitFlags["strategy"] {
		cfg.Strategy = fromFile.Strategy
	}
	if !explicitFlags["mode"] {
		cfg.Mode = fromFile.Mode
	}
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["extra"] {
		cfg.Extra = fromFile.Extra
	}
	if !explicitFlags["points"] {
		cfg.Points = fromFile.Points
	}
	if !explicitFlags["point-dims"] {
		cfg.PointDims = fromFile.PointDims
	}
	if !explicitFlags["samples"] {
		cfg.Samples = fromFile.Samples
	}
	if !explicitFlags["duration"] {
		cfg.Duration = fromFile.Duration
	}
	if !explicitFlags["v"] {
		cfg.Verbose = fromFile.Verbose
	}
}

// Validate reports every problem with cfg at once.
func (c *Config) Validate() error {
	var errs []error
	if c.Iterations < 1 {
		errs = append(errs, fmt.Errorf("iterations must be at least 1, got %d", c.Iterations))
	}
	if _, err := noise.ParseFractalType(c.Fractal); err != nil {
		errs = append(errs, err)
	}
	if _, err := noise.ParseStrategy(c.Strategy); err != nil {
		errs = append(errs, err)
	}
	switch c.Mode {
	case ModeGrid:
		if c.Width < 1 {
			errs = append(errs, fmt.Errorf("width must be at least 1, got %d", c.Width))
		}
		if c.Height < 0 {
			errs = append(errs, fmt.Errorf("height must not be negative, got %d", c.Height))
		}
	case ModePoints:
		if c.Points < 1 {
			errs = append(errs, fmt.Errorf("points must be at least 1, got %d", c.Points))
		}
		if c.PointDims < 1 {
			errs = append(errs, fmt.Errorf("point_dims must be at least 1, got %d", c.PointDims))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if c.Samples < 1 {
		errs = append(errs, fmt.Errorf("samples must be at least 1, got %d", c.Samples))
	}
	if c.Duration < 1 {
		errs = append(errs, fmt.Errorf("duration must be at least 1 second, got %d", c.Duration))
	}
	return errors.Join(errs...)
}

// Dims returns the grid dimensions in GenerateGrid order: width, height,
// then the extra axes.
func (c *Config) Dims() []int {
	return append([]int{c.Width, c.Height}, c.Extra...)
}

// SamplesPerBatch is the number of noise values one batch produces.
func (c *Config) SamplesPerBatch() int {
	if c.Mode == ModePoints {
		return c.Points
	}
	h := c.Height
	if h == 0 {
		h = 1
	}
	return c.Width * h
}
