package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procedural/internal/config"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{1920, 1080, 0}, cfg.Dims())
	assert.Equal(t, 1920*1080, cfg.SamplesPerBatch())
	assert.Equal(t, 10, cfg.Samples)
	assert.Equal(t, 10, cfg.Duration)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed": 42, "fractal": "billow", "extra": []}`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), cfg.Seed)
	assert.Equal(t, "billow", cfg.Fractal)
	assert.Empty(t, cfg.Extra)
	assert.Equal(t, 1920, cfg.Width)
	assert.Equal(t, float32(0.5), cfg.Persistence)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seed": "x"`), 0o600))
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestMergeRespectsExplicitFlags(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 7
	cfg.Width = 64

	fromFile := config.DefaultConfig()
	fromFile.Seed = 99
	fromFile.Width = 512
	fromFile.Height = 256
	fromFile.Strategy = "lanes"

	config.Merge(cfg, fromFile, map[string]bool{"seed": true})
	assert.Equal(t, uint32(7), cfg.Seed)
	assert.Equal(t, 512, cfg.Width)
	assert.Equal(t, 256, cfg.Height)
	assert.Equal(t, "lanes", cfg.Strategy)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{"iterations", func(c *config.Config) { c.Iterations = 0 }, "iterations"},
		{"fractal", func(c *config.Config) { c.Fractal = "voronoi" }, "unknown fractal"},
		{"strategy", func(c *config.Config) { c.Strategy = "gpu" }, "unknown strategy"},
		{"width", func(c *config.Config) { c.Width = 0 }, "width"},
		{"height", func(c *config.Config) { c.Height = -2 }, "height"},
		{"mode", func(c *config.Config) { c.Mode = "volume" }, "unknown mode"},
		{"points", func(c *config.Config) { c.Mode = config.ModePoints; c.Points = 0 }, "points"},
		{"point dims", func(c *config.Config) { c.Mode = config.ModePoints; c.PointDims = 0 }, "point_dims"},
		{"samples", func(c *config.Config) { c.Samples = 0 }, "samples"},
		{"duration", func(c *config.Config) { c.Duration = 0 }, "duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSamplesPerBatch(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Height = 0
	assert.Equal(t, 1920, cfg.SamplesPerBatch())

	cfg.Mode = config.ModePoints
	cfg.Points = 300
	assert.Equal(t, 300, cfg.SamplesPerBatch())
}
