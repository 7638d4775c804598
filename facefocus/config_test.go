package facefocus

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	assert.Equal(t, BackendHaar, cfg.Backend)
	assert.Equal(t, 2.0, cfg.ScalingFactor)
	assert.Equal(t, 10.0, cfg.BlurSigma)
	assert.Equal(t, EyeScopeFrame, cfg.EyeScope)
	assert.Equal(t, "HaarCascade_Models/haarcascade_frontalface_default.xml", cfg.Models.Face)

	assert.Equal(t, CascadeParams{ScaleFactor: 1.1, MinNeighbors: 5, MinSize: 30, MaxSize: 1000, ShiftFactor: 0.1, MinScore: 5, IouThreshold: 0.2, Perturbs: 63}, cfg.Face)
	assert.Equal(t, cfg.Face, cfg.Eye)
	assert.Equal(t, 1.8, cfg.Smile.ScaleFactor)
	assert.Equal(t, 20, cfg.Smile.MinNeighbors)
	assert.Equal(t, 30, cfg.Smile.MinSize)
	require.NoError(t, cfg.Validate())
}

func TestApplyDefaults_KeepsSetFields(t *testing.T) {
	cfg := Config{
		Backend: BackendPico,
		Models:  Models{Face: "my/face"},
		Smile:   CascadeParams{MinNeighbors: 30},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "my/face", cfg.Models.Face)
	assert.Equal(t, "./cascade/puploc", cfg.Models.Eye)
	assert.Empty(t, cfg.Models.Smile)
	assert.Equal(t, EyeScopeFace, cfg.EyeScope)
	assert.Equal(t, 30, cfg.Smile.MinNeighbors)
	assert.Equal(t, 1.8, cfg.Smile.ScaleFactor)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "focus.yaml")
	data := `
backend: pico
scaling_factor: 3
eye_scope: legacy
allow_degraded: true
hud: true
models:
  face: cascade/facefinder
smile:
  min_neighbors: 25
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, BackendPico, cfg.Backend)
	assert.Equal(t, 3.0, cfg.ScalingFactor)
	assert.Equal(t, EyeScopeLegacy, cfg.EyeScope)
	assert.True(t, cfg.AllowDegraded)
	assert.True(t, cfg.HUD)
	assert.Equal(t, "cascade/facefinder", cfg.Models.Face)
	assert.Equal(t, 25, cfg.Smile.MinNeighbors)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("scaling_factor: [1, 2"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative blur", func(c *Config) { c.BlurSigma = -1 }},
		{"negative scale", func(c *Config) { c.ScalingFactor = -2 }},
		{"unknown backend", func(c *Config) { c.Backend = "dnn" }},
		{"unknown eye scope", func(c *Config) { c.EyeScope = "mouth" }},
		{"cascade step too small", func(c *Config) { c.Eye.ScaleFactor = 1 }},
		{"pico with frame eyes", func(c *Config) { c.Backend = BackendPico; c.EyeScope = EyeScopeFrame }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg Config
			cfg.ApplyDefaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.True(t, errors.Is(err, ErrInvalidConfig), "got %v", err)
		})
	}
}
