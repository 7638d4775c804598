package facefocus

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Detector backends.
const (
	BackendHaar = "haar"
	BackendPico = "pico"
)

// EyeScope selects where eyes are searched and how often.
type EyeScope string

const (
	// EyeScopeFrame searches the whole working image once per frame.
	EyeScopeFrame EyeScope = "frame"
	// EyeScopeLegacy searches the whole working image again for every face
	// and draws every eye once per face.
	EyeScopeLegacy EyeScope = "legacy"
	// EyeScopeFace searches inside each face rectangle only.
	EyeScopeFace EyeScope = "face"
)

// Models holds the model file for each detector kind.
type Models struct {
	Face  string `yaml:"face"`
	Eye   string `yaml:"eye"`
	Smile string `yaml:"smile"`
}

// Path returns the model file configured for kind.
func (m Models) Path(kind Kind) string {
	switch kind {
	case Face:
		return m.Face
	case Eye:
		return m.Eye
	case Smile:
		return m.Smile
	}
	return ""
}

// Config config
type Config struct {
	Backend       string   `yaml:"backend"`
	ScalingFactor float64  `yaml:"scaling_factor"`
	BlurSigma     float64  `yaml:"blur_sigma"`
	EyeScope      EyeScope `yaml:"eye_scope"`
	AllowDegraded bool     `yaml:"allow_degraded"`
	HUD           bool     `yaml:"hud"`
	Models        Models   `yaml:"models"`

	Face  CascadeParams `yaml:"face"`
	Eye   CascadeParams `yaml:"eye"`
	Smile CascadeParams `yaml:"smile"`
}

// LoadConfig reads a YAML config file. Missing fields keep their zero value
// and are filled with defaults by New.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Params returns the cascade parameters for kind.
func (c *Config) Params(kind Kind) CascadeParams {
	switch kind {
	case Eye:
		return c.Eye
	case Smile:
		return c.Smile
	}
	return c.Face
}

// ApplyDefaults fills every zero field with its default.
func (c *Config) ApplyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendHaar
	}

	if c.ScalingFactor == 0 {
		c.ScalingFactor = 2
	}

	if c.BlurSigma == 0 {
		c.BlurSigma = 10
	}

	if c.EyeScope == "" {
		c.EyeScope = EyeScopeFrame
		if c.Backend == BackendPico {
			c.EyeScope = EyeScopeFace
		}
	}

	models := defaultModels(c.Backend)
	if c.Models.Face == "" {
		c.Models.Face = models.Face
	}
	if c.Models.Eye == "" {
		c.Models.Eye = models.Eye
	}
	if c.Models.Smile == "" {
		c.Models.Smile = models.Smile
	}

	c.Face.applyDefaults(CascadeParams{ScaleFactor: 1.1, MinNeighbors: 5, MinSize: 30})
	c.Eye.applyDefaults(CascadeParams{ScaleFactor: 1.1, MinNeighbors: 5, MinSize: 30})
	c.Smile.applyDefaults(CascadeParams{ScaleFactor: 1.8, MinNeighbors: 20, MinSize: 30})
}

// Validate reports settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.ScalingFactor <= 0 {
		return fmt.Errorf("%w: scaling factor must be positive, got %v", ErrInvalidConfig, c.ScalingFactor)
	}
	if c.BlurSigma <= 0 {
		return fmt.Errorf("%w: blur sigma must be positive, got %v", ErrInvalidConfig, c.BlurSigma)
	}
	switch c.Backend {
	case BackendHaar, BackendPico:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, c.Backend)
	}
	switch c.EyeScope {
	case EyeScopeFrame, EyeScopeLegacy, EyeScopeFace:
	default:
		return fmt.Errorf("%w: unknown eye scope %q", ErrInvalidConfig, c.EyeScope)
	}
	if c.Backend == BackendPico && c.EyeScope != EyeScopeFace {
		return fmt.Errorf("%w: pico pupil localization needs eye scope %q, got %q", ErrInvalidConfig, EyeScopeFace, c.EyeScope)
	}
	for _, kind := range Kinds {
		if p := c.Params(kind); p.ScaleFactor <= 1 {
			return fmt.Errorf("%w: %s scale factor must be greater than 1, got %v", ErrInvalidConfig, kind, p.ScaleFactor)
		}
	}
	return nil
}

// defaultModels returns the model files for backend. pico ships no smile
// cascade, so smiles are disabled there unless a model is configured.
func defaultModels(backend string) Models {
	if backend == BackendPico {
		return Models{
			Face: "./cascade/facefinder",
			Eye:  "./cascade/puploc",
		}
	}
	return Models{
		Face:  "HaarCascade_Models/haarcascade_frontalface_default.xml",
		Eye:   "HaarCascade_Models/haarcascade_eye_tree_eyeglasses.xml",
		Smile: "HaarCascade_Models/haarcascade_smile.xml",
	}
}
