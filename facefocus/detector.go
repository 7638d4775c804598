package facefocus

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/multierr"
)

var (
	// ErrModelLoad matches every *ModelError.
	ErrModelLoad = errors.New("model load failed")
	// ErrBackendUnavailable is returned by loaders that were not compiled in.
	ErrBackendUnavailable = errors.New("detector backend unavailable")
)

// Kind is the feature a detector looks for.
type Kind int

// Detector kinds.
const (
	Face Kind = iota
	Eye
	Smile
)

// Kinds lists every detector kind in load order.
var Kinds = []Kind{Face, Eye, Smile}

func (k Kind) String() string {
	switch k {
	case Face:
		return "face"
	case Eye:
		return "eye"
	case Smile:
		return "smile"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// CascadeParams tunes a single cascade search.
type CascadeParams struct {
	ScaleFactor  float64 `yaml:"scale_factor"`
	MinNeighbors int     `yaml:"min_neighbors"`
	MinSize      int     `yaml:"min_size"`
	MaxSize      int     `yaml:"max_size"`

	// Used by the pico backend only.
	ShiftFactor  float64 `yaml:"shift_factor"`
	MinScore     float64 `yaml:"min_score"`
	IouThreshold float64 `yaml:"iou_threshold"`
	Perturbs     int     `yaml:"perturbs"`
}

func (p *CascadeParams) applyDefaults(def CascadeParams) {
	if p.ScaleFactor == 0 {
		p.ScaleFactor = def.ScaleFactor
	}

	if p.MinNeighbors == 0 {
		p.MinNeighbors = def.MinNeighbors
	}

	if p.MinSize == 0 {
		p.MinSize = def.MinSize
	}

	if p.MaxSize == 0 {
		p.MaxSize = 1000
	}

	if p.ShiftFactor == 0 {
		p.ShiftFactor = 0.1
	}

	if p.MinScore == 0 {
		p.MinScore = 5
	}

	if p.IouThreshold == 0 {
		p.IouThreshold = 0.2
	}

	if p.Perturbs == 0 {
		p.Perturbs = 63
	}
}

// A Detector returns the rectangles in img believed to contain its feature.
// The same image always yields the same rectangles in the same order.
type Detector interface {
	Detect(img *image.Gray) []image.Rectangle
	Close() error
}

// Loader builds the detector for kind from a model file.
type Loader func(kind Kind, path string, params CascadeParams) (Detector, error)

// LoaderFor returns the loader for a backend name.
func LoaderFor(backend string) (Loader, error) {
	switch backend {
	case BackendPico:
		return loadPico, nil
	case BackendHaar:
		return func(_ Kind, path string, params CascadeParams) (Detector, error) {
			return LoadHaar(path, params)
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, backend)
}

// loadPico reads eyes with the puploc cascade and everything else with a
// regular pico cascade.
func loadPico(kind Kind, path string, params CascadeParams) (Detector, error) {
	if kind == Eye {
		return LoadPuploc(path, params)
	}
	return LoadPico(path, params)
}

// ModelError reports a detector that could not be loaded.
type ModelError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("load %s model %s: %v", e.Kind, e.Path, e.Err)
}

func (e *ModelError) Unwrap() []error {
	return []error{ErrModelLoad, e.Err}
}

// Detectors holds one detector per kind.
type Detectors struct {
	byKind   map[Kind]Detector
	degraded []Kind
	disabled []Kind
}

// LoadDetectors loads the face, eye and smile detectors. Every failure is
// reported as a *ModelError in the combined error. The returned set is never
// nil: kinds that failed to load are backed by a detector that finds nothing.
// A kind with no model path is disabled, which is not an error.
func LoadDetectors(cfg *Config, load Loader) (*Detectors, error) {
	set := &Detectors{byKind: make(map[Kind]Detector, len(Kinds))}
	var errs error
	for _, kind := range Kinds {
		path := cfg.Models.Path(kind)
		if path == "" {
			set.byKind[kind] = emptyDetector{}
			set.disabled = append(set.disabled, kind)
			continue
		}
		d, err := load(kind, path, cfg.Params(kind))
		if err != nil {
			errs = multierr.Append(errs, &ModelError{Kind: kind, Path: path, Err: err})
			set.degraded = append(set.degraded, kind)
			d = emptyDetector{}
		}
		set.byKind[kind] = d
	}
	return set, errs
}

// NewDetectors builds a set from ready detectors. Missing kinds are degraded.
func NewDetectors(face, eye, smile Detector) *Detectors {
	set := &Detectors{byKind: make(map[Kind]Detector, len(Kinds))}
	for kind, d := range map[Kind]Detector{Face: face, Eye: eye, Smile: smile} {
		set.byKind[kind] = d
	}
	for _, kind := range Kinds {
		if set.byKind[kind] == nil {
			set.byKind[kind] = emptyDetector{}
			set.degraded = append(set.degraded, kind)
		}
	}
	return set
}

// Detect runs the detector for kind over img.
func (s *Detectors) Detect(img *image.Gray, kind Kind) []image.Rectangle {
	d, ok := s.byKind[kind]
	if !ok || img == nil || img.Bounds().Empty() {
		return nil
	}
	return d.Detect(img)
}

// Degraded lists the kinds whose detector is missing or failed to load.
func (s *Detectors) Degraded() []Kind {
	return s.degraded
}

// Disabled lists the kinds that have no model configured.
func (s *Detectors) Disabled() []Kind {
	return s.disabled
}

// Close releases every detector.
func (s *Detectors) Close() error {
	var err error
	for _, kind := range Kinds {
		if d, ok := s.byKind[kind]; ok {
			err = multierr.Append(err, d.Close())
		}
	}
	return err
}

type emptyDetector struct{}

func (emptyDetector) Detect(*image.Gray) []image.Rectangle { return nil }

func (emptyDetector) Close() error { return nil }
