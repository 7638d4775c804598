package facefocus

import (
	"fmt"
	"image"

	"github.com/sirupsen/logrus"
)

// FaceResult describes one face that passed bounds validation.
type FaceResult struct {
	Index  int             // position in the face detector output
	Rect   image.Rectangle // frame coordinates
	Eyes   []image.Rectangle
	Smiles int
}

// Report summarizes one processed frame.
type Report struct {
	Faces   []FaceResult
	Eyes    []image.Rectangle // frame-wide eyes, EyeScopeFrame only
	Skipped int
}

// Pipeline turns camera frames into frames with sharp faces on a blurred
// background. It is not safe for concurrent use.
type Pipeline struct {
	cfg        Config
	detectors  *Detectors
	renderer   *Renderer
	compositor Compositor
	log        logrus.FieldLogger
}

// New fills in config defaults and loads the detectors for the configured
// backend. A detector that fails to load is an error unless
// config.AllowDegraded is set, in which case it finds nothing.
func New(config *Config, log logrus.FieldLogger) (*Pipeline, error) {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	load, err := LoaderFor(cfg.Backend)
	if err != nil {
		return nil, err
	}
	detectors, err := LoadDetectors(&cfg, load)
	if err != nil {
		if !cfg.AllowDegraded {
			detectors.Close()
			return nil, err
		}
		loggerOrDefault(log).WithError(err).Warn("Some detectors failed to load")
	}
	return newPipeline(cfg, detectors, log), nil
}

// NewWithDetectors builds a pipeline around detectors that are already loaded.
func NewWithDetectors(config *Config, detectors *Detectors, log logrus.FieldLogger) (*Pipeline, error) {
	cfg := Config{}
	if config != nil {
		cfg = *config
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if missing := detectors.Degraded(); len(missing) > 0 && !cfg.AllowDegraded {
		return nil, fmt.Errorf("%w: no detector for %v", ErrModelLoad, missing)
	}
	return newPipeline(cfg, detectors, log), nil
}

func newPipeline(cfg Config, detectors *Detectors, log logrus.FieldLogger) *Pipeline {
	log = loggerOrDefault(log)
	if missing := detectors.Degraded(); len(missing) > 0 {
		log.WithField("kinds", missing).Warn("Running without some detectors, they will never report a detection")
	}
	if off := detectors.Disabled(); len(off) > 0 {
		log.WithField("kinds", off).Info("No model configured, detectors disabled")
	}
	return &Pipeline{
		cfg:        cfg,
		detectors:  detectors,
		renderer:   NewRenderer(DefaultPalette, cfg.ScalingFactor),
		compositor: Compositor{Sigma: cfg.BlurSigma},
		log:        log,
	}
}

// Config returns the effective configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Process consumes frame and returns the composited output. frame is
// sharpened and annotated in place and must not be reused by the caller.
// A frame whose origin is not (0, 0) is copied to one that is first, and
// every rectangle in the output and the Report is relative to that origin.
func (p *Pipeline) Process(frame *image.RGBA) (*image.RGBA, *Report) {
	frame = ToRGBA(frame)
	s := p.cfg.ScalingFactor
	size := frame.Bounds().Size()
	work := WorkingImage(frame, s)
	report := &Report{}

	if p.cfg.EyeScope == EyeScopeFrame {
		report.Eyes = toFrameSpace(p.detectors.Detect(work, Eye), image.Point{}, s)
	}

	var (
		faces []FaceAnnotation
		rects []image.Rectangle
	)
	for i, d := range p.detectors.Detect(work, Face) {
		r := ToFrameSpace(d, s)
		if !IsContained(r, size.X, size.Y) {
			p.log.WithFields(logrus.Fields{
				"index": i,
				"rect":  r,
				"frame": size,
			}).Warn("Outside range, skipping face")
			report.Skipped++
			continue
		}

		SharpenRegion(frame, r)
		smiles := p.detectors.Detect(GrayRegion(frame, r), Smile)
		eyes := p.faceEyes(work, d)

		faces = append(faces, FaceAnnotation{Rect: r, Eyes: eyes, Smile: len(smiles) > 0})
		rects = append(rects, r)
		report.Faces = append(report.Faces, FaceResult{Index: i, Rect: r, Eyes: eyes, Smiles: len(smiles)})
	}

	p.renderer.Annotate(frame, faces, report.Eyes)
	out := p.compositor.Composite(frame, CaptureRegions(frame, rects))

	if p.cfg.HUD {
		p.renderer.Paint(out, []Mark{TitleMark(), FaceCountMark(len(faces))})
	}

	p.log.WithFields(logrus.Fields{
		"faces":   len(report.Faces),
		"skipped": report.Skipped,
	}).Debug("Frame processed")
	return out, report
}

// faceEyes returns the eyes drawn alongside face d, in frame coordinates.
func (p *Pipeline) faceEyes(work *image.Gray, d image.Rectangle) []image.Rectangle {
	switch p.cfg.EyeScope {
	case EyeScopeLegacy:
		return toFrameSpace(p.detectors.Detect(work, Eye), image.Point{}, p.cfg.ScalingFactor)
	case EyeScopeFace:
		d = d.Intersect(work.Bounds())
		return toFrameSpace(p.detectors.Detect(GrayRegion(work, d), Eye), d.Min, p.cfg.ScalingFactor)
	}
	return nil
}

// Close releases the detectors.
func (p *Pipeline) Close() error {
	return p.detectors.Close()
}

func loggerOrDefault(log logrus.FieldLogger) logrus.FieldLogger {
	if log == nil {
		return logrus.StandardLogger()
	}
	return log
}

func toFrameSpace(rects []image.Rectangle, offset image.Point, s float64) []image.Rectangle {
	if len(rects) == 0 {
		return nil
	}
	out := make([]image.Rectangle, 0, len(rects))
	for _, r := range rects {
		out = append(out, ToFrameSpace(r.Add(offset), s))
	}
	return out
}
