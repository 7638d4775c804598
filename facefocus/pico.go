package facefocus

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

// PicoDetector runs a pico cascade over grayscale images.
type PicoDetector struct {
	params     CascadeParams
	classifier *pigo.Pigo
}

// LoadPico unpacks the pico cascade stored at path.
func LoadPico(path string, params CascadeParams) (Detector, error) {
	cascadeFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can not open cascade file: %w", err)
	}

	classifier, err := pigo.NewPigo().Unpack(cascadeFile)
	if err != nil {
		return nil, fmt.Errorf("unpack cascade file: %w", err)
	}

	return &PicoDetector{params: params, classifier: classifier}, nil
}

// Detect returns one square per clustered detection scoring at least MinScore.
func (d *PicoDetector) Detect(img *image.Gray) []image.Rectangle {
	b := img.Bounds()
	cols, rows := b.Dx(), b.Dy()

	cParams := pigo.CascadeParams{
		MinSize:     d.params.MinSize,
		MaxSize:     d.params.MaxSize,
		ShiftFactor: d.params.ShiftFactor,
		ScaleFactor: d.params.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: grayPixels(img),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	dets := d.classifier.RunCascade(cParams, 0)
	dets = d.classifier.ClusterDetections(dets, d.params.IouThreshold)
	return detectionRects(dets, d.params.MinScore, b.Min)
}

// Close is a no-op; pico cascades hold no native resources.
func (d *PicoDetector) Close() error {
	return nil
}

// detectionRects turns pico detections (center and side) into rectangles
// offset by origin, dropping those scoring below minScore.
func detectionRects(dets []pigo.Detection, minScore float64, origin image.Point) []image.Rectangle {
	var rects []image.Rectangle
	for _, det := range dets {
		if float64(det.Q) < minScore {
			continue
		}
		rects = append(rects, image.Rect(
			det.Col-det.Scale/2,
			det.Row-det.Scale/2,
			det.Col+det.Scale/2,
			det.Row+det.Scale/2,
		).Add(origin))
	}
	return rects
}
