//go:build gocv

package facefocus

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// HaarDetector wraps an OpenCV Haar cascade classifier.
type HaarDetector struct {
	params     CascadeParams
	classifier gocv.CascadeClassifier
}

// LoadHaar loads an OpenCV cascade XML file.
func LoadHaar(path string, params CascadeParams) (Detector, error) {
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, fmt.Errorf("error reading cascade file: %s", path)
	}
	return &HaarDetector{params: params, classifier: classifier}, nil
}

// Detect runs a multiscale search with the configured neighbor threshold.
func (d *HaarDetector) Detect(img *image.Gray) []image.Rectangle {
	mat, err := gocv.ImageGrayToMatGray(img)
	if err != nil {
		return nil
	}
	defer mat.Close()

	minSize := image.Pt(d.params.MinSize, d.params.MinSize)
	return d.classifier.DetectMultiScaleWithParams(mat, d.params.ScaleFactor, d.params.MinNeighbors, 0, minSize, image.Point{})
}

func (d *HaarDetector) Close() error {
	return d.classifier.Close()
}
