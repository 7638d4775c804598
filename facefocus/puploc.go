package facefocus

import (
	"fmt"
	"image"
	"os"

	pigo "github.com/esimov/pigo/core"
)

// PuplocDetector localizes the two pupils of a face with a pico puploc
// cascade. The image it is given must be a face crop: the search starts
// from the usual eye positions relative to the crop center.
type PuplocDetector struct {
	params  CascadeParams
	cascade *pigo.PuplocCascade
}

// LoadPuploc unpacks the puploc cascade stored at path.
func LoadPuploc(path string, params CascadeParams) (Detector, error) {
	cascadeFile, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can not open puploc file: %w", err)
	}

	cascade, err := pigo.NewPuplocCascade().UnpackCascade(cascadeFile)
	if err != nil {
		return nil, fmt.Errorf("unpack puploc file: %w", err)
	}

	return &PuplocDetector{params: params, cascade: cascade}, nil
}

// Detect returns a square around each pupil found, left eye first.
func (d *PuplocDetector) Detect(img *image.Gray) []image.Rectangle {
	b := img.Bounds()
	cols, rows := b.Dx(), b.Dy()
	imgParams := pigo.ImageParams{
		Pixels: grayPixels(img),
		Rows:   rows,
		Cols:   cols,
		Dim:    cols,
	}

	side := min(cols, rows) / 4
	var rects []image.Rectangle
	for _, start := range pupilStarts(cols, rows, d.params.Perturbs) {
		pupil := d.cascade.RunDetector(start, imgParams, 0, false)
		if r, ok := pupilRect(pupil, side, cols, rows); ok {
			rects = append(rects, r.Add(b.Min))
		}
	}
	return rects
}

// Close is a no-op.
func (d *PuplocDetector) Close() error {
	return nil
}

// pupilStarts returns the left and right pupil search seeds for a face
// filling a cols x rows crop.
func pupilStarts(cols, rows, perturbs int) [2]pigo.Puploc {
	row, col := rows/2, cols/2
	scale := float32(min(cols, rows))
	return [2]pigo.Puploc{
		{
			Row:      row - int(0.075*scale),
			Col:      col - int(0.175*scale),
			Scale:    scale * 0.25,
			Perturbs: perturbs,
		},
		{
			Row:      row - int(0.075*scale),
			Col:      col + int(0.185*scale),
			Scale:    scale * 0.25,
			Perturbs: perturbs,
		},
	}
}

// pupilRect centers a side x side square on pupil, clipped to the crop.
// A pupil outside the crop, or on its top or left edge, was not found.
func pupilRect(pupil *pigo.Puploc, side, cols, rows int) (image.Rectangle, bool) {
	if pupil == nil || pupil.Row <= 0 || pupil.Col <= 0 || pupil.Row >= rows || pupil.Col >= cols {
		return image.Rectangle{}, false
	}
	r := image.Rect(
		pupil.Col-side/2,
		pupil.Row-side/2,
		pupil.Col+side/2,
		pupil.Row+side/2,
	).Intersect(image.Rect(0, 0, cols, rows))
	return r, !r.Empty()
}
