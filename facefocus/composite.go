package facefocus

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// FaceRegion is a copy of the frame pixels inside Rect.
type FaceRegion struct {
	Rect   image.Rectangle
	Pixels *image.NRGBA
}

// CaptureRegions copies the pixels of frame inside each rectangle, in order.
func CaptureRegions(frame image.Image, rects []image.Rectangle) []FaceRegion {
	regions := make([]FaceRegion, 0, len(rects))
	for _, r := range rects {
		regions = append(regions, FaceRegion{Rect: r, Pixels: imaging.Crop(frame, r)})
	}
	return regions
}

// Compositor blurs a frame and puts the face regions back on top.
type Compositor struct {
	Sigma float64
}

// Composite returns a new frame: frame blurred with a Gaussian of standard
// deviation c.Sigma, with every region copied over the blur at its rectangle.
// The regions are owned by the compositor from here on.
func (c Compositor) Composite(frame image.Image, regions []FaceRegion) *image.RGBA {
	blurred := imaging.Blur(frame, c.Sigma)

	out := image.NewRGBA(blurred.Bounds())
	draw.Draw(out, out.Bounds(), blurred, image.Point{}, draw.Src)
	for _, region := range regions {
		draw.Draw(out, region.Rect, region.Pixels, image.Point{}, draw.Src)
	}
	return out
}
