package facefocus

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// sharpenKernel sums to 1, so flat areas keep their value.
var sharpenKernel = [9]float64{
	-1, -1, -1,
	-1, 9, -1,
	-1, -1, -1,
}

// Sharpen returns a sharpened copy of img with its origin at (0, 0).
// Pixels on the border reuse their nearest neighbor inside img.
func Sharpen(img image.Image) *image.NRGBA {
	return imaging.Convolve3x3(img, sharpenKernel, nil)
}

// SharpenRegion sharpens the pixels of frame inside r in place and returns
// the sharpened pixels.
func SharpenRegion(frame *image.RGBA, r image.Rectangle) *image.NRGBA {
	sharp := Sharpen(frame.SubImage(r))
	draw.Draw(frame, r, sharp, image.Point{}, draw.Src)
	return sharp
}
