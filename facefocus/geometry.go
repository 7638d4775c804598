package facefocus

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// ToFrameSpace maps a rectangle found in the working image back to frame
// coordinates. Origin and size are scaled and rounded independently.
func ToFrameSpace(r image.Rectangle, scalingFactor float64) image.Rectangle {
	x := scale(r.Min.X, scalingFactor)
	y := scale(r.Min.Y, scalingFactor)
	w := scale(r.Dx(), scalingFactor)
	h := scale(r.Dy(), scalingFactor)
	return image.Rect(x, y, x+w, y+h)
}

// IsContained reports whether r lies entirely within a width x height frame.
func IsContained(r image.Rectangle, width, height int) bool {
	return r.Min.X >= 0 && r.Min.Y >= 0 && r.Max.X <= width && r.Max.Y <= height
}

func scale(v int, f float64) int {
	return int(math.Round(float64(v) * f))
}

// WorkingImage returns the grayscale copy of frame shrunk by scalingFactor
// that all full-frame detection runs on.
func WorkingImage(frame image.Image, scalingFactor float64) *image.Gray {
	b := frame.Bounds()
	w := int(float64(b.Dx()) / scalingFactor)
	h := int(float64(b.Dy()) / scalingFactor)
	if w < 1 || h < 1 {
		return image.NewGray(image.Rectangle{})
	}
	return toGray(imaging.Grayscale(imaging.Resize(frame, w, h, imaging.Linear)))
}

// GrayRegion returns a grayscale copy of the pixels of img inside r,
// with its origin at (0, 0).
func GrayRegion(img image.Image, r image.Rectangle) *image.Gray {
	return toGray(imaging.Grayscale(imaging.Crop(img, r)))
}

// toGray keeps the red channel of an image whose channels are already equal.
func toGray(src *image.NRGBA) *image.Gray {
	b := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		srcRow := src.Pix[y*src.Stride:]
		dstRow := dst.Pix[y*dst.Stride:]
		for x := 0; x < b.Dx(); x++ {
			dstRow[x] = srcRow[x*4]
		}
	}
	return dst
}

// grayPixels returns the pixels of img as one row-major slice without padding.
func grayPixels(img *image.Gray) []uint8 {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if img.Stride == w {
		return img.Pix[:w*h]
	}
	pix := make([]uint8, 0, w*h)
	for y := 0; y < h; y++ {
		pix = append(pix, img.Pix[y*img.Stride:y*img.Stride+w]...)
	}
	return pix
}
