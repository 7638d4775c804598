package facefocus

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/require"
)

// patternFrame returns an opaque frame whose pixels all differ from their neighbors.
func patternFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{
				R: uint8((x*7 + y*3) % 256),
				G: uint8((x * y) % 256),
				B: uint8((x + 2*y) % 256),
				A: 255,
			})
		}
	}
	return img
}

func uniformFrame(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func checkerFrame(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(0)
			if (x+y)%2 == 0 {
				v = 255
			}
			img.SetRGBA(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func cloneFrame(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	copy(out.Pix, img.Pix)
	return out
}

// requireSamePixel compares got at (x, y) with want at (x-off.X, y-off.Y).
func requireSamePixel(t *testing.T, got *image.RGBA, want image.Image, x, y int, off image.Point) {
	t.Helper()
	w := color.RGBAModel.Convert(want.At(x-off.X, y-off.Y)).(color.RGBA)
	require.Equal(t, w, got.RGBAAt(x, y), "pixel (%d, %d)", x, y)
}

type fakeDetector struct {
	rects  []image.Rectangle
	calls  int
	sizes  []image.Point
	closed bool
	err    error
}

func (f *fakeDetector) Detect(img *image.Gray) []image.Rectangle {
	f.calls++
	f.sizes = append(f.sizes, img.Bounds().Size())
	return f.rects
}

func (f *fakeDetector) Close() error {
	f.closed = true
	return f.err
}
