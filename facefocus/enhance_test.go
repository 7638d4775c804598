package facefocus

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSharpen(t *testing.T) {
	t.Run("flat region is a fixed point", func(t *testing.T) {
		c := color.RGBA{R: 90, G: 140, B: 200, A: 255}
		src := uniformFrame(20, 12, c)
		got := Sharpen(src)
		require.Equal(t, src.Bounds(), got.Bounds())
		for y := 0; y < 12; y++ {
			for x := 0; x < 20; x++ {
				require.Equal(t, color.NRGBA{R: 90, G: 140, B: 200, A: 255}, got.NRGBAAt(x, y))
			}
		}
	})

	t.Run("amplifies a bright spot", func(t *testing.T) {
		src := uniformFrame(3, 3, color.RGBA{R: 100, G: 100, B: 100, A: 255})
		src.SetRGBA(1, 1, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		got := Sharpen(src)
		// 9*200 - 8*100 saturates.
		assert.Equal(t, uint8(255), got.NRGBAAt(1, 1).R)
		// 9*100 - 7*100 - 200 = 0 with replicated borders.
		assert.Equal(t, uint8(0), got.NRGBAAt(0, 0).R)
	})
}

func TestSharpenRegion(t *testing.T) {
	frame := patternFrame(60, 50)
	before := cloneFrame(frame)
	r := image.Rect(10, 15, 40, 35)

	sharp := SharpenRegion(frame, r)
	require.Equal(t, image.Rect(0, 0, 30, 20), sharp.Bounds())

	for y := 0; y < 50; y++ {
		for x := 0; x < 60; x++ {
			p := image.Pt(x, y)
			if p.In(r) {
				requireSamePixel(t, frame, sharp, x, y, r.Min)
			} else {
				requireSamePixel(t, frame, before, x, y, image.Point{})
			}
		}
	}
}
