package facefocus

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// OpenFrame decodes an image file into a frame.
func OpenFrame(path string) (*image.RGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("can not open %s: %w", path, err)
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img as an *image.RGBA with its origin at (0, 0), copying
// only when needed.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// formatFor picks the encoding from the file extension; no extension means JPEG.
func formatFor(path string) (imaging.Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return imaging.JPEG, nil
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return 0, fmt.Errorf("unsupported image format %q: %w", ext, err)
	}
	return format, nil
}

// EncodeFrame writes img to dst in the format implied by name.
func EncodeFrame(dst io.Writer, name string, img image.Image) error {
	format, err := formatFor(name)
	if err != nil {
		return err
	}
	return imaging.Encode(dst, img, format, imaging.JPEGQuality(100))
}

// SaveFrame writes img to path in the format implied by its extension.
func SaveFrame(img image.Image, path string) error {
	if _, err := formatFor(path); err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeFrame(out, path, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// ProcessFile runs the pipeline over one image file and writes the result.
func (p *Pipeline) ProcessFile(source, destination string) (*Report, error) {
	frame, err := OpenFrame(source)
	if err != nil {
		return nil, err
	}
	out, report := p.Process(frame)
	if err := SaveFrame(out, destination); err != nil {
		return nil, fmt.Errorf("can not save %s: %w", destination, err)
	}
	return report, nil
}
