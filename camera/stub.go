//go:build !gocv

package camera

import (
	"errors"
	"fmt"
	"image"
	"time"
)

var errNoGocv = errors.New("built without the gocv tag")

// Webcam is unavailable in builds without the gocv tag.
type Webcam struct{}

// OpenWebcam always fails in builds without the gocv tag.
func OpenWebcam(id int) (*Webcam, error) {
	return nil, fmt.Errorf("%w: device %d: %v", ErrCaptureUnavailable, id, errNoGocv)
}

func (w *Webcam) Read() (*image.RGBA, error) { return nil, errNoGocv }

func (w *Webcam) Close() error { return nil }

// Window is unavailable in builds without the gocv tag.
type Window struct{}

// NewWindow always fails in builds without the gocv tag.
func NewWindow(name string) (*Window, error) {
	return nil, fmt.Errorf("window %q: %w", name, errNoGocv)
}

func (w *Window) Show(image.Image) error { return errNoGocv }

func (w *Window) WaitKey(time.Duration) int { return -1 }

func (w *Window) Close() error { return nil }
