//go:build gocv

package camera

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/multierr"
	"gocv.io/x/gocv"

	"thaitanloi365/go-face-focus/facefocus"
)

// Webcam reads frames from a local capture device.
type Webcam struct {
	capture *gocv.VideoCapture
	img     gocv.Mat
}

// OpenWebcam opens capture device id.
func OpenWebcam(id int) (*Webcam, error) {
	capture, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, fmt.Errorf("%w: device %d: %v", ErrCaptureUnavailable, id, err)
	}
	if !capture.IsOpened() {
		capture.Close()
		return nil, fmt.Errorf("%w: device %d", ErrCaptureUnavailable, id)
	}
	return &Webcam{capture: capture, img: gocv.NewMat()}, nil
}

func (w *Webcam) Read() (*image.RGBA, error) {
	if ok := w.capture.Read(&w.img); !ok {
		return nil, fmt.Errorf("capture device closed")
	}
	if w.img.Empty() {
		return nil, ErrEmptyFrame
	}
	img, err := w.img.ToImage()
	if err != nil {
		return nil, err
	}
	return facefocus.ToRGBA(img), nil
}

func (w *Webcam) Close() error {
	return multierr.Combine(w.img.Close(), w.capture.Close())
}

// Window shows frames in a native window.
type Window struct {
	window *gocv.Window
}

// NewWindow opens a window titled name.
func NewWindow(name string) (*Window, error) {
	return &Window{window: gocv.NewWindow(name)}, nil
}

func (w *Window) Show(img image.Image) error {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return err
	}
	defer mat.Close()
	w.window.IMShow(mat)
	return nil
}

func (w *Window) WaitKey(delay time.Duration) int {
	return w.window.WaitKey(int(delay.Milliseconds()))
}

func (w *Window) Close() error {
	return w.window.Close()
}
