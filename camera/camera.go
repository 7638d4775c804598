// Package camera connects a frame source and a display to a per-frame
// processing function.
package camera

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"
)

var (
	// ErrCaptureUnavailable is returned when the capture device cannot be opened.
	ErrCaptureUnavailable = errors.New("capture source unavailable")
	// ErrEmptyFrame is returned by a Source that produced no pixels this time.
	ErrEmptyFrame = errors.New("empty frame")
)

// Source yields frames, blocking until the next one is ready.
type Source interface {
	Read() (*image.RGBA, error)
	Close() error
}

// Sink presents frames and reports key presses.
type Sink interface {
	Show(img image.Image) error
	// WaitKey waits up to delay and returns the pressed key, or -1.
	WaitKey(delay time.Duration) int
	Close() error
}

// ProcessFunc turns a captured frame into the frame to display.
type ProcessFunc func(frame *image.RGBA) *image.RGBA

// Run reads, processes and shows frames until a key is pressed, ctx is done
// or the source fails. It returns the number of frames shown.
func Run(ctx context.Context, src Source, sink Sink, poll time.Duration, process ProcessFunc) (int, error) {
	shown := 0
	for {
		if err := ctx.Err(); err != nil {
			return shown, nil
		}

		frame, err := src.Read()
		if errors.Is(err, ErrEmptyFrame) {
			if sink.WaitKey(poll) > 0 {
				return shown, nil
			}
			continue
		}
		if err != nil {
			return shown, fmt.Errorf("read frame: %w", err)
		}

		if err := sink.Show(process(frame)); err != nil {
			return shown, fmt.Errorf("show frame: %w", err)
		}
		shown++

		if sink.WaitKey(poll) > 0 {
			return shown, nil
		}
	}
}
