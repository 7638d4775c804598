//go:build !gocv

package camera

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenWebcam_WithoutGocv(t *testing.T) {
	w, err := OpenWebcam(0)
	assert.Nil(t, w)
	assert.True(t, errors.Is(err, ErrCaptureUnavailable))

	_, err = NewWindow("Camera Frame")
	assert.Error(t, err)
}
