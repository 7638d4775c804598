//go:build !gocv

package facefocus

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadHaar_WithoutGocv(t *testing.T) {
	d, err := LoadHaar("haarcascade_frontalface_default.xml", CascadeParams{})
	assert.Nil(t, d)
	assert.True(t, errors.Is(err, ErrBackendUnavailable))

	_, err = New(&Config{Backend: BackendHaar}, nil)
	assert.True(t, errors.Is(err, ErrModelLoad))
	assert.True(t, errors.Is(err, ErrBackendUnavailable))
}
