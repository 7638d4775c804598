//go:build !gocv

package facefocus

import "fmt"

// LoadHaar always fails in builds without the gocv tag.
func LoadHaar(path string, params CascadeParams) (Detector, error) {
	return nil, fmt.Errorf("%w: haar cascades need a build with -tags gocv", ErrBackendUnavailable)
}
