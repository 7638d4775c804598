package facefocus

import "image/color"

// Role names what a palette color is used for.
type Role int

// Palette roles.
const (
	FaceOutline Role = iota
	EyeOutline
	SmileText
	NoSmileText

	numRoles
)

// Palette maps each role to a color. The zero value is all transparent black;
// use NewPalette or DefaultPalette.
type Palette struct {
	colors [numRoles]color.RGBA
}

// NewPalette builds a palette from one color per role.
func NewPalette(faceOutline, eyeOutline, smileText, noSmileText color.RGBA) Palette {
	return Palette{colors: [numRoles]color.RGBA{
		FaceOutline: faceOutline,
		EyeOutline:  eyeOutline,
		SmileText:   smileText,
		NoSmileText: noSmileText,
	}}
}

// DefaultPalette is red faces, blue eyes, green smiles and white otherwise.
var DefaultPalette = NewPalette(
	color.RGBA{R: 255, A: 255},
	color.RGBA{B: 255, A: 255},
	color.RGBA{G: 255, A: 255},
	color.RGBA{R: 255, G: 255, B: 255, A: 255},
)

// Color returns the color for role.
func (p Palette) Color(role Role) color.RGBA {
	if role < 0 || role >= numRoles {
		return color.RGBA{}
	}
	return p.colors[role]
}
