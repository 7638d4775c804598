package facefocus

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Label texts.
const (
	SmileLabel   = "Smile Detected"
	NoSmileLabel = "No Smile Detected"
	TitleLabel   = "Face Detection"
)

const (
	strokeWidth = 3
	labelWidth  = 120
	labelHeight = 15
	fontSize    = 14
)

var labelFont *truetype.Font

func init() {
	var err error
	labelFont, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// MarkKind is the shape a Mark paints.
type MarkKind int

// Mark kinds.
const (
	MarkOutline MarkKind = iota
	MarkFill
	MarkText
)

// A Mark is one drawing operation on a frame.
type Mark struct {
	Kind  MarkKind
	Rect  image.Rectangle // MarkOutline, MarkFill
	At    image.Point     // MarkText baseline origin
	Text  string
	Role  Role
	Width float64
}

// FaceAnnotation is what gets drawn for one valid face. All rectangles are
// in frame coordinates.
type FaceAnnotation struct {
	Rect  image.Rectangle
	Eyes  []image.Rectangle
	Smile bool
}

// Renderer draws detection results onto frames.
type Renderer struct {
	palette       Palette
	scalingFactor float64
	face          font.Face
}

// NewRenderer returns a renderer whose label boxes grow with scalingFactor.
func NewRenderer(palette Palette, scalingFactor float64) *Renderer {
	return &Renderer{
		palette:       palette,
		scalingFactor: scalingFactor,
		face:          truetype.NewFace(labelFont, &truetype.Options{Size: fontSize}),
	}
}

// Plan lists the marks for a frame: per face its outline, its eyes, a label
// box and the smile text; then every frame-wide eye; then the face count.
func (r *Renderer) Plan(faces []FaceAnnotation, frameEyes []image.Rectangle) []Mark {
	var marks []Mark
	for _, f := range faces {
		marks = append(marks, outline(f.Rect, FaceOutline))
		for _, eye := range f.Eyes {
			marks = append(marks, outline(eye, EyeOutline))
		}

		label := image.Rect(0, 0, scale(labelWidth, r.scalingFactor), scale(labelHeight, r.scalingFactor)).Add(f.Rect.Min)
		marks = append(marks, Mark{Kind: MarkFill, Rect: label, Role: FaceOutline})

		text := Mark{Kind: MarkText, At: f.Rect.Min.Add(image.Pt(3, 20)), Text: NoSmileLabel, Role: NoSmileText}
		if f.Smile {
			text.Text, text.Role = SmileLabel, SmileText
		}
		marks = append(marks, text)
	}
	for _, eye := range frameEyes {
		marks = append(marks, outline(eye, EyeOutline))
	}
	return append(marks, FaceCountMark(len(faces)))
}

// FaceCountMark reports the number of valid faces in the top-left corner.
func FaceCountMark(n int) Mark {
	return Mark{Kind: MarkText, At: image.Pt(5, 40), Text: fmt.Sprintf("Number of faces found: %d", n), Role: EyeOutline}
}

// TitleMark is the program title drawn above the face count.
func TitleMark() Mark {
	return Mark{Kind: MarkText, At: image.Pt(5, 20), Text: TitleLabel, Role: EyeOutline}
}

func outline(r image.Rectangle, role Role) Mark {
	return Mark{Kind: MarkOutline, Rect: r, Role: role, Width: strokeWidth}
}

// Annotate plans and paints the marks for faces onto frame.
func (r *Renderer) Annotate(frame *image.RGBA, faces []FaceAnnotation, frameEyes []image.Rectangle) {
	r.Paint(frame, r.Plan(faces, frameEyes))
}

// Paint draws marks onto frame in order. Anything outside the frame is clipped.
func (r *Renderer) Paint(frame *image.RGBA, marks []Mark) {
	dc := gg.NewContextForRGBA(frame)
	dc.SetFontFace(r.face)
	for _, m := range marks {
		dc.SetColor(r.palette.Color(m.Role))
		switch m.Kind {
		case MarkOutline:
			dc.DrawRectangle(float64(m.Rect.Min.X), float64(m.Rect.Min.Y), float64(m.Rect.Dx()), float64(m.Rect.Dy()))
			dc.SetLineWidth(m.Width)
			dc.Stroke()
		case MarkFill:
			dc.DrawRectangle(float64(m.Rect.Min.X), float64(m.Rect.Min.Y), float64(m.Rect.Dx()), float64(m.Rect.Dy()))
			dc.Fill()
		case MarkText:
			dc.DrawString(m.Text, float64(m.At.X), float64(m.At.Y))
		}
	}
}
