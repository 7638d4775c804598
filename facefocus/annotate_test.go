package facefocus

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textMarks(marks []Mark) []Mark {
	var out []Mark
	for _, m := range marks {
		if m.Kind == MarkText {
			out = append(out, m)
		}
	}
	return out
}

func countOutlines(marks []Mark, role Role) int {
	n := 0
	for _, m := range marks {
		if m.Kind == MarkOutline && m.Role == role {
			n++
		}
	}
	return n
}

func TestRendererPlan(t *testing.T) {
	r := NewRenderer(DefaultPalette, 2)
	face := image.Rect(20, 20, 120, 120)

	t.Run("no smile", func(t *testing.T) {
		marks := r.Plan([]FaceAnnotation{{Rect: face}}, nil)
		texts := textMarks(marks)
		require.Len(t, texts, 2)
		assert.Equal(t, NoSmileLabel, texts[0].Text)
		assert.Equal(t, NoSmileText, texts[0].Role)
		assert.Equal(t, image.Pt(23, 40), texts[0].At)
		assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, DefaultPalette.Color(texts[0].Role))
	})

	t.Run("smile", func(t *testing.T) {
		texts := textMarks(r.Plan([]FaceAnnotation{{Rect: face, Smile: true}}, nil))
		assert.Equal(t, SmileLabel, texts[0].Text)
		assert.Equal(t, SmileText, texts[0].Role)
	})

	t.Run("face outline and scaled label box", func(t *testing.T) {
		marks := r.Plan([]FaceAnnotation{{Rect: face}}, nil)
		require.GreaterOrEqual(t, len(marks), 3)
		assert.Equal(t, Mark{Kind: MarkOutline, Rect: face, Role: FaceOutline, Width: 3}, marks[0])
		assert.Equal(t, Mark{Kind: MarkFill, Rect: image.Rect(20, 20, 260, 50), Role: FaceOutline}, marks[1])
	})

	t.Run("eyes per face are drawn for every face", func(t *testing.T) {
		eyes := []image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(30, 0, 40, 10), image.Rect(60, 0, 70, 10)}
		faces := []FaceAnnotation{{Rect: face, Eyes: eyes}, {Rect: face.Add(image.Pt(150, 0)), Eyes: eyes}}
		marks := r.Plan(faces, nil)
		assert.Equal(t, 6, countOutlines(marks, EyeOutline))
		assert.Equal(t, 2, countOutlines(marks, FaceOutline))
	})

	t.Run("frame eyes are drawn once", func(t *testing.T) {
		eyes := []image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(30, 0, 40, 10)}
		faces := []FaceAnnotation{{Rect: face}, {Rect: face.Add(image.Pt(150, 0))}}
		marks := r.Plan(faces, eyes)
		assert.Equal(t, 2, countOutlines(marks, EyeOutline))
	})

	t.Run("face count comes last", func(t *testing.T) {
		marks := r.Plan([]FaceAnnotation{{Rect: face}, {Rect: face}}, nil)
		last := marks[len(marks)-1]
		assert.Equal(t, "Number of faces found: 2", last.Text)
		assert.Equal(t, image.Pt(5, 40), last.At)
		assert.Equal(t, EyeOutline, last.Role)
	})

	t.Run("no faces still reports the count", func(t *testing.T) {
		marks := r.Plan(nil, nil)
		require.Len(t, marks, 1)
		assert.Equal(t, "Number of faces found: 0", marks[0].Text)
	})
}

func TestRendererPaint(t *testing.T) {
	r := NewRenderer(DefaultPalette, 1)
	black := color.RGBA{A: 255}

	t.Run("fill", func(t *testing.T) {
		frame := uniformFrame(50, 50, black)
		r.Paint(frame, []Mark{{Kind: MarkFill, Rect: image.Rect(10, 10, 30, 30), Role: FaceOutline}})
		assert.Equal(t, color.RGBA{R: 255, A: 255}, frame.RGBAAt(20, 20))
		assert.Equal(t, black, frame.RGBAAt(5, 5))
		assert.Equal(t, black, frame.RGBAAt(35, 35))
	})

	t.Run("outline leaves the inside alone", func(t *testing.T) {
		frame := uniformFrame(50, 50, black)
		r.Paint(frame, []Mark{{Kind: MarkOutline, Rect: image.Rect(10, 10, 40, 40), Role: EyeOutline, Width: 3}})
		assert.Equal(t, color.RGBA{B: 255, A: 255}, frame.RGBAAt(10, 25))
		assert.Equal(t, black, frame.RGBAAt(25, 25))
	})

	t.Run("text changes pixels", func(t *testing.T) {
		frame := uniformFrame(200, 50, black)
		r.Paint(frame, []Mark{TitleMark()})
		changed := false
		for i := 0; i < len(frame.Pix) && !changed; i += 4 {
			changed = frame.Pix[i+2] != 0
		}
		assert.True(t, changed)
	})

	t.Run("out of bounds is clipped", func(t *testing.T) {
		frame := uniformFrame(20, 20, black)
		assert.NotPanics(t, func() {
			r.Paint(frame, []Mark{{Kind: MarkFill, Rect: image.Rect(-10, -10, 100, 100), Role: SmileText}})
		})
		assert.Equal(t, color.RGBA{G: 255, A: 255}, frame.RGBAAt(0, 0))
	})
}

func TestPalette(t *testing.T) {
	p := NewPalette(
		color.RGBA{R: 1, A: 255},
		color.RGBA{G: 2, A: 255},
		color.RGBA{B: 3, A: 255},
		color.RGBA{R: 4, A: 255},
	)
	assert.Equal(t, color.RGBA{R: 1, A: 255}, p.Color(FaceOutline))
	assert.Equal(t, color.RGBA{G: 2, A: 255}, p.Color(EyeOutline))
	assert.Equal(t, color.RGBA{B: 3, A: 255}, p.Color(SmileText))
	assert.Equal(t, color.RGBA{R: 4, A: 255}, p.Color(NoSmileText))
	assert.Equal(t, color.RGBA{}, p.Color(Role(17)))
}
