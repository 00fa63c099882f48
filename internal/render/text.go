package render

import (
	"image"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// drawLabels writes the label top-left and, rotated half a turn, bottom-right.
func (r *Renderer) drawLabels(canvas *image.NRGBA, label string) {
	text := r.labelImage(label)
	if text.Bounds().Empty() {
		return
	}

	topLeft := image.Pt(LabelInset, LabelInset)
	draw.Draw(canvas, text.Bounds().Add(topLeft), text, image.Point{}, draw.Over)

	rotated := imaging.Rotate180(text)
	b := canvas.Bounds()
	bottomRight := image.Pt(
		b.Max.X-LabelInset-rotated.Bounds().Dx(),
		b.Max.Y-LabelInset-rotated.Bounds().Dy(),
	)
	draw.Draw(canvas, rotated.Bounds().Add(bottomRight), rotated, image.Point{}, draw.Over)
}

// labelImage renders label with letter spacing onto a tight transparent image.
func (r *Renderer) labelImage(label string) *image.NRGBA {
	m := r.face.Metrics()
	width := r.MeasureLabel(label).Ceil()
	height := (m.Ascent + m.Descent).Ceil()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelColour),
		Face: r.face,
		Dot:  fixed.Point26_6{Y: m.Ascent},
	}
	for _, ch := range label {
		d.DrawString(string(ch))
		d.Dot.X += tracking()
	}
	return img
}

// MeasureLabel returns the advance of label including letter spacing.
func (r *Renderer) MeasureLabel(label string) fixed.Int26_6 {
	var w fixed.Int26_6
	for _, ch := range label {
		w += font.MeasureString(r.face, string(ch)) + tracking()
	}
	return w
}

// tracking is the letter spacing in 26.6 fixed point, rounded to 1/64 px.
func tracking() fixed.Int26_6 {
	return fixed.Int26_6(math.Round(LabelTracking * LabelSize * 64))
}
