// Package grain paints the film-grain overlay drawn on top of a card.
package grain

import (
	"image"
	"math"
	"strconv"

	"github.com/jmylchreest/mindlog/internal/blob"
	"github.com/jmylchreest/mindlog/internal/random"
)

// Alpha is the fixed per-pixel alpha of the noise.
const Alpha = 210

// Surface is the target the noise is painted onto.
type Surface struct {
	Width   int
	Height  int
	Opacity string // display opacity, e.g. "0.55"
	Image   *image.NRGBA
}

// NewSurface allocates a surface of card size.
func NewSurface() *Surface {
	return &Surface{
		Width:  blob.CardWidth,
		Height: blob.CardHeight,
		Image:  image.NewNRGBA(image.Rect(0, 0, blob.CardWidth, blob.CardHeight)),
	}
}

// OpacityValue parses the display opacity back into a number.
func (s *Surface) OpacityValue() float64 {
	v, err := strconv.ParseFloat(s.Opacity, 64)
	if err != nil {
		return 0
	}
	return v
}

// Paint resizes s to card size, sets its display opacity and overwrites every
// pixel with independent greyscale noise. Nothing from the previous frame survives.
func Paint(src random.Source, s *Surface, opacity float64) {
	opacity = math.Min(1, math.Max(0, opacity))

	s.Width = blob.CardWidth
	s.Height = blob.CardHeight
	s.Opacity = strconv.FormatFloat(opacity, 'f', -1, 64)

	bounds := image.Rect(0, 0, s.Width, s.Height)
	if s.Image == nil || s.Image.Bounds() != bounds {
		s.Image = image.NewNRGBA(bounds)
	}

	pix := s.Image.Pix
	for i := 0; i < len(pix); i += 4 {
		v := uint8(src.Float64() * 255)
		pix[i] = v
		pix[i+1] = v
		pix[i+2] = v
		pix[i+3] = Alpha
	}
}
