// Package render rasterises emotion cards.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jmylchreest/mindlog/internal/blob"
	"github.com/jmylchreest/mindlog/internal/grain"
	"github.com/jmylchreest/mindlog/internal/selection"
)

// Card layout.
const (
	CornerRadius  = 30
	LabelInset    = 22
	LabelSize     = 20
	LabelTracking = 0.14 // em
)

// LabelColour is the label ink, rgba(0,0,0,0.75).
var LabelColour = color.NRGBA{A: 191}

// Background is the card fill behind the blobs.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Options tune rasterisation.
type Options struct {
	// Downsample renders each blob layer at 1/Downsample resolution before
	// blurring. Blurred shapes lose nothing visible and blurring gets much cheaper.
	Downsample int

	// RoundCorners clears the pixels outside the card's rounded rectangle.
	RoundCorners bool
}

// DefaultOptions returns the options used for file output.
func DefaultOptions() Options {
	return Options{Downsample: 4, RoundCorners: true}
}

// Renderer draws cards onto RGBA canvases.
type Renderer struct {
	face   font.Face
	opts   Options
	logger hclog.Logger
}

// New creates a Renderer with the embedded label font.
func New(opts Options, logger hclog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Downsample < 1 {
		opts.Downsample = 1
	}

	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse label font: %w", err)
	}

	return &Renderer{
		face: truetype.NewFace(ttf, &truetype.Options{
			Size:    LabelSize,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
		opts:   opts,
		logger: logger.Named("render"),
	}, nil
}

// Render draws a card: background, blobs, grain and labels.
func (r *Renderer) Render(card selection.Card) *image.NRGBA {
	bounds := image.Rect(0, 0, blob.CardWidth, blob.CardHeight)
	canvas := image.NewNRGBA(bounds)
	draw.Draw(canvas, bounds, image.NewUniform(Background), image.Point{}, draw.Src)

	scratch := image.NewNRGBA(bounds)
	for _, b := range card.Result.Blobs {
		r.drawBlob(canvas, scratch, b)
	}

	if card.Grain != nil {
		Overlay(canvas, card.Grain.Image, grainAlpha(card.Grain))
	}

	if label := card.Label(); label != "" {
		r.drawLabels(canvas, label)
	}

	if r.opts.RoundCorners {
		roundCorners(canvas, CornerRadius)
	}

	r.logger.Trace("rendered card", "blobs", len(card.Result.Blobs), "label", card.Label())
	return canvas
}

// grainAlpha combines the per-pixel noise alpha with the surface opacity.
func grainAlpha(s *grain.Surface) float64 {
	return float64(grain.Alpha) / 255 * s.OpacityValue()
}

// roundCorners makes pixels outside the rounded rectangle transparent,
// with one pixel of anti-aliasing along the arc.
func roundCorners(img *image.NRGBA, radius int) {
	b := img.Bounds()
	rad := float64(radius)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cx, cy, ok := cornerCentre(x, y, b, radius)
			if !ok {
				continue
			}
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			cover := math.Min(1, math.Max(0, rad-d+0.5))
			if cover >= 1 {
				continue
			}
			i := img.PixOffset(x, y)
			img.Pix[i+3] = uint8(float64(img.Pix[i+3]) * cover)
		}
	}
}

// cornerCentre returns the arc centre for pixels inside a corner square.
func cornerCentre(x, y int, b image.Rectangle, radius int) (float64, float64, bool) {
	var cx, cy float64
	switch {
	case x < b.Min.X+radius:
		cx = float64(b.Min.X + radius)
	case x >= b.Max.X-radius:
		cx = float64(b.Max.X - radius)
	default:
		return 0, 0, false
	}
	switch {
	case y < b.Min.Y+radius:
		cy = float64(b.Min.Y + radius)
	case y >= b.Max.Y-radius:
		cy = float64(b.Max.Y - radius)
	default:
		return 0, 0, false
	}
	return cx, cy, true
}
