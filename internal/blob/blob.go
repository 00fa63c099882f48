// Package blob generates the randomly placed, coloured and blurred shapes
// that make up an emotion card.
package blob

import (
	"math"

	"github.com/jmylchreest/mindlog/internal/emotion"
	"github.com/jmylchreest/mindlog/internal/random"
)

// Card canvas dimensions shared by the generator, the grain painter and the renderers.
const (
	CardWidth  = 350
	CardHeight = 600
)

// Sampling ranges.
const (
	dominantBias = 0.7

	minWidth, maxWidth   = 100.0, 320.0
	minHeight, maxHeight = 160.0, 500.0

	// A blob may hang up to 45% of its size past the top/left edge and
	// 45% past the bottom/right edge (it keeps 55% inside on that side).
	bleedLead  = 0.45
	bleedTrail = 0.55

	minOpacity, maxOpacity = 0.4, 0.92
	minBlurFactor          = 0.35

	jitterRed   = 25.0
	jitterGreen = 20.0
	jitterBlue  = 20.0
)

// Blob is a single translucent blurred ellipse.
type Blob struct {
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Left    float64     `json:"left"`
	Top     float64     `json:"top"`
	Opacity float64     `json:"opacity"`
	Blur    float64     `json:"blur"`
	Colour  emotion.RGB `json:"colour"`
}

// Result is one generation: the blobs and the emotion that biased them.
type Result struct {
	Blobs    []Blob          `json:"blobs"`
	Dominant emotion.Emotion `json:"dominant"`
}

// Generate produces blobCount blobs from the emotions at the active indices.
//
// active must be non-empty and contain only valid table indices; callers
// render a placeholder instead of calling Generate on an empty selection.
func Generate(src random.Source, active []int, blobCount int, blurMax float64) Result {
	if len(active) == 0 {
		panic("blob: Generate called with an empty selection")
	}

	colours := make([]emotion.Emotion, len(active))
	for i, idx := range active {
		colours[i] = emotion.MustAt(idx)
	}

	dominant := pick(src, colours)

	blobs := make([]Blob, 0, max(blobCount, 0))
	for range blobCount {
		base := dominant
		if src.Float64() >= dominantBias {
			base = pick(src, colours)
		}

		w := random.Range(src, minWidth, maxWidth)
		h := random.Range(src, minHeight, maxHeight)

		blobs = append(blobs, Blob{
			Width:   w,
			Height:  h,
			Left:    random.Range(src, -w*bleedLead, CardWidth-w*bleedTrail),
			Top:     random.Range(src, -h*bleedLead, CardHeight-h*bleedTrail),
			Opacity: random.Range(src, minOpacity, maxOpacity),
			Blur:    random.Range(src, blurMax*minBlurFactor, blurMax),
			Colour: emotion.RGB{
				R: jitter(src, base.RGB.R, jitterRed),
				G: jitter(src, base.RGB.G, jitterGreen),
				B: jitter(src, base.RGB.B, jitterBlue),
			},
		})
	}

	return Result{Blobs: blobs, Dominant: dominant}
}

func pick(src random.Source, colours []emotion.Emotion) emotion.Emotion {
	return colours[random.Intn(src, len(colours))]
}

// jitter offsets a channel by U[-spread, spread], clamps to [0,255] and truncates.
func jitter(src random.Source, channel uint8, spread float64) uint8 {
	v := float64(channel) + random.Range(src, -spread, spread)
	return uint8(math.Trunc(clamp(v, 0, 255)))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
