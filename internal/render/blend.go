package render

import (
	"image"
	"math"
)

// Overlay blends src onto dst with the CSS "overlay" blend mode at the given
// alpha. dst is treated as an opaque backdrop; src alpha is ignored in favour
// of alpha. Both images are expected to share bounds.
func Overlay(dst *image.NRGBA, src *image.NRGBA, alpha float64) {
	if alpha <= 0 {
		return
	}
	alpha = math.Min(1, alpha)

	area := dst.Bounds().Intersect(src.Bounds())
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			di := dst.PixOffset(x, y)
			si := src.PixOffset(x, y)
			for c := range 3 {
				dst.Pix[di+c] = blendOverlay(dst.Pix[di+c], src.Pix[si+c], alpha)
			}
		}
	}
}

func blendOverlay(backdrop, source uint8, alpha float64) uint8 {
	b := float64(backdrop) / 255
	s := float64(source) / 255

	var o float64
	if b <= 0.5 {
		o = 2 * b * s
	} else {
		o = 1 - 2*(1-b)*(1-s)
	}

	v := b + (o-b)*alpha
	return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
}
