package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"

	"github.com/jmylchreest/mindlog/internal/blob"
)

// blurReach is how many standard deviations of blur a layer is padded by.
const blurReach = 3

// drawBlob composites one blurred ellipse onto canvas. scratch must have the
// canvas bounds; only the blob's clipped rectangle is written to it.
func (r *Renderer) drawBlob(canvas, scratch *image.NRGBA, b blob.Blob) {
	f := float64(r.opts.Downsample)
	pad := math.Ceil(b.Blur * blurReach)

	x0, y0 := math.Floor(b.Left-pad), math.Floor(b.Top-pad)
	lw := int(math.Ceil((b.Width + 2*pad) / f))
	lh := int(math.Ceil((b.Height + 2*pad) / f))
	if lw <= 0 || lh <= 0 {
		return
	}

	layer := ellipseLayer(b, x0, y0, lw, lh, f)
	blurred := imaging.Blur(layer, b.Blur/f)

	dst := image.Rect(int(x0), int(y0), int(x0)+lw*int(f), int(y0)+lh*int(f))
	clip := dst.Intersect(canvas.Bounds())
	if clip.Empty() {
		return
	}

	xdraw.BiLinear.Scale(scratch, dst, blurred, blurred.Bounds(), xdraw.Src, nil)
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(b.Opacity * 255))})
	draw.DrawMask(canvas, clip, scratch, clip.Min, mask, image.Point{}, draw.Over)
}

// ellipseLayer rasterises the blob's ellipse at 1/f scale. Every pixel carries
// the blob colour so blurring only spreads alpha and never darkens the edge.
func ellipseLayer(b blob.Blob, x0, y0 float64, lw, lh int, f float64) *image.NRGBA {
	layer := image.NewNRGBA(image.Rect(0, 0, lw, lh))
	cx, cy := b.Left+b.Width/2, b.Top+b.Height/2
	rx, ry := b.Width/2, b.Height/2

	for py := range lh {
		for px := range lw {
			fx := x0 + (float64(px)+0.5)*f
			fy := y0 + (float64(py)+0.5)*f
			dx, dy := (fx-cx)/rx, (fy-cy)/ry

			i := layer.PixOffset(px, py)
			layer.Pix[i] = b.Colour.R
			layer.Pix[i+1] = b.Colour.G
			layer.Pix[i+2] = b.Colour.B
			if dx*dx+dy*dy <= 1 {
				layer.Pix[i+3] = 255
			}
		}
	}
	return layer
}
