package tui

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/jmylchreest/mindlog/internal/grain"
	"github.com/jmylchreest/mindlog/internal/selection"
)

// pageColour is the backdrop transparent card corners are composited onto.
var pageColour = color.NRGBA{R: 14, G: 14, B: 14, A: 255}

// preview caches the scaled raster of the last drawn card. Every regeneration
// or grain repaint produces a new grain surface, so its pointer identifies the
// card.
type preview struct {
	key  *grain.Surface
	w, h int
	img  *image.NRGBA
}

func (a *App) previewImage(card selection.Card, w, h int) *image.NRGBA {
	p := &a.preview
	if p.img != nil && card.Grain != nil && p.key == card.Grain && p.w == w && p.h == h {
		return p.img
	}

	full := a.renderer.Render(card)
	dst := image.NewNRGBA(image.Rect(0, 0, w, h*2))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), full, full.Bounds(), xdraw.Src, nil)

	*p = preview{key: card.Grain, w: w, h: h, img: dst}
	return dst
}

// drawPreview paints the card with upper half blocks: the foreground is the
// top pixel and the background the bottom one.
func (a *App) drawPreview(card selection.Card, r rect) {
	img := a.previewImage(card, r.w, r.h)
	for cy := 0; cy < r.h; cy++ {
		for cx := 0; cx < r.w; cx++ {
			top := cellColour(img.NRGBAAt(cx, cy*2))
			bottom := cellColour(img.NRGBAAt(cx, cy*2+1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			a.screen.SetContent(r.x+cx, r.y+cy, '▀', nil, style)
		}
	}
}

func cellColour(c color.NRGBA) tcell.Color {
	c = flatten(c, pageColour)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// flatten composites c over an opaque backdrop.
func flatten(c, backdrop color.NRGBA) color.NRGBA {
	a := uint32(c.A)
	mix := func(fg, bg uint8) uint8 {
		return uint8((uint32(fg)*a + uint32(bg)*(255-a) + 127) / 255)
	}
	return color.NRGBA{
		R: mix(c.R, backdrop.R),
		G: mix(c.G, backdrop.G),
		B: mix(c.B, backdrop.B),
		A: 255,
	}
}
