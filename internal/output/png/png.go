// Package png provides the raster card output writer.
package png

import (
	"fmt"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mindlog/internal/blob"
	"github.com/jmylchreest/mindlog/internal/output"
	"github.com/jmylchreest/mindlog/internal/render"
)

const maxScale = 4

// Plugin implements the output.Plugin interface for PNG images.
type Plugin struct {
	renderer *render.Renderer
	scale    int
}

// New creates a new PNG writer drawing with renderer. A nil renderer must be
// supplied with SetRenderer before Generate.
func New(renderer *render.Renderer) *Plugin {
	return &Plugin{
		renderer: renderer,
		scale:    1,
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "png"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Render the card as a PNG image"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.scale, "png.scale", 1, fmt.Sprintf("Output scale factor (1-%d)", maxScale))
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	if p.renderer == nil {
		return fmt.Errorf("no renderer configured")
	}
	if p.scale < 1 || p.scale > maxScale {
		return fmt.Errorf("invalid scale: %d (must be 1-%d)", p.scale, maxScale)
	}
	return nil
}

// setScale sets the output scale factor.
func (p *Plugin) setScale(scale int) {
	p.scale = scale
}

// SetRenderer sets the renderer used by Generate.
func (p *Plugin) SetRenderer(renderer *render.Renderer) {
	p.renderer = renderer
}

// Generate renders the card and encodes it.
func (p *Plugin) Generate(req output.Request) (map[string][]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	img := p.renderer.Render(req.Card)
	if p.scale > 1 {
		img = imaging.Resize(img, blob.CardWidth*p.scale, blob.CardHeight*p.scale, imaging.Lanczos)
	}

	data, err := output.EncodePNG(img)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{req.BaseName() + ".png": data}, nil
}
