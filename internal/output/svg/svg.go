// Package svg provides a vector card output writer.
package svg

import (
	"bytes"
	"embed"
	"fmt"
	"math"
	"strconv"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mindlog/internal/blob"
	"github.com/jmylchreest/mindlog/internal/output"
	"github.com/jmylchreest/mindlog/internal/render"
	"github.com/jmylchreest/mindlog/internal/selection"
)

//go:embed *.tmpl
var templates embed.FS

// Plugin implements the output.Plugin interface for SVG.
type Plugin struct {
	grain bool
}

// New creates a new SVG writer.
func New() *Plugin {
	return &Plugin{grain: true}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "svg"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Write the card as SVG with blur filters and an embedded grain layer"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.grain, "svg.grain", true, "Embed the grain overlay as a PNG image")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// setGrain toggles embedding of the grain overlay.
func (p *Plugin) setGrain(enabled bool) {
	p.grain = enabled
}

// Generate creates the SVG document.
func (p *Plugin) Generate(req output.Request) (map[string][]byte, error) {
	tmplContent, err := templates.ReadFile("card.svg.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read SVG template: %w", err)
	}

	tmpl, err := template.New("card.svg").Funcs(template.FuncMap{
		"xml": template.HTMLEscapeString,
	}).Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SVG template: %w", err)
	}

	data, err := p.prepareData(req.Card)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute SVG template: %w", err)
	}

	return map[string][]byte{req.BaseName() + ".svg": buf.Bytes()}, nil
}

// Data holds values for the SVG template.
type Data struct {
	Width, Height    int
	CentreX, CentreY int
	Radius           int
	Inset            int
	FontSize         int
	Tracking         string
	Blobs            []Blob
	Grain            string
	GrainOpacity     string
	Label            string
}

// Blob holds one ellipse in SVG coordinates.
type Blob struct {
	ID             int
	CX, CY, RX, RY string
	Fill           string
	Opacity        string
	Blur           string
}

func (p *Plugin) prepareData(card selection.Card) (Data, error) {
	data := Data{
		Width:    blob.CardWidth,
		Height:   blob.CardHeight,
		CentreX:  blob.CardWidth / 2,
		CentreY:  blob.CardHeight / 2,
		Radius:   render.CornerRadius,
		Inset:    render.LabelInset,
		FontSize: render.LabelSize,
		Tracking: num(render.LabelTracking * render.LabelSize),
		Label:    card.Label(),
		Blobs:    make([]Blob, len(card.Result.Blobs)),
	}

	for i, b := range card.Result.Blobs {
		data.Blobs[i] = Blob{
			ID:      i,
			CX:      num(b.Left + b.Width/2),
			CY:      num(b.Top + b.Height/2),
			RX:      num(b.Width / 2),
			RY:      num(b.Height / 2),
			Fill:    b.Colour.Hex(),
			Opacity: num(b.Opacity),
			Blur:    strconv.FormatFloat(b.Blur, 'f', 1, 64),
		}
	}

	if p.grain && card.Grain != nil && card.Grain.Image != nil {
		uri, err := output.DataURI(card.Grain.Image)
		if err != nil {
			return Data{}, fmt.Errorf("failed to encode grain: %w", err)
		}
		data.Grain = uri
		data.GrainOpacity = card.Grain.Opacity
	}

	return data, nil
}

// num formats a coordinate with at most two decimals.
func num(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
