// Package html provides a standalone HTML page output writer.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"slices"
	"strconv"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mindlog/internal/blob"
	"github.com/jmylchreest/mindlog/internal/emotion"
	"github.com/jmylchreest/mindlog/internal/output"
	"github.com/jmylchreest/mindlog/internal/render"
	"github.com/jmylchreest/mindlog/internal/selection"
)

//go:embed *.tmpl
var templates embed.FS

const defaultTitle = "MindLog"

// Plugin implements the output.Plugin interface for HTML pages.
type Plugin struct {
	title string
}

// New creates a new HTML writer.
func New() *Plugin {
	return &Plugin{title: defaultTitle}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "html"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Write a standalone HTML page showing the card and palette"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.title, "html.title", defaultTitle, "Page title")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// setTitle sets the page title.
func (p *Plugin) setTitle(title string) {
	p.title = title
}

// Data holds values for the HTML template.
type Data struct {
	Title          string
	Width, Height  int
	Radius         int
	Inset          int
	FontSize       int
	Tracking       string
	Label          string
	DominantColour string
	Blobs          []Blob
	Grain          string
	GrainOpacity   string
	Palette        []Swatch
}

// Blob holds the inline style values of one blob element.
type Blob struct {
	Width, Height string
	Left, Top     string
	Background    string
	Opacity       string
	Blur          string
}

// Swatch is one palette entry.
type Swatch struct {
	Name       string
	Background string
	Active     bool
}

// Generate creates the HTML page.
func (p *Plugin) Generate(req output.Request) (map[string][]byte, error) {
	tmplContent, err := templates.ReadFile("card.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read HTML template: %w", err)
	}

	tmpl, err := template.New("card.html").Parse(string(tmplContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML template: %w", err)
	}

	data, err := p.prepareData(req.Card)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute HTML template: %w", err)
	}

	return map[string][]byte{req.BaseName() + ".html": buf.Bytes()}, nil
}

func (p *Plugin) prepareData(card selection.Card) (Data, error) {
	title := p.title
	if title == "" {
		title = defaultTitle
	}

	data := Data{
		Title:          title,
		Width:          blob.CardWidth,
		Height:         blob.CardHeight,
		Radius:         render.CornerRadius,
		Inset:          render.LabelInset,
		FontSize:       render.LabelSize,
		Tracking:       strconv.FormatFloat(render.LabelTracking, 'f', -1, 64),
		Label:          card.Label(),
		DominantColour: card.Result.Dominant.RGB.String(),
	}

	for _, b := range card.Result.Blobs {
		data.Blobs = append(data.Blobs, Blob{
			Width:      px(b.Width),
			Height:     px(b.Height),
			Left:       px(b.Left),
			Top:        px(b.Top),
			Background: b.Colour.String(),
			Opacity:    px(b.Opacity),
			Blur:       strconv.FormatFloat(b.Blur, 'f', 1, 64),
		})
	}

	for i, e := range emotion.All() {
		data.Palette = append(data.Palette, Swatch{
			Name:       e.Name,
			Background: e.RGB.String(),
			Active:     slices.Contains(card.Active, i),
		})
	}

	if card.Grain != nil && card.Grain.Image != nil {
		uri, err := output.DataURI(card.Grain.Image)
		if err != nil {
			return Data{}, fmt.Errorf("failed to encode grain: %w", err)
		}
		data.Grain = uri
		data.GrainOpacity = card.Grain.Opacity
	}

	return data, nil
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
