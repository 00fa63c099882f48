// Package json provides a machine readable card descriptor output writer.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/mindlog/internal/blob"
	"github.com/jmylchreest/mindlog/internal/config"
	"github.com/jmylchreest/mindlog/internal/emotion"
	"github.com/jmylchreest/mindlog/internal/output"
	"github.com/jmylchreest/mindlog/internal/selection"
)

// Plugin implements the output.Plugin interface for JSON descriptors.
type Plugin struct {
	indent bool
}

// New creates a new JSON writer.
func New() *Plugin {
	return &Plugin{indent: true}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "json"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Write the card geometry and parameters as JSON"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.indent, "json.indent", true, "Indent JSON output")
}

// Validate checks if the plugin configuration is valid.
func (p *Plugin) Validate() error {
	return nil
}

// setIndent toggles indented output.
func (p *Plugin) setIndent(indent bool) {
	p.indent = indent
}

// ColourJSON is a colour in both notations.
type ColourJSON struct {
	Hex string      `json:"hex"`
	RGB emotion.RGB `json:"rgb"`
}

// EmotionJSON is an emotion in the descriptor.
type EmotionJSON struct {
	Index  int        `json:"index"`
	Name   string     `json:"name"`
	Colour ColourJSON `json:"colour"`
}

// CardJSON is the descriptor document.
type CardJSON struct {
	Placeholder  bool          `json:"placeholder"`
	Label        string        `json:"label"`
	Dominant     EmotionJSON   `json:"dominant"`
	Active       []EmotionJSON `json:"active"`
	Params       config.Params `json:"params"`
	GrainOpacity string        `json:"grain_opacity"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Blobs        []blob.Blob   `json:"blobs"`
}

// Generate creates the JSON descriptor.
func (p *Plugin) Generate(req output.Request) (map[string][]byte, error) {
	doc := Describe(req.Card)

	var (
		data []byte
		err  error
	)
	if p.indent {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal card: %w", err)
	}

	return map[string][]byte{req.BaseName() + ".json": append(data, '\n')}, nil
}

// Describe builds the descriptor for card.
func Describe(card selection.Card) CardJSON {
	doc := CardJSON{
		Placeholder: card.Placeholder,
		Label:       card.Label(),
		Dominant:    describeEmotion(card.Result.Dominant),
		Active:      make([]EmotionJSON, 0, len(card.Active)),
		Params:      card.Params,
		Width:       blob.CardWidth,
		Height:      blob.CardHeight,
		Blobs:       card.Result.Blobs,
	}
	if doc.Blobs == nil {
		doc.Blobs = []blob.Blob{}
	}
	if card.Grain != nil {
		doc.GrainOpacity = card.Grain.Opacity
	}

	for _, i := range card.Active {
		e, err := emotion.At(i)
		if err != nil {
			continue
		}
		doc.Active = append(doc.Active, newEmotionJSON(i, e))
	}

	return doc
}

func describeEmotion(e emotion.Emotion) EmotionJSON {
	i, err := emotion.IndexOf(e.Name)
	if err != nil {
		i = -1
	}
	return newEmotionJSON(i, e)
}

func newEmotionJSON(i int, e emotion.Emotion) EmotionJSON {
	return EmotionJSON{
		Index: i,
		Name:  e.Name,
		Colour: ColourJSON{
			Hex: e.RGB.Hex(),
			RGB: e.RGB,
		},
	}
}
