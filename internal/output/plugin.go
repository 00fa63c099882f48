// Package output provides the interface and registry for card output writers.
package output

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"maps"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/mindlog/internal/selection"
)

// DefaultName is the base file name used when none is given.
const DefaultName = "card"

// Request is the input to a writer.
type Request struct {
	// Card is the card to write.
	Card selection.Card

	// Name is the base file name without extension.
	Name string
}

// BaseName returns the request name or DefaultName.
func (r Request) BaseName() string {
	if r.Name == "" {
		return DefaultName
	}
	return r.Name
}

// Plugin represents an output writer that turns a card into files.
type Plugin interface {
	// Name returns the writer's name (e.g., "png", "svg").
	Name() string

	// Description returns a human-readable description of the writer.
	Description() string

	// Generate creates output file(s) for the card.
	// Returns map of filename -> content to support writers that emit several files.
	Generate(req Request) (map[string][]byte, error)

	// RegisterFlags registers writer-specific flags with a cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the writer configuration is valid.
	Validate() error
}

// Registry holds all registered output writers.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new writer registry.
func NewRegistry(plugins ...Plugin) *Registry {
	r := &Registry{plugins: make(map[string]Plugin)}
	for _, p := range plugins {
		r.Register(p)
	}
	return r
}

// Register adds a writer to the registry.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a writer by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered writer names, sorted.
func (r *Registry) List() []string {
	return slices.Sorted(maps.Keys(r.plugins))
}

// All returns all registered writers.
func (r *Registry) All() map[string]Plugin {
	return maps.Clone(r.plugins)
}

// Select resolves writer names. A single "all" selects every writer.
// Writers are returned in the order named, or sorted by name for "all".
func (r *Registry) Select(names []string) ([]Plugin, error) {
	if len(names) == 1 && names[0] == "all" {
		names = r.List()
	}

	selected := make([]Plugin, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		plugin, ok := r.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown output: %s (available: %s)", name, strings.Join(r.List(), ", "))
		}
		seen[name] = true
		selected = append(selected, plugin)
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no outputs selected")
	}
	return selected, nil
}

// EncodePNG encodes img as PNG. Shared by writers that embed raster data.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI encodes img as a base64 PNG data URI.
func DataURI(img image.Image) (string, error) {
	data, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
