// Package emotion provides the fixed table of emotions and their colours.
package emotion

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrUnknown is returned when a name or index does not resolve to an emotion.
var ErrUnknown = errors.New("unknown emotion")

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r,g,b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#c40a0a").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// Color converts the RGB value to an opaque color.RGBA.
func (rgb RGB) Color() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Emotion is a named colour from the palette.
type Emotion struct {
	Name string `json:"name"`
	RGB  RGB    `json:"rgb"`
}

// Outer ring of Plutchik's wheel, in palette order.
var table = [...]Emotion{
	{Name: "Rage", RGB: RGB{R: 196, G: 10, B: 10}},
	{Name: "Vigilance", RGB: RGB{R: 218, G: 85, B: 0}},
	{Name: "Ecstasy", RGB: RGB{R: 255, G: 185, B: 0}},
	{Name: "Admiration", RGB: RGB{R: 22, G: 120, B: 30}},
	{Name: "Terror", RGB: RGB{R: 0, G: 115, B: 95}},
	{Name: "Amazement", RGB: RGB{R: 28, G: 90, B: 195}},
	{Name: "Grief", RGB: RGB{R: 65, G: 30, B: 155}},
	{Name: "Loathing", RGB: RGB{R: 115, G: 20, B: 170}},
}

// Count is the number of emotions in the table.
const Count = len(table)

// FallbackIndex is the emotion shown while nothing is selected.
const FallbackIndex = 1

// All returns a copy of the emotion table.
func All() []Emotion {
	out := make([]Emotion, Count)
	copy(out, table[:])
	return out
}

// Valid reports whether i is a table index.
func Valid(i int) bool {
	return i >= 0 && i < Count
}

// At returns the emotion at index i.
func At(i int) (Emotion, error) {
	if !Valid(i) {
		return Emotion{}, fmt.Errorf("%w: index %d (valid: 0-%d)", ErrUnknown, i, Count-1)
	}
	return table[i], nil
}

// MustAt returns the emotion at index i and panics if i is out of range.
func MustAt(i int) Emotion {
	e, err := At(i)
	if err != nil {
		panic(err)
	}
	return e
}

// Fallback returns the placeholder emotion.
func Fallback() Emotion {
	return table[FallbackIndex]
}

// IndexOf returns the table index for a name, ignoring case.
func IndexOf(name string) (int, error) {
	for i, e := range table {
		if strings.EqualFold(e.Name, name) {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q (valid: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
}

// Parse resolves either a table index or an emotion name.
func Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if !Valid(n) {
			return -1, fmt.Errorf("%w: index %d (valid: 0-%d)", ErrUnknown, n, Count-1)
		}
		return n, nil
	}
	return IndexOf(s)
}

// Names returns the emotion names in palette order.
func Names() []string {
	names := make([]string, Count)
	for i, e := range table {
		names[i] = e.Name
	}
	return names
}

// Label returns the upper-case display label used on cards.
func (e Emotion) Label() string {
	return strings.ToUpper(e.Name)
}
