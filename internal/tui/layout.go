package tui

import (
	"github.com/jmylchreest/mindlog/internal/blob"
	"github.com/jmylchreest/mindlog/internal/emotion"
)

const (
	// Rows used by everything except the card preview: title, gap, label,
	// palette, gap, buttons, params, help, status.
	chromeRows = 9

	maxPreviewWidth = 70
	minPreviewWidth = 14

	swatchGap      = 2
	generateButton = "[ GENERATE ]"
	resetButton    = "[ RESET ]"
	buttonGap      = 3
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// layout holds the screen positions of every element for one terminal size.
type layout struct {
	width, height int
	tooSmall      bool

	title    int
	card     rect
	label    int
	palette  int
	compact  bool
	swatches [emotion.Count]rect
	generate rect
	reset    rect
	params   int
	help     int
	status   int
}

type action int

const (
	actionNone action = iota
	actionToggle
	actionGenerate
	actionReset
)

// previewRows returns the cell height of a preview w cells wide. Each cell
// holds two vertically stacked pixels.
func previewRows(w int) int {
	return (w*blob.CardHeight/blob.CardWidth + 1) / 2
}

// previewCols is the inverse of previewRows.
func previewCols(h int) int {
	return h * 2 * blob.CardWidth / blob.CardHeight
}

func computeLayout(width, height int) layout {
	l := layout{width: width, height: height}

	pw := min(width-2, maxPreviewWidth)
	ph := previewRows(pw)
	if avail := height - chromeRows; ph > avail {
		ph = avail
		pw = previewCols(ph)
	}
	if pw < minPreviewWidth || ph < 1 {
		l.tooSmall = true
		return l
	}

	l.title = 0
	l.card = rect{x: (width - pw) / 2, y: 2, w: pw, h: ph}
	l.label = l.card.y + ph
	l.palette = l.label + 1

	full := paletteWidth(false)
	l.compact = full > width
	x := (width - paletteWidth(l.compact)) / 2
	for i, e := range emotion.All() {
		w := swatchWidth(e, l.compact)
		l.swatches[i] = rect{x: x, y: l.palette, w: w, h: 1}
		x += w + swatchGap
	}

	buttons := len(generateButton) + buttonGap + len(resetButton)
	bx := (width - buttons) / 2
	l.generate = rect{x: bx, y: l.palette + 2, w: len(generateButton), h: 1}
	l.reset = rect{x: bx + len(generateButton) + buttonGap, y: l.generate.y, w: len(resetButton), h: 1}

	l.params = l.generate.y + 1
	l.help = l.params + 1
	l.status = l.help + 1
	return l
}

// swatchWidth is "1██" in compact mode and "██ Name" otherwise.
func swatchWidth(e emotion.Emotion, compact bool) int {
	if compact {
		return 3
	}
	return 3 + len(e.Name)
}

func paletteWidth(compact bool) int {
	w := swatchGap * (emotion.Count - 1)
	for _, e := range emotion.All() {
		w += swatchWidth(e, compact)
	}
	return w
}

// hit maps a click to an action and, for swatches, the emotion index.
func (l layout) hit(x, y int) (action, int) {
	if l.tooSmall {
		return actionNone, 0
	}
	for i, r := range l.swatches {
		if r.contains(x, y) {
			return actionToggle, i
		}
	}
	switch {
	case l.card.contains(x, y), l.generate.contains(x, y):
		return actionGenerate, 0
	case l.reset.contains(x, y):
		return actionReset, 0
	}
	return actionNone, 0
}
