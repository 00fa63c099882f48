// Package tui provides the interactive terminal card generator.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/mindlog/internal/config"
	"github.com/jmylchreest/mindlog/internal/emotion"
	"github.com/jmylchreest/mindlog/internal/render"
	"github.com/jmylchreest/mindlog/internal/selection"
)

// Parameter steps and limits for the keyboard knobs.
const (
	blobStep  = 1
	blobMax   = 30
	blurStep  = 5.0
	blurMin   = 5.0
	blurMax   = 200.0
	grainStep = 5.0
)

const helpText = "1-8 toggle  g generate  r reset  +/- blobs  [/] blur  {/} grain  s save  q quit"

// SaveFunc persists a card and returns a description of where it went.
type SaveFunc func(card selection.Card) (string, error)

var (
	baseStyle   = tcell.StyleDefault.Background(tcell.NewRGBColor(14, 14, 14)).Foreground(tcell.NewRGBColor(170, 170, 170))
	dimStyle    = baseStyle.Foreground(tcell.NewRGBColor(80, 80, 80))
	buttonStyle = baseStyle.Foreground(tcell.ColorWhite).Bold(true)
)

// App is the interactive session. It draws the store's current card and
// turns keys and clicks into store transitions.
type App struct {
	screen   tcell.Screen
	store    *selection.Store
	renderer *render.Renderer
	logger   hclog.Logger
	save     SaveFunc

	layout  layout
	preview preview
	status  string
	pressed bool
}

// New creates an App. The screen is initialised by Run.
func New(screen tcell.Screen, store *selection.Store, renderer *render.Renderer, logger hclog.Logger, save SaveFunc) *App {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &App{
		screen:   screen,
		store:    store,
		renderer: renderer,
		logger:   logger.Named("tui"),
		save:     save,
	}
}

// Run initialises the screen and processes events until the user quits or
// ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if err := a.screen.Init(); err != nil {
		return fmt.Errorf("failed to initialise terminal: %w", err)
	}
	defer a.screen.Fini()

	a.screen.SetStyle(baseStyle)
	a.screen.EnableMouse()
	a.resize()
	a.draw()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("context cancelled")
			return nil
		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil
			}
			a.draw()
		}
	}
}

// handleEvent applies one event. It returns false when the session should end.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.resize()

	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		if down && !a.pressed {
			x, y := ev.Position()
			a.click(x, y)
		}
		a.pressed = down
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.generate()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	switch {
	case r == 'q':
		return false
	case r >= '1' && r < '1'+rune(emotion.Count):
		a.toggle(int(r - '1'))
	case r == 'g' || r == ' ':
		a.generate()
	case r == 'r':
		a.reset()
	case r == '+' || r == '=':
		a.adjustBlobs(blobStep)
	case r == '-':
		a.adjustBlobs(-blobStep)
	case r == ']':
		a.adjustBlur(blurStep)
	case r == '[':
		a.adjustBlur(-blurStep)
	case r == '}':
		a.adjustGrain(grainStep)
	case r == '{':
		a.adjustGrain(-grainStep)
	case r == 's':
		a.saveCard()
	}
	return true
}

func (a *App) click(x, y int) {
	switch act, i := a.layout.hit(x, y); act {
	case actionToggle:
		a.toggle(i)
	case actionGenerate:
		a.generate()
	case actionReset:
		a.reset()
	}
}

func (a *App) toggle(i int) {
	if err := a.store.Toggle(i); err != nil {
		a.logger.Warn("toggle failed", "index", i, "error", err)
		return
	}
	a.status = ""
}

func (a *App) generate() {
	a.store.Generate()
	a.status = ""
}

func (a *App) reset() {
	a.store.Reset()
	a.status = ""
}

func (a *App) adjustBlobs(delta int) {
	n := min(max(a.store.Params().BlobCount+delta, 1), blobMax)
	a.setParam(a.store.SetBlobCount(n))
}

func (a *App) adjustBlur(delta float64) {
	v := min(max(a.store.Params().BlurMax+delta, blurMin), blurMax)
	a.setParam(a.store.SetBlurMax(v))
}

func (a *App) adjustGrain(delta float64) {
	v := min(max(a.store.Params().Grain+delta, 0), 100)
	a.setParam(a.store.SetGrain(v))
}

func (a *App) setParam(err error) {
	if err != nil {
		a.status = err.Error()
	}
}

func (a *App) saveCard() {
	if a.save == nil {
		a.status = "saving is not available"
		return
	}
	where, err := a.save(a.store.Card())
	if err != nil {
		a.logger.Error("save failed", "error", err)
		a.status = "save failed: " + err.Error()
		return
	}
	a.status = "saved " + where
}

func (a *App) resize() {
	w, h := a.screen.Size()
	a.layout = computeLayout(w, h)
}

func (a *App) draw() {
	a.screen.Clear()
	l := a.layout

	if l.tooSmall {
		a.drawCentred(l.height/2, "terminal too small", dimStyle)
		a.screen.Show()
		return
	}

	card := a.store.Card()
	a.drawCentred(l.title, "EMOTION CARD GENERATOR", dimStyle)
	a.drawPreview(card, l.card)

	dominant := card.Result.Dominant.RGB
	a.drawCentred(l.label, card.Label(), baseStyle.Foreground(rgb(dominant)).Bold(true))

	a.drawPalette(card)

	a.drawText(l.generate.x, l.generate.y, generateButton, buttonStyle)
	a.drawText(l.reset.x, l.reset.y, resetButton, baseStyle)

	a.drawCentred(l.params, formatParams(card.Params), dimStyle)
	a.drawCentred(l.help, helpText, dimStyle)
	if a.status != "" {
		a.drawCentred(l.status, a.status, baseStyle)
	}

	a.screen.Show()
}

func (a *App) drawPalette(card selection.Card) {
	active := selection.NewSet(card.Active...)
	for i, e := range emotion.All() {
		r := a.layout.swatches[i]
		on := active.Contains(i)

		glyph := "░░"
		if on {
			glyph = "██"
		}
		swatch := baseStyle.Foreground(rgb(e.RGB))
		text := dimStyle
		if on {
			text = baseStyle.Bold(true)
		}

		if a.layout.compact {
			a.drawText(r.x, r.y, fmt.Sprintf("%d", i+1), text)
			a.drawText(r.x+1, r.y, glyph, swatch)
			continue
		}
		a.drawText(r.x, r.y, glyph, swatch)
		a.drawText(r.x+3, r.y, e.Name, text)
	}
}

func (a *App) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (a *App) drawCentred(y int, s string, style tcell.Style) {
	x := (a.layout.width - len([]rune(s))) / 2
	a.drawText(max(x, 0), y, s, style)
}

func formatParams(p config.Params) string {
	return fmt.Sprintf("blobs %d   blur %g   grain %g", p.BlobCount, p.BlurMax, p.Grain)
}

func rgb(c emotion.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
