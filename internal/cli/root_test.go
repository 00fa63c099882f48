package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/mindlog/internal/blob"
	"github.com/jmylchreest/mindlog/internal/config"
	"github.com/jmylchreest/mindlog/internal/emotion"
	pngout "github.com/jmylchreest/mindlog/internal/output/png"
	"github.com/jmylchreest/mindlog/internal/render"
	"github.com/jmylchreest/mindlog/internal/selection"
)

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "mindlog version ") {
		t.Errorf("Unexpected version output: %q", out)
	}
}

func TestEmotionsCommand(t *testing.T) {
	out, _, err := execute(t, "emotions")
	if err != nil {
		t.Fatalf("emotions failed: %v", err)
	}

	for _, e := range emotion.All() {
		if !strings.Contains(out, e.Name) || !strings.Contains(out, e.RGB.Hex()) {
			t.Errorf("Expected %s %s in output", e.Name, e.RGB.Hex())
		}
	}
	if !strings.Contains(out, "rgb(218,85,0)") {
		t.Error("Expected rgb() notation in output")
	}
	if strings.Contains(out, "\033[") {
		t.Error("Non-terminal output should not contain ANSI sequences")
	}
	if lines := strings.Count(out, "\n"); lines != emotion.Count+2 {
		t.Errorf("Expected %d lines, got %d", emotion.Count+2, lines)
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		g         globals
		wantLevel hclog.Level
		wantErr   bool
	}{
		{name: "default", g: globals{logFormat: "text"}, wantLevel: hclog.Info},
		{name: "verbose", g: globals{verbose: true}, wantLevel: hclog.Debug},
		{name: "quiet", g: globals{quiet: true, logFormat: "json"}, wantLevel: hclog.Error},
		{name: "bad format", g: globals{logFormat: "yaml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := tt.g.newLogger(&bytes.Buffer{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("newLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := logger.GetLevel(); got != tt.wantLevel {
				t.Errorf("level = %v, want %v", got, tt.wantLevel)
			}
		})
	}
}

func TestJSONLogFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := (&globals{logFormat: "json"}).newLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello", "emotion", "rage")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"emotion":"rage"`) {
		t.Errorf("Expected JSON log line, got %q", buf.String())
	}
}

func TestPlayRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "png scale", args: []string{"--png.scale", "9"}, wantErr: "png: invalid scale"},
		{name: "blobs", args: []string{"--blobs", "0"}, wantErr: "blob count must be positive"},
		{name: "blur", args: []string{"--blur", "NaN"}, wantErr: "blur ceiling must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"play"}, tt.args...)...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestCardSaver(t *testing.T) {
	r, err := render.New(render.DefaultOptions(), hclog.NewNullLogger())
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	save := newCardSaver(pngout.New(r), dir, hclog.NewNullLogger())

	card := selection.Card{
		Active: []int{6},
		Result: blob.Result{Dominant: emotion.MustAt(6)},
		Params: config.Defaults(),
	}

	where, err := save(card)
	if err != nil {
		t.Fatalf("save() error = %v", err)
	}
	want := filepath.Join(dir, "card-grief.png")
	if where != want {
		t.Errorf("save() = %s, want %s", where, want)
	}
	if _, err := os.Stat(want); err != nil {
		t.Errorf("saved file missing: %v", err)
	}
}

func TestSaveName(t *testing.T) {
	tests := []struct {
		name string
		card selection.Card
		want string
	}{
		{name: "placeholder", card: selection.Card{Result: blob.Result{Dominant: emotion.Fallback()}, Placeholder: true}, want: "card"},
		{name: "dominant", card: selection.Card{Result: blob.Result{Dominant: emotion.MustAt(5)}}, want: "card-amazement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := saveName(tt.card); got != tt.want {
				t.Errorf("saveName() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPrintPreviewColour(t *testing.T) {
	card := selection.Card{
		Active: []int{0},
		Result: blob.Result{
			Dominant: emotion.MustAt(0),
			Blobs:    []blob.Blob{{Width: 200, Height: 300, Opacity: 0.5, Blur: 40, Colour: emotion.RGB{R: 196, G: 10, B: 10}}},
		},
		Params: config.Defaults(),
	}

	var buf bytes.Buffer
	printPreview(&buf, card, true)
	out := buf.String()

	if !strings.Contains(out, "\033[48;2;196;10;10m") {
		t.Error("Expected dominant swatch")
	}
	if !strings.Contains(out, "200x300") || !strings.Contains(out, "Swatch") {
		t.Errorf("Expected blob table, got:\n%s", out)
	}
}
