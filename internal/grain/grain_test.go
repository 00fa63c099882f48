package grain

import (
	"image"
	"testing"

	"github.com/jmylchreest/mindlog/internal/random"
)

func TestPaint(t *testing.T) {
	s := &Surface{}
	Paint(random.New(), s, 0.55)

	if s.Width != 350 || s.Height != 600 {
		t.Fatalf("size = %dx%d, want 350x600", s.Width, s.Height)
	}
	if s.Opacity != "0.55" {
		t.Errorf("Opacity = %q, want \"0.55\"", s.Opacity)
	}
	if got := s.Image.Bounds(); got != image.Rect(0, 0, 350, 600) {
		t.Fatalf("image bounds = %v, want 350x600", got)
	}

	pix := s.Image.Pix
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+1] || pix[i] != pix[i+2] {
			t.Fatalf("pixel %d not grey: %v", i/4, pix[i:i+3])
		}
		if pix[i+3] != Alpha {
			t.Fatalf("pixel %d alpha = %d, want %d", i/4, pix[i+3], Alpha)
		}
	}
}

func TestPaintOverwrites(t *testing.T) {
	s := NewSurface()
	Paint(random.NewSequence(1.0), s, 1)
	if s.Image.Pix[0] != 255 {
		t.Fatalf("first paint value = %d, want 255", s.Image.Pix[0])
	}

	Paint(random.NewSequence(0.0), s, 0.2)
	for i := 0; i < len(s.Image.Pix); i += 4 {
		if s.Image.Pix[i] != 0 {
			t.Fatalf("pixel %d = %d after repaint, want 0", i/4, s.Image.Pix[i])
		}
	}
	if s.OpacityValue() != 0.2 {
		t.Errorf("OpacityValue() = %v, want 0.2", s.OpacityValue())
	}
}

func TestPaintResizesWrongSurface(t *testing.T) {
	s := &Surface{Width: 10, Height: 10, Image: image.NewNRGBA(image.Rect(0, 0, 10, 10))}
	Paint(random.New(), s, 0.5)

	if s.Image.Bounds().Dx() != 350 || s.Image.Bounds().Dy() != 600 {
		t.Errorf("image not resized, bounds = %v", s.Image.Bounds())
	}
}

func TestPaintClampsOpacity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{-0.5, "0"},
		{0, "0"},
		{1, "1"},
		{1.7, "1"},
	}

	for _, tt := range tests {
		s := NewSurface()
		Paint(random.NewSequence(0.5), s, tt.in)
		if s.Opacity != tt.want {
			t.Errorf("Paint(opacity=%v) Opacity = %q, want %q", tt.in, s.Opacity, tt.want)
		}
	}
}

func TestPaintDrawsEveryPixel(t *testing.T) {
	src := random.NewSequence(0.5)
	Paint(src, NewSurface(), 0.55)

	if got, want := src.Calls(), 350*600; got != want {
		t.Errorf("draws = %d, want %d", got, want)
	}
}
