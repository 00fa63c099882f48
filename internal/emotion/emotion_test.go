package emotion

import (
	"errors"
	"strings"
	"testing"
)

func TestTable(t *testing.T) {
	tests := []struct {
		index int
		name  string
		rgb   RGB
	}{
		{0, "Rage", RGB{R: 196, G: 10, B: 10}},
		{1, "Vigilance", RGB{R: 218, G: 85, B: 0}},
		{2, "Ecstasy", RGB{R: 255, G: 185, B: 0}},
		{3, "Admiration", RGB{R: 22, G: 120, B: 30}},
		{4, "Terror", RGB{R: 0, G: 115, B: 95}},
		{5, "Amazement", RGB{R: 28, G: 90, B: 195}},
		{6, "Grief", RGB{R: 65, G: 30, B: 155}},
		{7, "Loathing", RGB{R: 115, G: 20, B: 170}},
	}

	if Count != len(tests) {
		t.Fatalf("Count = %d, want %d", Count, len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := At(tt.index)
			if err != nil {
				t.Fatalf("At(%d) error = %v", tt.index, err)
			}
			if e.Name != tt.name || e.RGB != tt.rgb {
				t.Errorf("At(%d) = %+v, want %s %+v", tt.index, e, tt.name, tt.rgb)
			}
		})
	}
}

func TestAllReturnsCopy(t *testing.T) {
	all := All()
	all[0].Name = "Calm"

	if MustAt(0).Name != "Rage" {
		t.Error("mutating All() result changed the table")
	}
}

func TestAtOutOfRange(t *testing.T) {
	for _, i := range []int{-1, Count, 100} {
		if _, err := At(i); !errors.Is(err, ErrUnknown) {
			t.Errorf("At(%d) error = %v, want ErrUnknown", i, err)
		}
	}
}

func TestFallback(t *testing.T) {
	if got := Fallback().Name; got != "Vigilance" {
		t.Errorf("Fallback() = %s, want Vigilance", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "exact name", input: "Rage", want: 0},
		{name: "lower case", input: "grief", want: 6},
		{name: "upper case with spaces", input: "  LOATHING ", want: 7},
		{name: "index", input: "2", want: 2},
		{name: "index out of range", input: "8", wantErr: true},
		{name: "negative index", input: "-1", wantErr: true},
		{name: "unknown name", input: "joy", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknown) {
					t.Errorf("Parse(%q) error = %v, want ErrUnknown", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestRGBFormatting(t *testing.T) {
	rgb := RGB{R: 196, G: 10, B: 10}

	if got := rgb.Hex(); got != "#c40a0a" {
		t.Errorf("Hex() = %s, want #c40a0a", got)
	}
	if got := rgb.String(); got != "rgb(196,10,10)" {
		t.Errorf("String() = %s, want rgb(196,10,10)", got)
	}
	if c := rgb.Color(); c.A != 255 || c.R != 196 {
		t.Errorf("Color() = %+v, want opaque rgb(196,10,10)", c)
	}
}

func TestLabel(t *testing.T) {
	if got := MustAt(5).Label(); got != "AMAZEMENT" {
		t.Errorf("Label() = %s, want AMAZEMENT", got)
	}
}

func TestSwatch(t *testing.T) {
	got := Swatch(RGB{R: 1, G: 2, B: 3}, 4)
	if !strings.HasPrefix(got, "\033[48;2;1;2;3m") {
		t.Errorf("Swatch() prefix = %q", got)
	}
	if !strings.Contains(got, "    "+ansiReset) {
		t.Errorf("Swatch() should contain 4 spaces and reset, got %q", got)
	}
}
