package random

import "testing"

func TestNewProducesUnitInterval(t *testing.T) {
	src := New()
	for range 1000 {
		v := src.Float64()
		if v < 0 || v >= 1 {
			t.Fatalf("Float64() = %v, want [0,1)", v)
		}
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		lo, hi float64
		want   float64
	}{
		{name: "low end", value: 0, lo: 100, hi: 320, want: 100},
		{name: "midpoint", value: 0.5, lo: 100, hi: 320, want: 210},
		{name: "negative range", value: 0.5, lo: -25, hi: 25, want: 0},
		{name: "inverted bounds", value: 0.25, lo: 10, hi: 0, want: 7.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Range(NewSequence(tt.value), tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("Range() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntn(t *testing.T) {
	tests := []struct {
		value float64
		n     int
		want  int
	}{
		{0, 8, 0},
		{0.124, 8, 0},
		{0.125, 8, 1},
		{0.999, 8, 7},
		{1, 8, 7},
		{0.5, 1, 0},
	}

	for _, tt := range tests {
		if got := Intn(NewSequence(tt.value), tt.n); got != tt.want {
			t.Errorf("Intn(%v, %d) = %d, want %d", tt.value, tt.n, got, tt.want)
		}
	}
}

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(0.1, 0.2)
	got := []float64{s.Float64(), s.Float64(), s.Float64()}
	want := []float64{0.1, 0.2, 0.1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Calls() != 3 {
		t.Errorf("Calls() = %d, want 3", s.Calls())
	}

	if v := NewSequence().Float64(); v != 0 {
		t.Errorf("empty sequence Float64() = %v, want 0", v)
	}
}
