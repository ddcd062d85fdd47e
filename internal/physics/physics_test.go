package physics

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"edge touching on x", Rect{0, 0, 10, 10}, Rect{10, 0, 10, 10}, false},
		{"edge touching on y", Rect{0, 0, 10, 10}, Rect{0, 10, 10, 10}, false},
		{"corner touching", Rect{0, 0, 10, 10}, Rect{10, 10, 10, 10}, false},
		{"partial overlap", Rect{0, 0, 10, 10}, Rect{9, 9, 10, 10}, true},
		{"contained", Rect{0, 0, 100, 100}, Rect{40, 40, 10, 10}, true},
		{"identical", Rect{5, 5, 10, 10}, Rect{5, 5, 10, 10}, true},
		{"apart", Rect{0, 0, 10, 10}, Rect{50, 50, 10, 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Fatalf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Fatalf("Overlaps is not symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestVectorOps(t *testing.T) {
	v := Vector2{3, 4}
	if v.Len() != 5 {
		t.Fatalf("len = %f, want 5", v.Len())
	}
	if got := v.Sub(Vector2{1, 1}); got != (Vector2{2, 3}) {
		t.Fatalf("got %v, want {2 3}", got)
	}
}

func TestPointInStaysInside(t *testing.T) {
	rng := NewRNG(7)
	sizes := []Bounds{{800, 600}, {60, 60}, {61, 1000}, {1920, 1080}}
	for _, b := range sizes {
		for i := 0; i < 2000; i++ {
			p := rng.PointIn(b, 60, 60)
			if p.X < 0 || p.X > b.Width-60 || p.Y < 0 || p.Y > b.Height-60 {
				t.Fatalf("point %v outside %v for 60x60 footprint", p, b)
			}
		}
	}
}

func TestPointInClampsWhenFootprintTooLarge(t *testing.T) {
	rng := NewRNG(1)
	p := rng.PointIn(Bounds{Width: 30, Height: 500}, 60, 60)
	if p.X != 0 {
		t.Fatalf("x = %f, want 0 when bounds narrower than footprint", p.X)
	}
	if p.Y < 0 || p.Y > 440 {
		t.Fatalf("y = %f outside [0, 440]", p.Y)
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %f vs %f", i, x, y)
		}
	}
}

func TestClamp(t *testing.T) {
	b := Bounds{Width: 100, Height: 50}
	tests := []struct {
		in, want Vector2
	}{
		{Vector2{-5, -5}, Vector2{0, 0}},
		{Vector2{95, 45}, Vector2{80, 30}},
		{Vector2{10, 10}, Vector2{10, 10}},
	}
	for _, tt := range tests {
		if got := b.Clamp(tt.in, 20, 20); got != tt.want {
			t.Fatalf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := b.Clamp(Vector2{30, 10}, 200, 20); got.X != 0 || math.IsNaN(got.Y) {
		t.Fatalf("oversized footprint clamp = %v, want x=0", got)
	}
}
