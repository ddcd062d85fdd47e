package object

import (
	"math"
	"testing"

	"github.com/tomz197/fatcat/internal/physics"
)

var defaultCurve = SpeedCurve{Base: 2, Increment: 0.5, Divisor: 500}

func TestSpeedCurveSteps(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{0, 2.0},
		{100, 2.0},
		{499, 2.0},
		{500, 2.5},
		{999, 2.5},
		{1000, 3.0},
		{2600, 4.5},
	}
	for _, tt := range tests {
		if got := defaultCurve.At(tt.score); got != tt.want {
			t.Fatalf("At(%d) = %f, want %f", tt.score, got, tt.want)
		}
	}
}

func TestSpeedCurveMonotonic(t *testing.T) {
	prev := defaultCurve.At(0)
	for score := 0; score <= 10000; score += 100 {
		cur := defaultCurve.At(score)
		if cur < prev {
			t.Fatalf("speed decreased at score %d: %f < %f", score, cur, prev)
		}
		prev = cur
	}
}

func TestSeekMovesExactlySpeed(t *testing.T) {
	from := physics.Vector2{X: 0, Y: 0}
	to := physics.Vector2{X: 3, Y: 0}
	got, facing := Seek(from, to, 2)
	if got != (physics.Vector2{X: 2, Y: 0}) {
		t.Fatalf("position = %v, want {2 0}", got)
	}
	if facing != FacingRight {
		t.Fatalf("facing = %v, want right", facing)
	}
	if rem := to.Sub(got).Len(); rem != 1 {
		t.Fatalf("remaining distance = %f, want 1", rem)
	}
}

func TestSeekDiagonal(t *testing.T) {
	got, facing := Seek(physics.Vector2{X: 10, Y: 10}, physics.Vector2{X: 4, Y: 2}, 5)
	if math.Abs(got.X-7) > 1e-9 || math.Abs(got.Y-6) > 1e-9 {
		t.Fatalf("position = %v, want {7 6}", got)
	}
	if facing != FacingLeft {
		t.Fatalf("facing = %v, want left", facing)
	}
}

func TestSeekZeroDistance(t *testing.T) {
	p := physics.Vector2{X: 12.5, Y: 40}
	got, _ := Seek(p, p, 2)
	if got != p {
		t.Fatalf("position = %v, want unchanged %v", got, p)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("position is NaN")
	}
}

func TestPursuerChaseUsesScore(t *testing.T) {
	cat := NewPursuer(10)
	target := Entity{Position: physics.Vector2{X: 100, Y: 0}}
	cat.Chase(target, 1000, defaultCurve)
	if cat.Position.X != 3 {
		t.Fatalf("x = %f, want 3 at score 1000", cat.Position.X)
	}
}

func TestPlayerFollowPointer(t *testing.T) {
	p := NewPlayer(80)
	p.Reset(physics.Vector2{X: 400, Y: 300})

	p.FollowPointer(300, 200)
	if p.Position != (physics.Vector2{X: 260, Y: 160}) {
		t.Fatalf("position = %v, want pointer-centered {260 160}", p.Position)
	}
	if p.Facing != FacingLeft {
		t.Fatalf("facing = %v, want left", p.Facing)
	}

	p.FollowPointer(300, 500)
	if p.Facing != FacingLeft {
		t.Fatalf("facing changed on zero horizontal displacement")
	}

	p.FollowPointer(301, 500)
	if p.Facing != FacingRight {
		t.Fatalf("facing = %v, want right", p.Facing)
	}
}

func TestSpawnContainment(t *testing.T) {
	s := NewPickupSpawner(60, physics.NewRNG(3))
	for _, b := range []physics.Bounds{{800, 600}, {60, 60}, {100, 4000}} {
		for i := 0; i < 1000; i++ {
			p := s.Spawn(b)
			if !p.Active {
				t.Fatalf("spawned pickup is inactive")
			}
			if p.Position.X < 0 || p.Position.X > b.Width-60 || p.Position.Y < 0 || p.Position.Y > b.Height-60 {
				t.Fatalf("pickup at %v escapes %v", p.Position, b)
			}
		}
	}
}

func TestEntityClampTo(t *testing.T) {
	e := Entity{Position: physics.Vector2{X: 900, Y: -3}, Width: 50, Height: 50}
	e.ClampTo(physics.Bounds{Width: 640, Height: 480})
	if e.Position != (physics.Vector2{X: 590, Y: 0}) {
		t.Fatalf("position = %v, want {590 0}", e.Position)
	}
}
