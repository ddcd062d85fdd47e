package game

import (
	"testing"

	"github.com/tomz197/fatcat/internal/physics"
)

func TestDriverRearmsWhileRunning(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	var q FrameQueue
	d := NewDriver(&q, s)

	d.Start()
	parkPursuer(s)
	if q.Len() != 1 {
		t.Fatalf("pending = %d, want 1 after start", q.Len())
	}
	for i := 0; i < 5; i++ {
		q.Advance()
		parkPursuer(s)
	}
	if got := s.Snapshot().Ticks; got != 5 {
		t.Fatalf("ticks = %d, want 5", got)
	}
	if q.Len() != 1 {
		t.Fatalf("pending = %d, want 1 while running", q.Len())
	}
}

func TestDriverHaltsOnEnd(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	var q FrameQueue
	d := NewDriver(&q, s)

	d.Start()
	s.pursuer.Position = s.player.Position
	q.Advance()
	if s.State() != StateEnded {
		t.Fatalf("state = %v, want ended", s.State())
	}
	if q.Len() != 0 || d.Armed() {
		t.Fatalf("driver re-armed after end")
	}

	// A stale frame firing after the end must not advance anything.
	q.OnNextFrame(func() { s.Tick() })
	q.Advance()
	if s.Snapshot().Ticks != 1 {
		t.Fatalf("stale frame advanced an ended session")
	}

	if !d.Restart() || q.Len() != 1 {
		t.Fatalf("restart did not re-arm the driver")
	}
}

func TestDriverDoesNotDoubleArm(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RestartWhileRunning = true
	s, _ := newTestSession(t, cfg)
	var q FrameQueue
	d := NewDriver(&q, s)

	d.Start()
	if !d.Restart() {
		t.Fatalf("restart while running should be honored")
	}
	if q.Len() != 1 {
		t.Fatalf("pending = %d, want 1", q.Len())
	}
	s.pursuer.Position = physics.Vector2{X: -1e6, Y: -1e6}
	q.Advance()
	if s.Snapshot().Ticks != 1 {
		t.Fatalf("ticks = %d, want 1", s.Snapshot().Ticks)
	}
}
