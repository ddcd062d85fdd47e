package game

import (
	"fmt"

	"github.com/tomz197/fatcat/internal/object"
	"github.com/tomz197/fatcat/internal/physics"
)

// recorder captures every collaborator call in order.
type recorder struct {
	events     []string
	score      int
	finalScore int
	visible    map[ScreenName]bool
	pickupOn   bool
	poses      map[object.EntityID]physics.Vector2
	bounds     physics.Bounds
}

func newRecorder(w, h float64) *recorder {
	return &recorder{
		finalScore: -1,
		visible:    make(map[ScreenName]bool),
		poses:      make(map[object.EntityID]physics.Vector2),
		bounds:     physics.Bounds{Width: w, Height: h},
	}
}

func (r *recorder) collaborators() Collaborators {
	return Collaborators{Renderer: r, Audio: r, Display: r, Screens: r, Viewport: r}
}

func (r *recorder) PlaceEntity(id object.EntityID, pos physics.Vector2, _ object.Facing) {
	r.poses[id] = pos
}

func (r *recorder) ShowPickup(physics.Vector2) {
	r.pickupOn = true
	r.events = append(r.events, "show_pickup")
}

func (r *recorder) HidePickup() {
	r.pickupOn = false
	r.events = append(r.events, "hide_pickup")
}

func (r *recorder) PlayLoop(t Track) { r.events = append(r.events, "loop:"+string(t)) }
func (r *recorder) Stop(t Track)     { r.events = append(r.events, "stop:"+string(t)) }
func (r *recorder) PlayOnce(c Cue)   { r.events = append(r.events, "cue:"+string(c)) }

func (r *recorder) SetScore(v int) {
	r.score = v
	r.events = append(r.events, fmt.Sprintf("score:%d", v))
}

func (r *recorder) SetFinalScore(v int) {
	r.finalScore = v
	r.events = append(r.events, fmt.Sprintf("final:%d", v))
}

func (r *recorder) Show(n ScreenName) { r.visible[n] = true }
func (r *recorder) Hide(n ScreenName) { r.visible[n] = false }

func (r *recorder) Bounds() physics.Bounds { return r.bounds }

func (r *recorder) count(event string) int {
	n := 0
	for _, e := range r.events {
		if e == event {
			n++
		}
	}
	return n
}

func (r *recorder) reset() { r.events = nil }
