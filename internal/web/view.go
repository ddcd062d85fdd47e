package web

import (
	"sort"

	"github.com/tomz197/fatcat/internal/game"
	"github.com/tomz197/fatcat/internal/object"
	"github.com/tomz197/fatcat/internal/physics"
)

// view collects what the session tells its collaborators and turns it into
// one FrameMsg per frame.
type view struct {
	cfg        game.Config
	bounds     physics.Bounds
	player     *EntityState
	pursuer    *EntityState
	pickup     *EntityState
	score      int
	finalScore int
	screens    map[game.ScreenName]bool
	sounds     []SoundEvent
}

var (
	_ game.Renderer = (*view)(nil)
	_ game.Audio    = (*view)(nil)
	_ game.Display  = (*view)(nil)
	_ game.Screens  = (*view)(nil)
	_ game.Viewport = (*view)(nil)
)

func newView(cfg game.Config, bounds physics.Bounds) *view {
	return &view{
		cfg:     cfg,
		bounds:  bounds,
		screens: make(map[game.ScreenName]bool),
	}
}

func (v *view) PlaceEntity(id object.EntityID, pos physics.Vector2, facing object.Facing) {
	switch id {
	case object.EntityPlayer:
		v.player = &EntityState{X: pos.X, Y: pos.Y, Size: v.cfg.PlayerSize, Facing: facing.String()}
	case object.EntityPursuer:
		v.pursuer = &EntityState{X: pos.X, Y: pos.Y, Size: v.cfg.PursuerSize, Facing: facing.String()}
	}
}

func (v *view) ShowPickup(pos physics.Vector2) {
	v.pickup = &EntityState{X: pos.X, Y: pos.Y, Size: v.cfg.PickupSize}
}

func (v *view) HidePickup() { v.pickup = nil }

func (v *view) PlayLoop(track game.Track) {
	v.sounds = append(v.sounds, SoundEvent{Action: "loop", Name: string(track)})
}

func (v *view) Stop(track game.Track) {
	v.sounds = append(v.sounds, SoundEvent{Action: "stop", Name: string(track)})
}

func (v *view) PlayOnce(cue game.Cue) {
	v.sounds = append(v.sounds, SoundEvent{Action: "once", Name: string(cue)})
}

func (v *view) SetScore(value int)      { v.score = value }
func (v *view) SetFinalScore(value int) { v.finalScore = value }

func (v *view) Show(name game.ScreenName) { v.screens[name] = true }
func (v *view) Hide(name game.ScreenName) { v.screens[name] = false }

func (v *view) Bounds() physics.Bounds { return v.bounds }

// frame snapshots the view and clears the pending sound events.
func (v *view) frame() FrameMsg {
	msg := FrameMsg{
		Score:      v.score,
		FinalScore: v.finalScore,
		Sounds:     v.sounds,
	}
	for name, on := range v.screens {
		if on {
			msg.Screens = append(msg.Screens, string(name))
		}
	}
	sort.Strings(msg.Screens)
	if v.screens[game.ScreenGame] {
		msg.Player = v.player
		msg.Pursuer = v.pursuer
		msg.Pickup = v.pickup
	}
	v.sounds = nil
	return msg
}
