package game

import (
	"github.com/tomz197/fatcat/internal/object"
	"github.com/tomz197/fatcat/internal/physics"
)

// Track is a looping audio track.
type Track string

// Cue is a one-shot sound.
type Cue string

const (
	TrackSoundtrack Track = "soundtrack"

	CueStart Cue = "start"
	CueEat   Cue = "eat_cheese"
	CueLose  Cue = "lose"
)

// ScreenName identifies one of the host's screens.
type ScreenName string

const (
	ScreenStart ScreenName = "start"
	ScreenGame  ScreenName = "game"
	ScreenEnd   ScreenName = "end"
)

// Renderer reflects entity poses. PlaceEntity is called once per tick per entity.
type Renderer interface {
	PlaceEntity(id object.EntityID, pos physics.Vector2, facing object.Facing)
	ShowPickup(pos physics.Vector2)
	HidePickup()
}

// Audio plays tracks and cues.
type Audio interface {
	PlayLoop(track Track)
	Stop(track Track)
	PlayOnce(cue Cue)
}

// Display shows the running and final score.
type Display interface {
	SetScore(value int)
	SetFinalScore(value int)
}

// Screens shows and hides the start, game and end screens.
type Screens interface {
	Show(name ScreenName)
	Hide(name ScreenName)
}

// Clock schedules one callback for the next frame.
type Clock interface {
	OnNextFrame(fn func())
}

// PointerSource delivers raw pointer coordinates in viewport space.
type PointerSource interface {
	OnMove(fn func(x, y float64))
}

// Viewport reports the current play area size.
type Viewport interface {
	Bounds() physics.Bounds
}

// Collaborators bundles the presentation side of a session.
// Nil fields are replaced by no-op implementations.
type Collaborators struct {
	Renderer Renderer
	Audio    Audio
	Display  Display
	Screens  Screens
	Viewport Viewport
}

func (c Collaborators) withDefaults() Collaborators {
	if c.Renderer == nil {
		c.Renderer = NopRenderer{}
	}
	if c.Audio == nil {
		c.Audio = NopAudio{}
	}
	if c.Display == nil {
		c.Display = NopDisplay{}
	}
	if c.Screens == nil {
		c.Screens = NopScreens{}
	}
	if c.Viewport == nil {
		c.Viewport = FixedViewport{Width: 800, Height: 600}
	}
	return c
}

// NopRenderer discards poses.
type NopRenderer struct{}

func (NopRenderer) PlaceEntity(object.EntityID, physics.Vector2, object.Facing) {}
func (NopRenderer) ShowPickup(physics.Vector2)                                  {}
func (NopRenderer) HidePickup()                                                 {}

// NopAudio is silent.
type NopAudio struct{}

func (NopAudio) PlayLoop(Track) {}
func (NopAudio) Stop(Track)     {}
func (NopAudio) PlayOnce(Cue)   {}

// NopDisplay discards scores.
type NopDisplay struct{}

func (NopDisplay) SetScore(int)      {}
func (NopDisplay) SetFinalScore(int) {}

// NopScreens ignores screen changes.
type NopScreens struct{}

func (NopScreens) Show(ScreenName) {}
func (NopScreens) Hide(ScreenName) {}

// FixedViewport is a viewport that never changes size.
type FixedViewport physics.Bounds

// Bounds implements Viewport.
func (v FixedViewport) Bounds() physics.Bounds {
	return physics.Bounds(v)
}
