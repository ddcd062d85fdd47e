package loop

import (
	"github.com/tomz197/fatcat/internal/game"
	"github.com/tomz197/fatcat/internal/object"
	"github.com/tomz197/fatcat/internal/physics"
)

type pose struct {
	pos    physics.Vector2
	facing object.Facing
	placed bool
}

// view is the terminal's presentation state. The session writes to it through
// the game collaborator interfaces; the frame loop reads it to draw.
type view struct {
	bounds     physics.Bounds
	poses      [3]pose // Indexed by object.EntityID
	pickupOn   bool
	pickupPos  physics.Vector2
	score      int
	finalScore int
	screens    map[game.ScreenName]bool
}

var (
	_ game.Renderer = (*view)(nil)
	_ game.Display  = (*view)(nil)
	_ game.Screens  = (*view)(nil)
	_ game.Viewport = (*view)(nil)
)

func newView(cols, rows int) *view {
	v := &view{screens: make(map[game.ScreenName]bool)}
	v.resize(cols, rows)
	return v
}

// resize sets the logical viewport from the terminal size and reports
// whether it changed.
func (v *view) resize(cols, rows int) bool {
	b := physics.Bounds{Width: float64(cols) * CellWidth, Height: float64(rows) * CellHeight}
	if b == v.bounds {
		return false
	}
	v.bounds = b
	return true
}

func (v *view) PlaceEntity(id object.EntityID, pos physics.Vector2, facing object.Facing) {
	if int(id) < 0 || int(id) >= len(v.poses) {
		return
	}
	v.poses[id] = pose{pos: pos, facing: facing, placed: true}
}

func (v *view) ShowPickup(pos physics.Vector2) {
	v.pickupOn = true
	v.pickupPos = pos
}

func (v *view) HidePickup() { v.pickupOn = false }

func (v *view) SetScore(value int)      { v.score = value }
func (v *view) SetFinalScore(value int) { v.finalScore = value }

func (v *view) Show(name game.ScreenName) { v.screens[name] = true }
func (v *view) Hide(name game.ScreenName) { v.screens[name] = false }

func (v *view) Bounds() physics.Bounds { return v.bounds }

// pointerBridge is the PointerSource fed from terminal mouse reports.
type pointerBridge struct {
	fn func(x, y float64)
}

func (p *pointerBridge) OnMove(fn func(x, y float64)) { p.fn = fn }

func (p *pointerBridge) emit(x, y float64) {
	if p.fn != nil {
		p.fn(x, y)
	}
}
