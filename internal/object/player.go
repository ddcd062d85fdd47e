package object

import "github.com/tomz197/fatcat/internal/physics"

// Player is the pointer-controlled mouse.
type Player struct {
	Entity
	Facing Facing

	lastPointerX float64
}

// NewPlayer creates a square player of the given size at the origin.
func NewPlayer(size float64) *Player {
	return &Player{Entity: Entity{Width: size, Height: size}}
}

// Reset places the player at p facing right. The pointer reference is set to
// p.X so the first pointer sample computes its displacement from there.
func (p *Player) Reset(pos physics.Vector2) {
	p.Position = pos
	p.Facing = FacingRight
	p.lastPointerX = pos.X
}

// FollowPointer centers the player on the pointer and updates facing from the
// pointer's horizontal displacement. Zero displacement keeps the old facing.
func (p *Player) FollowPointer(x, y float64) {
	dx := x - p.lastPointerX
	switch {
	case dx < 0:
		p.Facing = FacingLeft
	case dx > 0:
		p.Facing = FacingRight
	}
	p.Position = physics.Vector2{X: x - p.Width/2, Y: y - p.Height/2}
	p.lastPointerX = x
}
