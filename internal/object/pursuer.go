package object

import (
	"math"

	"github.com/tomz197/fatcat/internal/physics"
)

// SpeedCurve maps score to pursuer speed in units per tick.
type SpeedCurve struct {
	Base      float64 // Speed at score 0
	Increment float64 // Added once per full Divisor points
	Divisor   int     // Score points per speed step
}

// At returns Base + floor(score/Divisor) * Increment.
func (c SpeedCurve) At(score int) float64 {
	if c.Divisor <= 0 || score <= 0 {
		return c.Base
	}
	steps := math.Floor(float64(score) / float64(c.Divisor))
	return c.Base + steps*c.Increment
}

// Seek moves from toward to by speed along the straight line between them.
// Facing comes from the sign of the horizontal displacement. When the points
// coincide the position is returned unchanged.
func Seek(from, to physics.Vector2, speed float64) (physics.Vector2, Facing) {
	d := to.Sub(from)
	facing := FacingRight
	if d.X < 0 {
		facing = FacingLeft
	}
	dist := d.Len()
	if dist == 0 {
		return from, facing
	}
	return physics.Vector2{
		X: from.X + d.X/dist*speed,
		Y: from.Y + d.Y/dist*speed,
	}, facing
}

// Pursuer is the fatcat: it seeks its target every tick.
type Pursuer struct {
	Entity
	Facing Facing
}

// NewPursuer creates a square pursuer of the given size at the origin.
func NewPursuer(size float64) *Pursuer {
	return &Pursuer{Entity: Entity{Width: size, Height: size}}
}

// Chase advances the pursuer one tick toward target at the speed the curve
// gives for score, and returns the new position.
func (p *Pursuer) Chase(target Entity, score int, curve SpeedCurve) physics.Vector2 {
	p.Position, p.Facing = Seek(p.Position, target.Position, curve.At(score))
	return p.Position
}
