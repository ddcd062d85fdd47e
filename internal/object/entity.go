// Package object defines the game entities and the policies that move and spawn them.
package object

import "github.com/tomz197/fatcat/internal/physics"

// EntityID names an entity for the renderer.
type EntityID int

const (
	EntityPlayer EntityID = iota
	EntityPursuer
	EntityPickup
)

func (id EntityID) String() string {
	switch id {
	case EntityPlayer:
		return "player"
	case EntityPursuer:
		return "pursuer"
	case EntityPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// Facing is the cosmetic left/right orientation of a sprite.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Entity is a sized box positioned by its top-left corner.
type Entity struct {
	Position      physics.Vector2
	Width, Height float64
}

// Rect returns the entity's bounding box.
func (e Entity) Rect() physics.Rect {
	return physics.Rect{X: e.Position.X, Y: e.Position.Y, W: e.Width, H: e.Height}
}

// Overlaps reports whether the bounding boxes of e and o intersect.
func (e Entity) Overlaps(o Entity) bool {
	return physics.Overlaps(e.Rect(), o.Rect())
}

// ClampTo moves the entity back inside the bounds.
func (e *Entity) ClampTo(b physics.Bounds) {
	e.Position = b.Clamp(e.Position, e.Width, e.Height)
}

// Pickup is a collectible. At most one is active at a time.
type Pickup struct {
	Entity
	Active bool
}
