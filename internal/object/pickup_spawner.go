package object

import "github.com/tomz197/fatcat/internal/physics"

// PickupSpawner places new pickups uniformly inside the viewport.
type PickupSpawner struct {
	size float64
	rng  *physics.RNG
}

// NewPickupSpawner creates a spawner for square pickups of the given size.
func NewPickupSpawner(size float64, rng *physics.RNG) *PickupSpawner {
	if size < 0 {
		size = 0
	}
	return &PickupSpawner{
		size: size,
		rng:  rng,
	}
}

// Spawn returns an active pickup whose whole footprint lies within b.
// Callers must have deactivated the previous pickup.
func (s *PickupSpawner) Spawn(b physics.Bounds) Pickup {
	return Pickup{
		Entity: Entity{
			Position: s.rng.PointIn(b, s.size, s.size),
			Width:    s.size,
			Height:   s.size,
		},
		Active: true,
	}
}
