package physics

import "math/rand/v2"

// RNG is a thin wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// PointIn returns a uniformly random point such that a w×h footprint placed
// there stays inside the bounds. Axes where the footprint does not fit yield 0.
func (r *RNG) PointIn(b Bounds, w, h float64) Vector2 {
	return Vector2{X: sampleAxis(r, b.Width-w), Y: sampleAxis(r, b.Height-h)}
}

func sampleAxis(r *RNG, span float64) float64 {
	if span <= 0 {
		return 0
	}
	return r.Float64() * span
}
