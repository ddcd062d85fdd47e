// Package physics provides vector math, rectangle overlap and bounded random sampling.
package physics

import "math"

// Vector2 is a position or displacement in viewport space.
type Vector2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len returns the Euclidean length of v.
func (v Vector2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether a and b intersect.
// Edges that only touch do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Bounds is the size of the viewport.
type Bounds struct {
	Width, Height float64
}

// Clamp keeps a w×h footprint at p inside the bounds. If the footprint is
// larger than the bounds on an axis, that coordinate becomes 0.
func (b Bounds) Clamp(p Vector2, w, h float64) Vector2 {
	return Vector2{X: clampAxis(p.X, b.Width-w), Y: clampAxis(p.Y, b.Height-h)}
}

func clampAxis(v, limit float64) float64 {
	if limit < 0 {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
