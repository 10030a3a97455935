package game

import "fmt"

// Rect is an axis-aligned bounding box in board pixels.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle. Width and height must be positive.
func NewRect(x, y, w, h int) Rect {
	r := Rect{X: x, Y: y, W: w, H: h}
	if !r.Valid() {
		panic(fmt.Sprintf("game: rect with non-positive size %dx%d", w, h))
	}
	return r
}

// Valid reports whether the rectangle has a positive size.
func (r Rect) Valid() bool {
	return r.W > 0 && r.H > 0
}

func (r Rect) Right() int {
	return r.X + r.W
}

func (r Rect) Bottom() int {
	return r.Y + r.H
}

// CenterY returns the vertical center, truncated to a whole pixel.
func (r Rect) CenterY() int {
	return r.Y + r.H/2
}

// Intersects reports whether two rectangles overlap.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	if !r.Valid() || !other.Valid() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// clamp restricts v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
