// Package core provides engine-free primitives shared by the race host:
// geometry, the character screen buffer, colors and input actions.
// It has no external dependencies so everything built on it stays testable.
package core

// Rect is an integer axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is a float axis-aligned box in world units, described by its center.
// World coordinates grow rightwards and upwards with the origin at screen center.
type Box struct {
	CX, CY float64 // Center
	HW, HH float64 // Half width and half height
}

// NewBox creates a box centered at (cx, cy) with full size w x h.
func NewBox(cx, cy, w, h float64) Box {
	return Box{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// Overlaps reports whether two boxes intersect.
// Touching edges do not count as overlap.
func (b Box) Overlaps(o Box) bool {
	if AbsF(b.CX-o.CX) >= b.HW+o.HW {
		return false
	}
	if AbsF(b.CY-o.CY) >= b.HH+o.HH {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
