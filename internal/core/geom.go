// Package core provides fundamental types and utilities shared by the game
// simulation and the terminal platform. It has no external dependencies
// (especially no Bubble Tea) so game logic stays pure and testable.
package core

import "math"

// Box is an axis-aligned rectangle described by its centre and size, in
// world units. World space has y growing upward.
type Box struct {
	X, Y float64 // Centre
	W, H float64 // Width and height
}

// NewBox creates a box centred at (x, y).
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.X - b.W/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W/2
}

// Bottom returns the y-coordinate of the lower edge.
func (b Box) Bottom() float64 {
	return b.Y - b.H/2
}

// Top returns the y-coordinate of the upper edge.
func (b Box) Top() float64 {
	return b.Y + b.H/2
}

// Contains reports whether the point (x, y) lies inside the box.
// Edges are inclusive.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Left() && x <= b.Right() && y >= b.Bottom() && y <= b.Top()
}

// Corners returns the four corners: bottom-left, top-left, bottom-right, top-right.
func (b Box) Corners() [4][2]float64 {
	return [4][2]float64{
		{b.Left(), b.Bottom()},
		{b.Left(), b.Top()},
		{b.Right(), b.Bottom()},
		{b.Right(), b.Top()},
	}
}

// ContainsCorners reports whether every corner of other lies inside b.
// This is a corner-containment test, not an overlap test: a box that
// straddles an edge of b is not contained even though the shapes intersect.
func (b Box) ContainsCorners(other Box) bool {
	for _, c := range other.Corners() {
		if !b.Contains(c[0], c[1]) {
			return false
		}
	}
	return true
}

// Overlaps reports whether the two boxes share any area.
func (b Box) Overlaps(other Box) bool {
	if b.Right() <= other.Left() || other.Right() <= b.Left() {
		return false
	}
	if b.Top() <= other.Bottom() || other.Top() <= b.Bottom() {
		return false
	}
	return true
}

// Rect is a rectangle of screen cells with its origin at the top-left.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a cell rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the column just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the row just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// FloorInt rounds x down to the nearest int.
func FloorInt(x float64) int {
	return int(math.Floor(x))
}
