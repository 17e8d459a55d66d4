// Package core provides the platform-neutral building blocks shared by scenes:
// a colored character buffer, input actions and world-to-cell projection.
// It has no Bubble Tea dependency so scene logic stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Viewport maps a square world region centered on the origin onto a
// rectangle of screen cells. World +X is screen right and world +Z is
// screen down. Terminal cells are roughly twice as tall as wide, so the
// horizontal scale is doubled to keep the map square.
type Viewport struct {
	Area       Rect
	HalfExtent float64 // World units from the center to each edge
}

// NewViewport fits a world of the given half-extent into area, keeping
// a 2:1 cell aspect and centering it.
func NewViewport(area Rect, halfExtent float64) Viewport {
	rows := Min(area.H, area.W/2)
	w := rows * 2
	return Viewport{
		Area:       NewRect(area.X+(area.W-w)/2, area.Y+(area.H-rows)/2, w, rows),
		HalfExtent: halfExtent,
	}
}

// Project returns the cell containing world point (x, z).
// Points outside the world still project, possibly off the area.
func (v Viewport) Project(x, z float64) (col, row int) {
	if v.HalfExtent <= 0 {
		return v.Area.Center()
	}
	span := 2 * v.HalfExtent
	col = v.Area.X + int(math.Floor((x+v.HalfExtent)/span*float64(v.Area.W)))
	row = v.Area.Y + int(math.Floor((z+v.HalfExtent)/span*float64(v.Area.H)))
	return col, row
}

// Unproject returns the world point at the center of cell (col, row).
func (v Viewport) Unproject(col, row int) (x, z float64) {
	if v.Area.W == 0 || v.Area.H == 0 {
		return 0, 0
	}
	span := 2 * v.HalfExtent
	x = (float64(col-v.Area.X)+0.5)/float64(v.Area.W)*span - v.HalfExtent
	z = (float64(row-v.Area.Y)+0.5)/float64(v.Area.H)*span - v.HalfExtent
	return x, z
}

// ProjectRect returns the cells covered by a world rectangle centered on
// (x, z) with the given sizes. The result is at least one cell in each
// dimension so small objects stay visible.
func (v Viewport) ProjectRect(x, z, sizeX, sizeZ float64) Rect {
	c0, r0 := v.Project(x-sizeX/2, z-sizeZ/2)
	c1, r1 := v.Project(x+sizeX/2, z+sizeZ/2)
	return NewRect(c0, r0, Max(c1-c0, 1), Max(r1-r0, 1))
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
