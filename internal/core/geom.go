// Package core provides fundamental types and utilities for the casino platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Point is a position in table-local coordinate units.
type Point struct {
	X, Y float64
}

// Size holds width and height in table-local units.
type Size struct {
	W, H float64
}

// Rect represents an axis-aligned bounding box in table-local units.
// Origin is the top-left corner; axes grow right and down.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Area returns the rectangle's area. Degenerate rectangles have area 0.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains returns true if the point is inside this rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// OverlapArea returns the area of the intersection of two rectangles.
// Returns 0 when the rectangles do not overlap or either is degenerate.
func OverlapArea(a, b Rect) float64 {
	left := maxF(a.X, b.X)
	right := minF(a.Right(), b.Right())
	top := maxF(a.Y, b.Y)
	bottom := minF(a.Bottom(), b.Bottom())

	if right <= left || bottom <= top {
		return 0
	}
	return (right - left) * (bottom - top)
}

// OverlapPercentage returns the overlap area divided by the smaller of the
// two rectangle areas, in [0, 1]. A small rectangle fully contained in a
// larger one therefore yields 1 regardless of the larger one's size.
// Returns 0 when either rectangle has zero area, never NaN.
func OverlapPercentage(a, b Rect) float64 {
	smaller := minF(a.Area(), b.Area())
	if smaller == 0 {
		return 0
	}
	return OverlapArea(a, b) / smaller
}

// DroppedBounds synthesizes the bounding rectangle of a card dropped at the
// given point: a rectangle of the given size centered on the drop point.
func DroppedBounds(drop Point, size Size) Rect {
	return Rect{
		X: drop.X - size.W/2,
		Y: drop.Y - size.H/2,
		W: size.W,
		H: size.H,
	}
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
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
