// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box on the screen grid.
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

// Span is a horizontal interval [Start, Start+Width) in play-area units.
// Positions are fractional because movement is scaled by elapsed time.
type Span struct {
	Start float64
	Width float64
}

// End returns the right edge of the span.
func (s Span) End() float64 {
	return s.Start + s.Width
}

// Overlaps reports whether two spans share interior points.
// Spans that only touch at an edge do not overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End() && other.Start < s.End()
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
