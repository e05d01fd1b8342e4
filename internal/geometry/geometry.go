// Package geometry converts control values to screen coordinates and back.
//
// Everything here is a pure function of its arguments. Degenerate input
// (empty ranges, zero-sized tracks, missing bounds) produces a stable,
// finite result instead of NaN or a panic.
package geometry

import "math"

// Point is a position in device-independent units (terminal cells).
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle (right/bottom edges excluded).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Segment is a straight line between two points.
type Segment struct {
	From Point
	To   Point
}

// Transpose swaps the axes of both endpoints.
func (s Segment) Transpose() Segment {
	return Segment{
		From: Point{X: s.From.Y, Y: s.From.X},
		To:   Point{X: s.To.Y, Y: s.To.X},
	}
}

// Orientation selects the axis a linear track runs along.
type Orientation int

const (
	// Vertical tracks put Max at the top and Min at the bottom.
	Vertical Orientation = iota
	// Horizontal tracks put Min at the left and Max at the right.
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unknown"
	}
}

// finite replaces NaN and infinities with fallback.
func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}

	return v
}
