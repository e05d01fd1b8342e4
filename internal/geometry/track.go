package geometry

import "github.com/alkime/faders/pkg/uictl"

// Track maps pointer positions on a linear track to values.
type Track struct {
	IndicatorSize float64
	Orientation   Orientation
}

// ValueAt implements the controller's position mapping for a linear track.
func (t Track) ValueAt(p Point, bounds *Rect, r uictl.Range[float64], current float64) float64 {
	return PositionToValue(p, r, t.IndicatorSize, bounds, t.Orientation, current)
}

// ValueToPosition returns the indicator's reference corner for value.
//
// The indicator travels over trackLength - indicatorSize so it never leaves
// the track. On a vertical track Max sits at y=0 and Min at the far end; on a
// horizontal track Min sits at x=0. The cross-axis coordinate is mid.
func ValueToPosition(
	value, mid float64,
	r uictl.Range[float64],
	indicatorSize, trackLength float64,
	orient Orientation,
) Point {
	usable := max(0, finite(trackLength-indicatorSize, 0))
	frac := r.Fraction(finite(value, r.Min))

	if orient == Horizontal {
		return Point{X: frac * usable, Y: mid}
	}

	return Point{X: mid, Y: (1 - frac) * usable}
}

// PositionToValue maps a pointer position to a value within r.
//
// The pointer is measured at the indicator's centre, relative to track. A nil
// track (surface not measured yet) returns current unchanged. The result is
// clamped to the range but not stepped.
func PositionToValue(
	p Point,
	r uictl.Range[float64],
	indicatorSize float64,
	track *Rect,
	orient Orientation,
	current float64,
) float64 {
	if track == nil {
		return current
	}

	if r.Degenerate() {
		return r.Min
	}

	length := track.Height
	if orient == Horizontal {
		length = track.Width
	}

	usable := finite(length-indicatorSize, 0)
	if usable <= 0 {
		return r.Clamp(finite(current, r.Min))
	}

	var frac float64

	switch orient {
	case Horizontal:
		frac = (p.X - track.X - indicatorSize/2) / usable
	default:
		frac = 1 - (p.Y-track.Y-indicatorSize/2)/usable
	}

	return r.At(finite(frac, 0))
}
