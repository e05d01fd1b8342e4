package geometry

import (
	"math"

	"github.com/alkime/faders/pkg/uictl"
)

// DefaultSweep is the rotation of a knob from Min to Max (270 degrees).
const DefaultSweep = 1.5 * math.Pi

// Dial maps pointer positions around a rotary knob to values.
//
// Angles are in radians, zero pointing straight up and growing clockwise.
// The sweep is centred on zero; the gap at the bottom is a dead zone. A
// pointer there holds the end nearest the current value, so crossing the
// gap never jumps from one end to the other.
type Dial struct {
	// Sweep defaults to DefaultSweep when zero or negative.
	Sweep float64
	// Aspect is the width of one vertical unit in horizontal units.
	// Terminal cells are roughly twice as tall as wide, so a round knob
	// uses 2. Defaults to 1.
	Aspect float64
}

func (d Dial) sweep() float64 {
	if !(d.Sweep > 0) {
		return DefaultSweep
	}

	return min(d.Sweep, 2*math.Pi)
}

func (d Dial) aspect() float64 {
	if !(d.Aspect > 0) {
		return 1
	}

	return d.Aspect
}

// ValueToAngle returns the indicator angle for value.
func (d Dial) ValueToAngle(value float64, r uictl.Range[float64]) float64 {
	sw := d.sweep()

	return -sw/2 + r.Fraction(finite(value, r.Min))*sw
}

// AngleToValue maps an angle back to a value, clamping at both ends of the sweep.
func (d Dial) AngleToValue(angle float64, r uictl.Range[float64]) float64 {
	if r.Degenerate() {
		return r.Min
	}

	sw := d.sweep()

	return r.At((finite(angle, -sw/2) + sw/2) / sw)
}

// PointOnDial returns the point at radius and angle around the dial centre.
func (d Dial) PointOnDial(center Point, radius, angle float64) Point {
	return Point{
		X: center.X + math.Sin(angle)*radius*d.aspect(),
		Y: center.Y - math.Cos(angle)*radius,
	}
}

// ValueAt implements the controller's position mapping for a knob. The
// value follows the pointer's angle around the centre of bounds. Inside the
// dead zone the result is the end of the range nearest current.
func (d Dial) ValueAt(p Point, bounds *Rect, r uictl.Range[float64], current float64) float64 {
	if bounds == nil {
		return current
	}

	if r.Degenerate() {
		return r.Min
	}

	c := bounds.Center()
	dx := (p.X - c.X) / d.aspect()
	dy := p.Y - c.Y

	if dx == 0 && dy == 0 {
		return r.Clamp(finite(current, r.Min))
	}

	angle := math.Atan2(dx, -dy)

	if half := d.sweep() / 2; angle > half || angle < -half {
		if r.Fraction(finite(current, r.Min)) >= 0.5 {
			return r.Max
		}

		return r.Min
	}

	return d.AngleToValue(angle, r)
}
