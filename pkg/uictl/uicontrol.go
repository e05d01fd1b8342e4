package uictl

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Integer | constraints.Float
}

// Switch is a simple on/off toggle control.
type Switch interface {
	Read() bool
	On()
	Off()
	Toggle()
}

// Dial is a control that can read some value.
type Dial[N Number] interface {
	Read() N
}

// Fader is a Dial whose value can be replaced by the owner.
type Fader[N Number] interface {
	Dial[N]
	Set(v N)
}

// Range bounds and quantizes a control's value.
type Range[N Number] struct {
	Min  N
	Max  N
	Step N
}

// Degenerate reports whether the range has no usable span (Min >= Max).
func (r Range[N]) Degenerate() bool {
	return !(r.Min < r.Max)
}

// Span returns Max - Min, or zero for a degenerate range.
func (r Range[N]) Span() N {
	if r.Degenerate() {
		return 0
	}

	return r.Max - r.Min
}

// Clamp limits v to [Min, Max]. A degenerate range always yields Min.
func (r Range[N]) Clamp(v N) N {
	if r.Degenerate() {
		return r.Min
	}

	if v < r.Min {
		return r.Min
	}

	if v > r.Max {
		return r.Max
	}

	return v
}

// Fraction returns where v sits within the range, 0 at Min and 1 at Max.
func (r Range[N]) Fraction(v N) float64 {
	if r.Degenerate() {
		return 0
	}

	f := float64(r.Clamp(v)-r.Min) / float64(r.Max-r.Min)

	return f
}

// At is the inverse of Fraction. f is clamped to [0, 1] first.
func (r Range[N]) At(f float64) N {
	if r.Degenerate() {
		return r.Min
	}

	switch {
	case f <= 0:
		return r.Min
	case f >= 1:
		return r.Max
	}

	return r.Clamp(r.Min + N(f*float64(r.Max-r.Min)))
}
