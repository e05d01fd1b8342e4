// Package surface models the input surfaces controls listen on: one surface
// per control plus a single global surface shared by every control on
// screen. Surfaces are driven from the host's event loop and are not safe
// for concurrent use.
package surface

import "github.com/alkime/faders/internal/geometry"

// Kind identifies an input-device event.
type Kind int

const (
	Wheel Kind = iota
	TouchStart
	TouchMove
	MouseDown
	MouseMove
	MouseUp
	// Blur reports that the host lost input focus.
	Blur
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case Wheel:
		return "wheel"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case MouseDown:
		return "mousedown"
	case MouseMove:
		return "mousemove"
	case MouseUp:
		return "mouseup"
	case Blur:
		return "blur"
	default:
		return "unknown"
	}
}

// Button is the pointer button involved in a mouse event.
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonMiddle
)

// Event is a single input-device event in surface coordinates.
type Event struct {
	Kind Kind
	Pos  geometry.Point
	// DeltaY is negative when the wheel scrolls up.
	DeltaY float64
	Button Button
	// Shift is the fast-scroll modifier.
	Shift      bool
	Cancelable bool

	defaultPrevented bool
	stopped          bool
}

// PreventDefault suppresses the host's default action for the event.
// It does nothing unless the event is cancelable.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether a handler suppressed the default action.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// StopPropagation keeps the event from reaching surfaces dispatched after
// the current one.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// PropagationStopped reports whether a handler called StopPropagation.
func (e *Event) PropagationStopped() bool {
	return e.stopped
}
