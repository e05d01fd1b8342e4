package surface

import "github.com/alkime/faders/internal/geometry"

// Handler reacts to a dispatched event.
type Handler func(ev *Event)

// Measurer reports a surface's bounding rectangle. ok is false while the
// surface has not been laid out yet.
type Measurer interface {
	Measure() (bounds geometry.Rect, ok bool)
}

// MeasurerFunc adapts a function to Measurer.
type MeasurerFunc func() (geometry.Rect, bool)

// Measure calls f.
func (f MeasurerFunc) Measure() (geometry.Rect, bool) {
	return f()
}

type listener struct {
	kind    Kind
	handler Handler
	removed bool
}

// Surface is a named set of event listeners.
type Surface struct {
	name        string
	measurer    Measurer
	listeners   []*listener
	interacting bool
}

// New creates a surface. measurer may be nil for surfaces with no extent,
// such as the global surface.
func New(name string, measurer Measurer) *Surface {
	return &Surface{
		name:     name,
		measurer: measurer,
	}
}

// Name returns the surface name.
func (s *Surface) Name() string {
	return s.name
}

// Listen attaches h for events of kind. The returned function detaches it;
// calling it more than once is harmless.
func (s *Surface) Listen(kind Kind, h Handler) (remove func()) {
	l := &listener{kind: kind, handler: h}
	s.listeners = append(s.listeners, l)

	return func() {
		if l.removed {
			return
		}

		l.removed = true

		for i, other := range s.listeners {
			if other == l {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)

				break
			}
		}
	}
}

// Dispatch delivers ev to every listener for its kind in attach order.
// Listeners detached by an earlier handler during the same dispatch are
// skipped.
func (s *Surface) Dispatch(ev *Event) {
	snapshot := make([]*listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		if l.kind == ev.Kind {
			snapshot = append(snapshot, l)
		}
	}

	for _, l := range snapshot {
		if l.removed {
			continue
		}

		l.handler(ev)
	}
}

// ListenerCount returns the number of attached listeners for kind.
func (s *Surface) ListenerCount(kind Kind) int {
	n := 0

	for _, l := range s.listeners {
		if l.kind == kind {
			n++
		}
	}

	return n
}

// TotalListeners returns the number of attached listeners of any kind.
func (s *Surface) TotalListeners() int {
	return len(s.listeners)
}

// Bounds returns the surface's bounding rectangle, or nil if it is unknown.
func (s *Surface) Bounds() *geometry.Rect {
	if s.measurer == nil {
		return nil
	}

	r, ok := s.measurer.Measure()
	if !ok {
		return nil
	}

	return &r
}

// SetInteracting sets the transient "interacting" marker used for styling.
func (s *Surface) SetInteracting(on bool) {
	s.interacting = on
}

// Interacting reports the "interacting" marker.
func (s *Surface) Interacting() bool {
	return s.interacting
}
