package surface

import (
	"github.com/alkime/faders/internal/geometry"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// FromMouse translates a bubbletea mouse message. Positions are reported at
// the centre of the cell under the pointer. ok is false for messages no
// surface listens to (horizontal wheel, extra buttons).
func FromMouse(msg tea.MouseMsg) (ev Event, ok bool) {
	ev = Event{
		Pos:        geometry.Point{X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5},
		Shift:      msg.Shift,
		Cancelable: true,
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev.Kind = Wheel
		ev.DeltaY = -1

		return ev, true
	case tea.MouseButtonWheelDown:
		ev.Kind = Wheel
		ev.DeltaY = 1

		return ev, true
	case tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return ev, false
	}

	ev.Button = buttonOf(msg.Button)

	switch msg.Action {
	case tea.MouseActionPress:
		if ev.Button == ButtonNone {
			return ev, false
		}

		ev.Kind = MouseDown
	case tea.MouseActionMotion:
		ev.Kind = MouseMove
	case tea.MouseActionRelease:
		ev.Kind = MouseUp
	default:
		return ev, false
	}

	return ev, true
}

// FromBlur returns the event for a bubbletea focus-loss message.
func FromBlur(tea.BlurMsg) Event {
	return Event{Kind: Blur}
}

func buttonOf(b tea.MouseButton) Button {
	switch b {
	case tea.MouseButtonLeft:
		return ButtonPrimary
	case tea.MouseButtonRight:
		return ButtonSecondary
	case tea.MouseButtonMiddle:
		return ButtonMiddle
	default:
		return ButtonNone
	}
}

// ZoneMeasurer measures a surface through the bubblezone zone its view is
// marked with. The zone is unknown until the first rendered frame has been
// scanned.
type ZoneMeasurer struct {
	Zones *zone.Manager
	ID    string
}

// Measure implements Measurer.
func (z ZoneMeasurer) Measure() (geometry.Rect, bool) {
	if z.Zones == nil {
		return geometry.Rect{}, false
	}

	info := z.Zones.Get(z.ID)
	if info == nil || info.IsZero() {
		return geometry.Rect{}, false
	}

	return geometry.Rect{
		X:      float64(info.StartX),
		Y:      float64(info.StartY),
		Width:  float64(info.EndX - info.StartX + 1),
		Height: float64(info.EndY - info.StartY + 1),
	}, true
}
