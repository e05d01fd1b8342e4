// Package knob provides a TUI component for a rotary knob.
package knob

import (
	"math"
	"strings"

	"github.com/alkime/faders/internal/control"
	"github.com/alkime/faders/internal/geometry"
	"github.com/alkime/faders/internal/surface"
	"github.com/alkime/faders/internal/tui/components/widget"
	"github.com/alkime/faders/internal/tui/style"
	zone "github.com/lrstanley/bubblezone"
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2

// ringDots is how many marks are drawn along the knob's sweep.
const ringDots = 24

// Options configures a knob.
type Options struct {
	ID string
	// Width and Height are the knob face in cells.
	Width   int
	Height  int
	Control control.Config
}

// Model renders a knob and owns its interaction widget.
type Model struct {
	*widget.Widget

	dial   geometry.Dial
	width  int
	height int
	ring   map[cell]struct{} // fixed per geometry
}

type cell struct{ x, y int }

// New creates a knob bound to opts.Control.
func New(opts Options, zones *zone.Manager, global *surface.Surface) Model {
	dial := geometry.Dial{Aspect: cellAspect}

	cfg := opts.Control
	cfg.Mapper = dial

	m := Model{
		Widget: widget.New(opts.ID, zones, global, cfg),
		dial:   dial,
		width:  max(0, opts.Width),
		height: max(0, opts.Height),
	}
	m.ring = m.ringCells()

	return m
}

func (m Model) face() (center geometry.Point, radius float64) {
	center = geometry.Point{X: float64(m.width) / 2, Y: float64(m.height) / 2}
	radius = min(float64(m.height)/2-0.5, (float64(m.width)/2-0.5)/cellAspect)

	return center, max(0, radius)
}

func (m Model) ringCells() map[cell]struct{} {
	center, radius := m.face()
	cells := make(map[cell]struct{}, ringDots)

	if radius == 0 {
		return cells
	}

	sweep := geometry.DefaultSweep
	for i := range ringDots + 1 {
		angle := -sweep/2 + sweep*float64(i)/ringDots
		cells[toCell(m.dial.PointOnDial(center, radius, angle))] = struct{}{}
	}

	return cells
}

func toCell(p geometry.Point) cell {
	return cell{x: int(math.Floor(p.X)), y: int(math.Floor(p.Y))}
}

// Angle returns the indicator angle for the current value.
func (m Model) Angle() float64 {
	return m.dial.ValueToAngle(m.Value(), m.Range())
}

// View renders the knob face inside the knob's zone.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.Mark("")
	}

	center, radius := m.face()
	indicator := toCell(m.dial.PointOnDial(center, radius, m.Angle()))
	hub := toCell(center)

	mark := style.Indicator.Render
	if m.Interacting() {
		mark = style.Active.Render
	}

	rows := make([]string, m.height)

	for y := range m.height {
		var sb strings.Builder

		for x := range m.width {
			c := cell{x: x, y: y}
			_, onRing := m.ring[c]

			switch {
			case c == indicator:
				sb.WriteString(mark("●"))
			case c == hub:
				sb.WriteString(style.Track.Render("◉"))
			case onRing:
				sb.WriteString(style.Tick.Render("·"))
			default:
				sb.WriteString(" ")
			}
		}

		rows[y] = sb.String()
	}

	return m.Mark(strings.Join(rows, "\n"))
}
