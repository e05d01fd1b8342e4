// Package slider provides a TUI component for a linear slider.
package slider

import (
	"math"
	"strings"

	"github.com/alkime/faders/internal/control"
	"github.com/alkime/faders/internal/geometry"
	"github.com/alkime/faders/internal/surface"
	"github.com/alkime/faders/internal/tui/components/widget"
	"github.com/alkime/faders/internal/tui/style"
	"github.com/alkime/faders/pkg/collections"
	zone "github.com/lrstanley/bubblezone"
)

// indicatorSize is the indicator's thickness along the track, in cells.
const indicatorSize = 1

// Options configures a slider.
type Options struct {
	ID          string
	Orientation geometry.Orientation
	// Width and Height are the track area in cells.
	Width  int
	Height int
	// Ticks defaults to geometry.DefaultTickCount.
	Ticks   int
	Control control.Config
}

// Model renders a slider and owns its interaction widget.
type Model struct {
	*widget.Widget

	orient geometry.Orientation
	width  int
	height int
	ticks  []int // tick offsets along the track, computed once per geometry
}

// New creates a slider bound to cfg.Control. global is the surface shared
// by all controls; zones measures the rendered track.
func New(opts Options, zones *zone.Manager, global *surface.Surface) Model {
	if opts.Ticks == 0 {
		opts.Ticks = geometry.DefaultTickCount
	}

	cfg := opts.Control
	cfg.Mapper = geometry.Track{IndicatorSize: indicatorSize, Orientation: opts.Orientation}

	m := Model{
		Widget: widget.New(opts.ID, zones, global, cfg),
		orient: opts.Orientation,
		width:  max(0, opts.Width),
		height: max(0, opts.Height),
	}
	m.ticks = m.tickOffsets(opts.Ticks)

	return m
}

func (m Model) trackLength() int {
	if m.orient == geometry.Horizontal {
		return m.width
	}

	return m.height
}

func (m Model) crossLength() int {
	if m.orient == geometry.Horizontal {
		return m.height
	}

	return m.width
}

func (m Model) tickOffsets(count int) []int {
	segs := geometry.Ticks(indicatorSize, float64(m.trackLength()), float64(m.crossLength()), count)

	return collections.ApplySeq(segs, func(s geometry.Segment) int {
		return int(math.Floor(s.From.Y))
	})
}

// indicatorOffset returns the cell the indicator occupies along the track.
func (m Model) indicatorOffset() int {
	mid := float64(m.crossLength()) / 2
	p := geometry.ValueToPosition(m.Value(), mid, m.Range(), indicatorSize, float64(m.trackLength()), m.orient)

	off := p.Y
	if m.orient == geometry.Horizontal {
		off = p.X
	}

	return int(math.Round(off))
}

// View renders the track, ticks and indicator inside the slider's zone.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.Mark("")
	}

	if m.orient == geometry.Horizontal {
		return m.Mark(m.viewHorizontal())
	}

	return m.Mark(m.viewVertical())
}

func (m Model) indicatorStyle() func(...string) string {
	if m.Interacting() {
		return style.Active.Render
	}

	return style.Indicator.Render
}

func (m Model) viewVertical() string {
	ticks := collections.SetOf(m.ticks)
	ind := m.indicatorOffset()
	mid := m.width / 2

	rows := make([]string, m.height)

	for row := range m.height {
		if row == ind {
			rows[row] = m.indicatorStyle()(strings.Repeat("━", m.width))

			continue
		}

		fill := " "
		if _, ok := ticks[row]; ok {
			fill = "─"
		}

		rows[row] = style.Tick.Render(strings.Repeat(fill, mid)) +
			style.Track.Render("┃") +
			style.Tick.Render(strings.Repeat(fill, m.width-mid-1))
	}

	return strings.Join(rows, "\n")
}

func (m Model) viewHorizontal() string {
	ticks := collections.SetOf(m.ticks)
	ind := m.indicatorOffset()
	mid := m.height / 2

	rows := make([]string, m.height)

	for row := range m.height {
		var sb strings.Builder

		for col := range m.width {
			_, tick := ticks[col]

			switch {
			case col == ind:
				sb.WriteString(m.indicatorStyle()("█"))
			case row == mid:
				sb.WriteString(style.Track.Render("━"))
			case tick && row < mid:
				sb.WriteString(style.Tick.Render("╷"))
			case tick:
				sb.WriteString(style.Tick.Render("╵"))
			default:
				sb.WriteString(" ")
			}
		}

		rows[row] = sb.String()
	}

	return strings.Join(rows, "\n")
}
