// Package tui hosts the mixer board in a bubbletea program.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alkime/faders/internal/control"
	"github.com/alkime/faders/internal/geometry"
	"github.com/alkime/faders/internal/mixer"
	"github.com/alkime/faders/internal/surface"
	"github.com/alkime/faders/internal/tui/components/knob"
	"github.com/alkime/faders/internal/tui/components/meter"
	"github.com/alkime/faders/internal/tui/components/slider"
	"github.com/alkime/faders/internal/tui/style"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Config holds the TUI settings.
type Config struct {
	FastFactor    float64
	ReleaseOnBlur bool
	TickCount     int
}

// Control sizes in cells.
const (
	knobWidth   = 11
	knobHeight  = 5
	faderWidth  = 5
	faderHeight = 11
	panWidth    = 31
	panHeight   = 3
	logHeight   = 5
	maxChanges  = 100
)

// boardControl is a rendered control the model routes events to.
type boardControl interface {
	ID() string
	Surface() *surface.Surface
	Sync(value float64)
	State() control.State
	Unbind()
	View() string
}

// Model is the root TUI model. It owns the global surface and routes
// mouse input: to the control under the pointer first, then to the global
// surface. Events no control prevented fall through to the change log.
type Model struct {
	config   Config
	keys     KeyMap
	help     help.Model
	board    *mixer.Board
	zones    *zone.Manager
	global   *surface.Surface
	specs    []mixer.Spec
	controls []boardControl
	selected int
	meter    meter.Model
	changes  []string
	log      viewport.Model
}

// New creates the root model for board. zones may be nil, in which case
// the model creates its own manager.
func New(config Config, board *mixer.Board, zones *zone.Manager) *Model {
	if zones == nil {
		zones = zone.New()
	}

	m := &Model{
		config: config,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		board:  board,
		zones:  zones,
		global: surface.New("window", nil),
		specs:  board.Specs(),
		log:    viewport.New(panWidth+faderWidth*4, logHeight),
	}

	var channels []meter.Channel

	for _, spec := range m.specs {
		m.controls = append(m.controls, m.newControl(spec))

		if spec.Kind == mixer.KindFader {
			channels = append(channels, meter.Channel{
				Level: board.Fader(spec.ID),
				Range: spec.Range,
				Mute:  board.Mute(spec.ID),
			})
		}
	}

	m.meter = meter.New(channels, faderHeight, 1)

	board.OnChange(m.recordChange)
	m.log.SetContent(style.Muted.Render("no changes yet"))

	return m
}

func (m *Model) newControl(spec mixer.Spec) boardControl {
	id := spec.ID
	cfg := control.Config{
		Range:         spec.Range,
		Value:         m.board.Value(id),
		OnValueChange: func(v float64) { m.board.Set(id, v) },
		FastFactor:    m.config.FastFactor,
		ReleaseOnBlur: m.config.ReleaseOnBlur,
	}

	switch spec.Kind {
	case mixer.KindKnob:
		return knob.New(knob.Options{
			ID: id, Width: knobWidth, Height: knobHeight, Control: cfg,
		}, m.zones, m.global)
	case mixer.KindPan:
		return slider.New(slider.Options{
			ID: id, Orientation: geometry.Horizontal,
			Width: panWidth, Height: panHeight, Ticks: m.config.TickCount, Control: cfg,
		}, m.zones, m.global)
	default:
		return slider.New(slider.Options{
			ID: id, Orientation: geometry.Vertical,
			Width: faderWidth, Height: faderHeight, Ticks: m.config.TickCount, Control: cfg,
		}, m.zones, m.global)
	}
}

// Init returns the initial command.
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("faders")
}

// Update handles all messages.
func (m *Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.log.Width = max(20, msg.Width-4)
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		ev := surface.FromBlur(msg)
		m.global.Dispatch(&ev)
		m.sync()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.unbind()

		return tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case len(m.controls) == 0:
		return nil

	case key.Matches(msg, m.keys.Next):
		m.selected = (m.selected + 1) % len(m.controls)

	case key.Matches(msg, m.keys.Prev):
		m.selected = (m.selected + len(m.controls) - 1) % len(m.controls)

	case key.Matches(msg, m.keys.Mute):
		m.board.Mute(m.specs[m.selected].ID).Toggle()
	}

	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if ev, ok := surface.FromMouse(msg); ok {
		m.dispatch(&ev)

		if ev.DefaultPrevented() {
			return nil
		}
	}

	var cmd tea.Cmd
	m.log, cmd = m.log.Update(msg)

	return cmd
}

// dispatch delivers ev to the control under the pointer, then to the global
// surface unless propagation was stopped, then re-supplies board values.
func (m *Model) dispatch(ev *surface.Event) {
	for i, c := range m.controls {
		bounds := c.Surface().Bounds()
		if bounds == nil || !bounds.Contains(ev.Pos) {
			continue
		}

		if ev.Kind == surface.MouseDown && ev.Button == surface.ButtonPrimary {
			m.selected = i
		}

		c.Surface().Dispatch(ev)

		break
	}

	if !ev.PropagationStopped() {
		m.global.Dispatch(ev)
	}

	m.sync()
}

// sync re-supplies every control with the board's current value.
func (m *Model) sync() {
	for _, c := range m.controls {
		c.Sync(m.board.Value(c.ID()))
	}
}

func (m *Model) unbind() {
	for _, c := range m.controls {
		c.Unbind()
	}
}

func (m *Model) recordChange(ch mixer.Change) {
	spec := m.specFor(ch.ID)
	line := fmt.Sprintf("%-7s %s → %s", spec.Label, spec.Format(ch.From), spec.Format(ch.To))

	m.changes = append(m.changes, line)
	if len(m.changes) > maxChanges {
		m.changes = m.changes[len(m.changes)-maxChanges:]
	}

	m.log.SetContent(strings.Join(m.changes, "\n"))
	m.log.GotoBottom()
	slog.Debug("board change", "id", ch.ID, "from", ch.From, "to", ch.To)
}

func (m *Model) specFor(id string) mixer.Spec {
	for _, s := range m.specs {
		if s.ID == id {
			return s
		}
	}

	return mixer.Spec{ID: id, Label: id}
}

// Dragging returns the id of the control being dragged, if any.
func (m *Model) Dragging() (string, bool) {
	for _, c := range m.controls {
		if c.State() == control.Dragging {
			return c.ID(), true
		}
	}

	return "", false
}

// View renders the board. The output is scanned for zones so each
// control's surface can be measured on the next event.
func (m *Model) View() string {
	var (
		top    []string
		bottom []string
	)

	for i, c := range m.controls {
		p := m.panel(i, m.specs[i], c)
		if m.specs[i].Kind == mixer.KindPan {
			bottom = append(bottom, p)
		} else {
			top = append(top, p)
		}
	}

	top = append(top, style.Panel.Render(lipgloss.JoinVertical(lipgloss.Center,
		m.meter.View(), style.Label.Render("OUT"), "")))

	var sb strings.Builder

	sb.WriteString(style.Title.Render("faders"))
	sb.WriteString("  ")
	sb.WriteString(style.Subtitle.Render("drag, click or scroll a control (shift+scroll is faster)"))
	sb.WriteString("\n\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, top...))
	sb.WriteString("\n")
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, bottom...))
	sb.WriteString("\n")
	sb.WriteString(style.Log.Render(m.log.View()))
	sb.WriteString("\n")
	sb.WriteString(style.Help.Render(m.help.View(m.keys)))

	return m.zones.Scan(sb.String())
}

func (m *Model) panel(i int, spec mixer.Spec, c boardControl) string {
	label := style.Label.Render(spec.Label)
	if m.board.Mute(spec.ID).Read() {
		label = style.Warning.Render(spec.Label + " M")
	}

	value := style.Value.Render(spec.Format(m.board.Value(spec.ID)))

	frame := style.Panel
	if i == m.selected {
		frame = style.Selected
	}

	return frame.Render(lipgloss.JoinVertical(lipgloss.Center, c.View(), label, value))
}
