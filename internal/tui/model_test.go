package tui_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/alkime/faders/internal/mixer"
	"github.com/alkime/faders/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// outputChecker provides helpers for testing teatest output.
type outputChecker struct {
	intervl, timeout time.Duration
}

func defaultChecker() outputChecker {
	return outputChecker{
		intervl: 50 * time.Millisecond,
		timeout: 3 * time.Second,
	}
}

func (o outputChecker) checkString(t *testing.T, tm *teatest.TestModel, substr string) {
	t.Helper()
	teatest.WaitFor(t, tm.Output(), func(buf []byte) bool {
		return bytes.Contains(buf, []byte(substr))
	},
		teatest.WithCheckInterval(o.intervl),
		teatest.WithDuration(o.timeout))
}

var testConfig = tui.Config{FastFactor: 4, TickCount: 11}

func newBoard(t *testing.T) *mixer.Board {
	t.Helper()

	board, err := mixer.NewBoard(mixer.DefaultSpecs()...)
	require.NoError(t, err)

	return board
}

func newZones(t *testing.T) *zone.Manager {
	t.Helper()

	zones := zone.New()
	t.Cleanup(zones.Close)

	return zones
}

// zoneOf waits for a rendered frame to be scanned and returns the zone.
func zoneOf(t *testing.T, zones *zone.Manager, id string) *zone.ZoneInfo {
	t.Helper()

	var info *zone.ZoneInfo

	require.Eventually(t, func() bool {
		info = zones.Get(id)
		return info != nil && !info.IsZero()
	}, 2*time.Second, 10*time.Millisecond, "zone %q never scanned", id)

	return info
}

func wheel(x, y int, button tea.MouseButton, shift bool) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Shift: shift, Button: button, Action: tea.MouseActionPress}
}

func mouse(x, y int, action tea.MouseAction) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: action}
}

func TestModel_Program(t *testing.T) {
	checker := defaultChecker()
	board := newBoard(t)
	zones := newZones(t)

	tm := teatest.NewTestModel(t, tui.New(testConfig, board, zones), teatest.WithInitialTermSize(120, 60))

	t.Run("renders the board", func(t *testing.T) {
		checker.checkString(t, tm, "VOLUME")
		checker.checkString(t, tm, "-10db")
	})

	t.Run("wheel over the knob lowers the volume", func(t *testing.T) {
		knob := zoneOf(t, zones, "volume")

		tm.Send(wheel(knob.StartX+1, knob.StartY+1, tea.MouseButtonWheelDown, false))

		require.Eventually(t, func() bool {
			return board.Value("volume") == -11
		}, 2*time.Second, 10*time.Millisecond)
		checker.checkString(t, tm, "-10db → -11db")
	})

	t.Run("quit", func(t *testing.T) {
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
		tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))
	})
}

func TestModel_Wheel(t *testing.T) {
	board := newBoard(t)
	zones := newZones(t)
	m := tui.New(testConfig, board, zones)

	m.View()
	knob := zoneOf(t, zones, "volume")

	m.Update(wheel(knob.StartX, knob.StartY, tea.MouseButtonWheelDown, false))
	assert.InDelta(t, -11.0, board.Value("volume"), 0)

	m.Update(wheel(knob.StartX, knob.StartY, tea.MouseButtonWheelDown, true))
	assert.InDelta(t, -15.0, board.Value("volume"), 0)

	m.Update(wheel(knob.StartX, knob.StartY, tea.MouseButtonWheelUp, false))
	assert.InDelta(t, -14.0, board.Value("volume"), 0)

	t.Run("outside every control", func(t *testing.T) {
		m.Update(wheel(knob.EndX+200, knob.EndY+200, tea.MouseButtonWheelDown, false))
		assert.InDelta(t, -14.0, board.Value("volume"), 0)
	})

	t.Run("change log", func(t *testing.T) {
		view := ansi.Strip(m.View())
		assert.Contains(t, view, "-10db → -11db")
		assert.Contains(t, view, "-11db → -15db")
		assert.Contains(t, view, "-15db → -14db")
	})
}

func TestModel_DragFader(t *testing.T) {
	board := newBoard(t)
	zones := newZones(t)
	m := tui.New(testConfig, board, zones)

	m.View()
	mic := zoneOf(t, zones, "mic")
	x := (mic.StartX + mic.EndX) / 2

	m.Update(mouse(x, mic.StartY, tea.MouseActionPress))
	assert.InDelta(t, 1.0, board.Value("mic"), 1e-9)

	id, dragging := m.Dragging()
	require.True(t, dragging)
	assert.Equal(t, "mic", id)

	m.Update(mouse(x, mic.StartY+5, tea.MouseActionMotion))
	assert.InDelta(t, 0.5, board.Value("mic"), 1e-9)

	// the pointer leaves the fader; the drag follows it and clamps
	m.Update(mouse(x+40, mic.EndY+20, tea.MouseActionMotion))
	assert.InDelta(t, 0.0, board.Value("mic"), 1e-9)

	m.Update(mouse(x+40, mic.StartY, tea.MouseActionRelease))
	assert.InDelta(t, 0.0, board.Value("mic"), 1e-9, "release does not move the value")

	_, dragging = m.Dragging()
	assert.False(t, dragging)

	m.Update(mouse(x, mic.StartY, tea.MouseActionMotion))
	assert.InDelta(t, 0.0, board.Value("mic"), 1e-9, "moves after release are ignored")
	assert.InDelta(t, 0.5, board.Value("line"), 0, "other faders are untouched")
}

func TestModel_Blur(t *testing.T) {
	tests := []struct {
		name          string
		releaseOnBlur bool
		wantDragging  bool
	}{
		{name: "drag survives focus loss", releaseOnBlur: false, wantDragging: true},
		{name: "focus loss ends the drag", releaseOnBlur: true, wantDragging: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig
			cfg.ReleaseOnBlur = tt.releaseOnBlur

			zones := newZones(t)
			m := tui.New(cfg, newBoard(t), zones)

			m.View()
			fx := zoneOf(t, zones, "fx")

			m.Update(mouse(fx.StartX, fx.StartY, tea.MouseActionPress))
			m.Update(tea.BlurMsg{})

			_, dragging := m.Dragging()
			assert.Equal(t, tt.wantDragging, dragging)
		})
	}
}

func TestModel_Keys(t *testing.T) {
	board := newBoard(t)
	zones := newZones(t)
	m := tui.New(testConfig, board, zones)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	assert.True(t, board.Mute("mic").Read())
	assert.Contains(t, ansi.Strip(m.View()), "MIC M")

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	assert.True(t, board.Mute("pan").Read(), "shift+tab wraps to the last control")

	t.Run("help", func(t *testing.T) {
		before := strings.Count(ansi.Strip(m.View()), "\n")
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
		assert.Greater(t, strings.Count(ansi.Strip(m.View()), "\n"), before)
	})
}

func TestModel_QuitReleasesDrag(t *testing.T) {
	zones := newZones(t)
	m := tui.New(testConfig, newBoard(t), zones)

	m.View()
	line := zoneOf(t, zones, "line")

	m.Update(mouse(line.StartX, line.StartY, tea.MouseActionPress))
	_, dragging := m.Dragging()
	require.True(t, dragging)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, dragging = m.Dragging()
	assert.False(t, dragging)
}
