package slider_test

import (
	"strings"
	"testing"

	"github.com/alkime/faders/internal/control"
	"github.com/alkime/faders/internal/geometry"
	"github.com/alkime/faders/internal/surface"
	"github.com/alkime/faders/internal/tui/components/slider"
	"github.com/alkime/faders/pkg/uictl"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:gochecknoinits // recommend for CI by bubbletea folks
func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var unit = uictl.Range[float64]{Min: 0, Max: 1, Step: 0.1}

func newSlider(t *testing.T, orient geometry.Orientation, w, h int, value float64, onChange func(float64)) slider.Model {
	t.Helper()

	m := slider.New(slider.Options{
		ID:          "gain",
		Orientation: orient,
		Width:       w,
		Height:      h,
		Control: control.Config{
			Range:         unit,
			Value:         value,
			OnValueChange: onChange,
		},
	}, nil, surface.New("window", nil))
	t.Cleanup(m.Unbind)

	return m
}

func indicatorRow(view string) int {
	for i, line := range strings.Split(ansi.Strip(view), "\n") {
		if strings.Contains(line, "━━") {
			return i
		}
	}

	return -1
}

func TestSlider_VerticalIndicator(t *testing.T) {
	tests := []struct {
		value float64
		row   int
	}{
		{value: 1, row: 0},
		{value: 0, row: 10},
		{value: 0.5, row: 5},
		{value: 0.8, row: 2},
	}
	for _, tt := range tests {
		m := newSlider(t, geometry.Vertical, 5, 11, tt.value, nil)

		view := m.View()
		assert.Equal(t, tt.row, indicatorRow(view), "value %v", tt.value)
		assert.Len(t, strings.Split(view, "\n"), 11)
	}
}

func TestSlider_VerticalTicks(t *testing.T) {
	m := newSlider(t, geometry.Vertical, 5, 11, 0, nil)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Len(t, lines, 11)

	// every row carries a tick at this height; the track sits in the middle column
	assert.Equal(t, "──┃──", lines[3])
	for _, line := range lines[:10] {
		assert.Equal(t, 5, lipgloss.Width(line))
	}
}

func TestSlider_Horizontal(t *testing.T) {
	m := newSlider(t, geometry.Horizontal, 21, 3, 0.5, nil)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Len(t, lines, 3)

	for _, line := range lines {
		assert.Equal(t, '█', []rune(line)[10], "indicator spans every row at the middle column")
	}
	assert.Equal(t, '╷', []rune(lines[0])[0])
	assert.Equal(t, '━', []rune(lines[1])[0])
}

func TestSlider_SyncRebinds(t *testing.T) {
	var proposed []float64

	m := newSlider(t, geometry.Vertical, 3, 11, 0.5, func(v float64) {
		proposed = append(proposed, v)
	})

	wheelUp := &surface.Event{Kind: surface.Wheel, DeltaY: -1, Cancelable: true}

	m.Surface().Dispatch(wheelUp)
	require.Len(t, proposed, 1)
	assert.InDelta(t, 0.6, proposed[0], 1e-9)

	// the owner has not re-supplied yet: the same proposal repeats
	m.Surface().Dispatch(wheelUp)
	assert.InDelta(t, 0.6, proposed[1], 1e-9)

	m.Sync(0.6)
	assert.InDelta(t, 0.6, m.Value(), 0)
	assert.Equal(t, 1, m.Surface().ListenerCount(surface.Wheel))
	assert.Equal(t, 4, indicatorRow(m.View()))

	m.Surface().Dispatch(wheelUp)
	assert.InDelta(t, 0.7, proposed[2], 1e-9)
}

func TestSlider_InteractingStyle(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	m := newSlider(t, geometry.Vertical, 3, 5, 0.5, nil)
	idle := m.View()

	m.Surface().SetInteracting(true)
	active := m.View()

	assert.NotEqual(t, idle, active)
	assert.Equal(t, ansi.Strip(idle), ansi.Strip(active))
}

func TestSlider_ZeroSize(t *testing.T) {
	m := newSlider(t, geometry.Vertical, 0, 0, 0.5, nil)
	assert.Empty(t, m.View())
}
