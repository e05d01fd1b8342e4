// Package meter provides a TUI component showing channel output levels.
package meter

import (
	"strings"

	"github.com/alkime/faders/internal/tui/style"
	"github.com/alkime/faders/pkg/uictl"
)

// Block characters for level visualization (8 levels, bottom to top).
// Index 0 = empty (space), 1-8 = increasing fill levels.
const blockChars = " ▁▂▃▄▅▆▇█"

// Channel is one metered control.
type Channel struct {
	Level uictl.Dial[float64]
	Range uictl.Range[float64]
	// Mute silences the channel when on. May be nil.
	Mute uictl.Switch
}

// Model displays a bar per channel, filled to the channel's level.
// Muted channels read as silent.
type Model struct {
	channels []Channel
	height   int // Display height in rows
	barWidth int
}

// New creates a new meter. Each bar is barWidth cells wide with a one cell
// gap between bars.
func New(channels []Channel, height, barWidth int) Model {
	return Model{
		channels: channels,
		height:   max(1, height),
		barWidth: max(1, barWidth),
	}
}

// Width returns the rendered width in cells.
func (m Model) Width() int {
	if len(m.channels) == 0 {
		return m.barWidth
	}

	return len(m.channels)*(m.barWidth+1) - 1
}

// View renders the meter.
func (m Model) View() string {
	if len(m.channels) == 0 {
		return m.renderEmpty()
	}

	levels := m.calculateLevels()
	runes := []rune(blockChars)

	var sb strings.Builder

	// Render row by row, from top to bottom
	for row := range m.height {
		if row > 0 {
			sb.WriteString("\n")
		}

		for i, level := range levels {
			if i > 0 {
				sb.WriteString(" ")
			}

			bar := strings.Repeat(string(runes[m.blockIndexForRow(level, row)]), m.barWidth)
			if m.muted(i) {
				sb.WriteString(style.Muted.Render(bar))
			} else {
				sb.WriteString(style.Value.Render(bar))
			}
		}
	}

	return sb.String()
}

func (m Model) muted(i int) bool {
	return m.channels[i].Mute != nil && m.channels[i].Mute.Read()
}

// calculateLevels computes the fill level of each bar, from 0 to height*8.
func (m Model) calculateLevels() []int {
	levels := make([]int, len(m.channels))
	maxLevel := m.height * 8

	for i, ch := range m.channels {
		if ch.Level == nil || m.muted(i) {
			continue
		}

		f := ch.Range.Fraction(ch.Level.Read())
		levels[i] = min(int(f*float64(maxLevel)+0.5), maxLevel)
	}

	return levels
}

// blockIndexForRow returns the block character index (0-8) for a given bar level at a row.
// Row 0 is the top, row (height-1) is the bottom.
func (m Model) blockIndexForRow(level, row int) int {
	// Row (height-1) (bottom) covers levels [0, 8]
	rowFromBottom := m.height - 1 - row
	fillAmount := level - rowFromBottom*8

	if fillAmount <= 0 {
		return 0 // Empty (space)
	}

	if fillAmount >= 8 {
		return 8 // Full block
	}

	return fillAmount // Partial block (1-7)
}

// renderEmpty renders a baseline when there is nothing to meter.
func (m Model) renderEmpty() string {
	rows := make([]string, m.height)
	for row := range m.height {
		if row == m.height-1 {
			rows[row] = strings.Repeat("▁", m.barWidth)
		} else {
			rows[row] = strings.Repeat(" ", m.barWidth)
		}
	}

	return style.Muted.Render(strings.Join(rows, "\n"))
}
