// Package style defines lipgloss styles for the TUI.
package style

import "github.com/charmbracelet/lipgloss"

// UI styles using lipgloss.
// These are package-level for convenience; lipgloss styles are value types
// and safe for concurrent use.
//
// Variable names intentionally omit "Style" suffix since they're accessed
// via the style package (e.g., style.Title reads better than style.TitleStyle).
var (
	// Title is used for the board title.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Subtitle is used for secondary text.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Track is used for the fixed track a control's indicator moves along.
	Track = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	// Tick is used for decorative tick marks.
	Tick = lipgloss.NewStyle().
		Foreground(lipgloss.Color("238"))

	// Indicator is used for the movable indicator at rest.
	Indicator = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	// Active is used for the indicator while a drag is in progress.
	Active = lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	// Label is used for control labels (e.g., "VOLUME").
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	// Value is used for the formatted control value.
	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63"))

	// Muted is used for de-emphasized text and muted controls.
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	// Warning is used for the mute marker.
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("214"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Panel frames each control; Selected frames the selected one.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 1)

	Selected = Panel.
			BorderForeground(lipgloss.Color("62"))

	// Log is used for the change log viewport border.
	Log = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)
)
