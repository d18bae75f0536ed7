package multiselect

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the style definitions for the widget
type Styles struct {
	Box          lipgloss.Style
	BoxFocused   lipgloss.Style
	BoxError     lipgloss.Style
	BoxDisabled  lipgloss.Style
	Chip         lipgloss.Style
	ChipCursor   lipgloss.Style
	ChipDisabled lipgloss.Style
	ChipRemove   lipgloss.Style
	Panel        lipgloss.Style
	Option       lipgloss.Style
	OptionCursor lipgloss.Style
	Match        lipgloss.Style
	Empty        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 1)

	return Styles{
		Box:          box,
		BoxFocused:   box.BorderForeground(lipgloss.Color("99")),
		BoxError:     box.BorderForeground(lipgloss.Color("203")), // red
		BoxDisabled:  box.BorderForeground(lipgloss.Color("238")).Faint(true),
		Chip:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1),
		ChipCursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")).Padding(0, 1), // yellow
		ChipDisabled: lipgloss.NewStyle().Faint(true).Padding(0, 1),
		ChipRemove:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		Option:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		OptionCursor: lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Match:        lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Empty:        lipgloss.NewStyle().Faint(true).Italic(true),
	}
}
