package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Label         lipgloss.Style
	LabelFloating lipgloss.Style
	LabelFocused  lipgloss.Style
	LabelError    lipgloss.Style
	Required      lipgloss.Style
	Hint          lipgloss.Style
	Error         lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Padding(0, 2)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:           lipgloss.NewStyle().Faint(true),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		LabelFloating: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		LabelFocused:  lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		LabelError:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Required:      lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Hint:          lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Error:         lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Button:        button,
		ButtonFocused: button.BorderForeground(lipgloss.Color("99")).Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")).MarginTop(1),  // green
		Help:          lipgloss.NewStyle().Faint(true),
		Main:          lipgloss.NewStyle().Padding(1, 2),
	}
}
