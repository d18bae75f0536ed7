package views

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Button is a focusable action rendered as a bordered label
type Button struct {
	id      string
	label   string
	focused bool
}

// NewButton creates a button
func NewButton(id, label string) *Button {
	return &Button{id: id, label: label}
}

// FocusID implements focus.Focusable
func (b *Button) FocusID() string {
	return b.id
}

// Focus implements focus.Focusable
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur implements focus.Focusable
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button has focus
func (b *Button) Focused() bool {
	return b.focused
}

// Render draws the button
func (b *Button) Render(styles *Styles) string {
	if b.focused {
		return styles.ButtonFocused.Render(b.label)
	}
	return styles.Button.Render(b.label)
}
