package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"chipselect/internal/ui/multiselect"
)

// KeyMap defines the form-level key bindings
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Submit  key.Binding
	Help    key.Binding
	Disable key.Binding
	Reset   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard form bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Disable: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "enable/disable"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset value"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// helpKeys combines the form bindings with the field bindings when the
// field has focus
type helpKeys struct {
	form       KeyMap
	field      multiselect.KeyMap
	fieldFocus bool
}

// ShortHelp implements help.KeyMap
func (h helpKeys) ShortHelp() []key.Binding {
	if h.fieldFocus {
		return append(h.field.ShortHelp(), h.form.Next, h.form.Help, h.form.Quit)
	}
	return []key.Binding{h.form.Submit, h.form.Next, h.form.Help, h.form.Quit}
}

// FullHelp implements help.KeyMap
func (h helpKeys) FullHelp() [][]key.Binding {
	return append(h.field.FullHelp(), []key.Binding{
		h.form.Next, h.form.Prev, h.form.Submit, h.form.Disable, h.form.Reset, h.form.Help, h.form.Quit,
	})
}
