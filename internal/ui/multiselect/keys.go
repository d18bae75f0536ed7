package multiselect

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the widget's key bindings
type KeyMap struct {
	Up         key.Binding // move the suggestion cursor up
	Down       key.Binding // move the suggestion cursor down
	Select     key.Binding // toggle the highlighted suggestion
	Separator  key.Binding // end the current token without selecting
	Dismiss    key.Binding // close the suggestion panel
	ChipLeft   key.Binding // move the chip cursor left
	ChipRight  key.Binding // move the chip cursor right
	RemoveChip key.Binding // remove the chip under the cursor
	RemoveLast key.Binding // remove the last chip when the query is empty
	ClearAll   key.Binding // deselect everything
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "toggle"),
		),
		Separator: key.NewBinding(
			key.WithKeys(","),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close list"),
		),
		ChipLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "pick chip"),
		),
		ChipRight: key.NewBinding(
			key.WithKeys("right"),
		),
		RemoveChip: key.NewBinding(
			key.WithKeys("delete"),
			key.WithHelp("del", "remove chip"),
		),
		RemoveLast: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "remove last"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear all"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Up, k.Down, k.ClearAll}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Dismiss},
		{k.ChipLeft, k.RemoveChip, k.RemoveLast, k.ClearAll},
	}
}
