// Package focus tracks which component owns keyboard focus and moves it
// on request.
package focus

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Origin describes what caused a focus change
type Origin string

const (
	OriginKeyboard Origin = "keyboard"
	OriginMouse    Origin = "mouse"
	OriginProgram  Origin = "program"
)

// Focusable is anything that can take keyboard focus
type Focusable interface {
	FocusID() string
	Focus() tea.Cmd
	Blur()
}

// Monitor moves focus programmatically and stops tracking components that
// are torn down
type Monitor interface {
	FocusVia(target Focusable, origin Origin) tea.Cmd
	StopMonitoring(owner string)
}

// ChangedMsg is delivered after focus moved from Blurred to Focused.
// Either side is "" when nothing was focused.
type ChangedMsg struct {
	Blurred string
	Focused string
	Origin  Origin
}
