package focus

import (
	tea "github.com/charmbracelet/bubbletea"
)

type entry struct {
	owner  string
	target Focusable
}

// Ring is an ordered set of focus targets cycled with Tab/Shift+Tab.
// It is driven from the Bubble Tea update loop and is not safe for
// concurrent use.
type Ring struct {
	entries []entry
	current int // index into entries, -1 when nothing is focused
	origin  Origin
}

// NewRing creates an empty ring
func NewRing() *Ring {
	return &Ring{current: -1}
}

// Register appends target to the ring under owner
func (r *Ring) Register(owner string, target Focusable) {
	if r.indexOf(target.FocusID()) >= 0 {
		return
	}
	r.entries = append(r.entries, entry{owner: owner, target: target})
}

// Current returns the focused target id, or ""
func (r *Ring) Current() string {
	if r.current < 0 {
		return ""
	}
	return r.entries[r.current].target.FocusID()
}

// Origin returns what caused the last focus change
func (r *Ring) Origin() Origin {
	return r.origin
}

// Len returns the number of registered targets
func (r *Ring) Len() int {
	return len(r.entries)
}

// Next moves focus to the following target
func (r *Ring) Next() tea.Cmd {
	if len(r.entries) == 0 {
		return nil
	}
	return r.moveTo((r.current+1)%len(r.entries), OriginKeyboard)
}

// Prev moves focus to the preceding target
func (r *Ring) Prev() tea.Cmd {
	if len(r.entries) == 0 {
		return nil
	}
	index := r.current - 1
	if index < 0 {
		index = len(r.entries) - 1
	}
	return r.moveTo(index, OriginKeyboard)
}

// Focus moves focus to the target with the given id
func (r *Ring) Focus(id string, origin Origin) tea.Cmd {
	index := r.indexOf(id)
	if index < 0 {
		return nil
	}
	return r.moveTo(index, origin)
}

// FocusVia focuses target. Unregistered targets are ignored.
func (r *Ring) FocusVia(target Focusable, origin Origin) tea.Cmd {
	if target == nil {
		return nil
	}
	return r.Focus(target.FocusID(), origin)
}

// StopMonitoring removes every target registered by owner. If one of them
// was focused, nothing is focused afterwards and no messages are sent.
func (r *Ring) StopMonitoring(owner string) {
	focusedID := r.Current()
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.owner != owner {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	r.current = r.indexOf(focusedID)
}

// moveTo blurs the current target, focuses the one at index and returns a
// command delivering the ChangedMsg
func (r *Ring) moveTo(index int, origin Origin) tea.Cmd {
	next := r.entries[index].target
	r.origin = origin

	if index == r.current {
		// Already focused: re-assert without a change message
		return next.Focus()
	}

	changed := ChangedMsg{Focused: next.FocusID(), Origin: origin}
	if r.current >= 0 {
		prev := r.entries[r.current].target
		changed.Blurred = prev.FocusID()
		prev.Blur()
	}
	r.current = index

	return tea.Batch(next.Focus(), func() tea.Msg { return changed })
}

func (r *Ring) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, e := range r.entries {
		if e.target.FocusID() == id {
			return i
		}
	}
	return -1
}
