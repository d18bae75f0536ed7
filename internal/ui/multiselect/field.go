package multiselect

import (
	"reflect"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/domain"
	"chipselect/internal/ui/services/events"
)

// ID returns the id minted at construction
func (m *Model) ID() string {
	return m.id
}

// ControlType returns the widget kind
func (m *Model) ControlType() string {
	return ControlType
}

// StateChanges returns the stream chrome listens on to re-evaluate its state
func (m *Model) StateChanges() events.Observable {
	return m.stateChanges
}

// Value returns the values of the selected items, or nil when nothing is selected
func (m *Model) Value() []domain.Value {
	return m.selection.Values()
}

// SetValue re-partitions the candidates so exactly the items matching
// values are selected. Values with no matching item are dropped.
func (m *Model) SetValue(values []domain.Value) {
	m.selection.ApplyValues(values)
	m.chipCursor = -1
	m.stateChanges.Next()
}

// Placeholder returns the placeholder text
func (m *Model) Placeholder() string {
	return m.meta.placeholder
}

// SetPlaceholder sets the placeholder text
func (m *Model) SetPlaceholder(placeholder string) {
	m.meta.placeholder = placeholder
	m.stateChanges.Next()
}

// Required returns whether a value is required
func (m *Model) Required() bool {
	return m.meta.required
}

// SetRequired sets whether a value is required
func (m *Model) SetRequired(required bool) {
	m.meta.required = required
	m.stateChanges.Next()
}

// Disabled returns whether the widget is disabled
func (m *Model) Disabled() bool {
	return m.meta.disabled
}

// SetDisabled freezes or unfreezes the filter input. Selections are kept.
func (m *Model) SetDisabled(disabled bool) {
	m.meta.disabled = disabled
	if disabled {
		m.input.Blur()
		m.panelOpen = false
		m.chipCursor = -1
	} else if m.focused && !m.destroyed {
		m.input.Focus()
	}
	m.stateChanges.Next()
}

// Focused returns whether focus is inside the widget
func (m *Model) Focused() bool {
	return m.focused
}

// Touched returns whether focus has left the widget at least once
func (m *Model) Touched() bool {
	return m.touched
}

// Empty returns true when nothing is selected
func (m *Model) Empty() bool {
	return m.selection.Empty()
}

// ShouldLabelFloat returns true when the label must sit above the input
func (m *Model) ShouldLabelFloat() bool {
	return m.focused || !m.Empty()
}

// ErrorState returns true when the form reports the value invalid and the
// user has already left the widget once
func (m *Model) ErrorState() bool {
	if m.status == nil {
		return false
	}
	return m.status.Invalid() && m.touched
}

// SetDescribedByIds writes the space-joined ids to the control element's
// aria-describedby attribute. Without a control element it does nothing.
func (m *Model) SetDescribedByIds(ids []string) {
	if m.host == nil {
		return
	}
	target := m.host.DescribedBy()
	if target == nil {
		return
	}
	if v := reflect.ValueOf(target); v.Kind() == reflect.Pointer && v.IsNil() {
		return
	}
	target.SetAttribute("aria-describedby", strings.Join(ids, " "))
}

// OnContainerClick returns a command that refocuses the input once the
// current message has been handled
func (m *Model) OnContainerClick() tea.Cmd {
	id := m.id
	return func() tea.Msg {
		return refocusMsg{id: id}
	}
}

// OnFocusIn marks the widget focused. Repeated calls while focused do nothing.
func (m *Model) OnFocusIn(FocusEvent) {
	if m.focused {
		return
	}
	m.focused = true
	m.panelOpen = true
	if !m.meta.disabled && !m.destroyed && !m.input.Focused() {
		m.input.Focus()
	}
	m.stateChanges.Next()
}

// OnFocusOut marks the widget touched and unfocused unless focus moved to
// another target inside the widget
func (m *Model) OnFocusOut(ev FocusEvent) {
	if m.host != nil && m.host.Contains(ev.RelatedTarget) {
		return
	}
	m.touched = true
	m.focused = false
	m.panelOpen = false
	m.chipCursor = -1
	m.input.Blur()
	if !m.destroyed {
		m.onTouched()
	}
	m.stateChanges.Next()
}
