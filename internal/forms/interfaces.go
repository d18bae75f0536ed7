// Package forms is a small form layer: controls holding a value and its
// validity, bound to widgets through a value-accessor protocol.
package forms

import (
	tea "github.com/charmbracelet/bubbletea"

	"chipselect/internal/domain"
	"chipselect/internal/ui/services/events"
)

// ValueAccessor is implemented by widgets that a Control can drive.
// WriteValue must not call the registered change callback; Value reports
// what the widget holds after the write.
type ValueAccessor interface {
	WriteValue(values []domain.Value)
	Value() []domain.Value
	RegisterOnChange(fn func(values []domain.Value))
	RegisterOnTouched(fn func())
	SetDisabledState(disabled bool)
}

// FieldControl is implemented by widgets that field chrome (label, hint,
// error line) is rendered around
type FieldControl interface {
	Value() []domain.Value
	StateChanges() events.Observable
	ID() string
	ControlType() string
	Placeholder() string
	Required() bool
	Disabled() bool
	Focused() bool
	Empty() bool
	ShouldLabelFloat() bool
	ErrorState() bool
	SetDescribedByIds(ids []string)
	OnContainerClick() tea.Cmd
}
