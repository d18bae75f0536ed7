package multiselect

import (
	"chipselect/internal/domain"
)

// WriteValue applies a value pushed by the form. It notifies chrome but
// never calls the registered change callback.
func (m *Model) WriteValue(values []domain.Value) {
	m.SetValue(values)
}

// RegisterOnChange sets the callback that receives user-made value changes
func (m *Model) RegisterOnChange(fn func(values []domain.Value)) {
	if fn == nil {
		fn = func([]domain.Value) {}
	}
	m.onChange = fn
}

// RegisterOnTouched sets the callback invoked when focus leaves the widget
func (m *Model) RegisterOnTouched(fn func()) {
	if fn == nil {
		fn = func() {}
	}
	m.onTouched = fn
}

// SetDisabledState is called by the form when the control is enabled or disabled
func (m *Model) SetDisabledState(disabled bool) {
	m.SetDisabled(disabled)
}
