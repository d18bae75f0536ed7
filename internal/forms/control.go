package forms

import (
	"errors"
	"slices"

	"chipselect/internal/domain"
)

// Control holds a field value, its validation result and interaction flags
type Control struct {
	value      []domain.Value
	validators []Validator
	errs       []error
	touched    bool
	dirty      bool
	disabled   bool

	accessor  ValueAccessor
	listeners []func([]domain.Value)
	onTouched []func()
}

// NewControl creates a control with an initial value
func NewControl(initial []domain.Value, validators ...Validator) *Control {
	c := &Control{
		value:      slices.Clone(initial),
		validators: validators,
	}
	c.validate()
	return c
}

// Bind connects the control to a widget: the widget receives the current
// value and disabled state, and reports user changes and blur back.
// Values the widget cannot represent are dropped from the control.
func Bind(c *Control, accessor ValueAccessor) {
	c.accessor = accessor
	accessor.WriteValue(c.Value())
	c.value = accessor.Value()
	c.validate()
	accessor.RegisterOnChange(c.updateFromView)
	accessor.RegisterOnTouched(c.MarkAsTouched)
	if c.disabled {
		accessor.SetDisabledState(true)
	}
}

// Value returns a copy of the current value
func (c *Control) Value() []domain.Value {
	return slices.Clone(c.value)
}

// SetValue replaces the value programmatically and writes it to the bound
// widget. The stored value is what the widget accepted.
func (c *Control) SetValue(values []domain.Value) {
	c.value = slices.Clone(values)
	if c.accessor != nil {
		c.accessor.WriteValue(c.Value())
		c.value = c.accessor.Value()
	}
	c.validate()
	c.emit()
}

// OnValueChange registers a listener for every value change
func (c *Control) OnValueChange(fn func([]domain.Value)) {
	c.listeners = append(c.listeners, fn)
}

// Errors returns the current validation errors
func (c *Control) Errors() []error {
	return slices.Clone(c.errs)
}

// Err joins the current validation errors, or returns nil
func (c *Control) Err() error {
	return errors.Join(c.errs...)
}

// Invalid reports whether validation failed. Disabled controls are never invalid.
func (c *Control) Invalid() bool {
	return !c.disabled && len(c.errs) > 0
}

// Valid reports whether validation passed. Disabled controls are never valid.
func (c *Control) Valid() bool {
	return !c.disabled && len(c.errs) == 0
}

// Touched reports whether the widget has been blurred at least once
func (c *Control) Touched() bool {
	return c.touched
}

// Dirty reports whether the user changed the value
func (c *Control) Dirty() bool {
	return c.dirty
}

// Disabled reports whether the control is disabled
func (c *Control) Disabled() bool {
	return c.disabled
}

// OnTouched registers a listener for the first time the control is touched
func (c *Control) OnTouched(fn func()) {
	c.onTouched = append(c.onTouched, fn)
}

// MarkAsTouched flags the control as touched
func (c *Control) MarkAsTouched() {
	if c.touched {
		return
	}
	c.touched = true
	for _, fn := range c.onTouched {
		fn()
	}
}

// Disable disables the control and its widget
func (c *Control) Disable() {
	c.setDisabled(true)
}

// Enable enables the control and its widget
func (c *Control) Enable() {
	c.setDisabled(false)
}

func (c *Control) setDisabled(disabled bool) {
	c.disabled = disabled
	if c.accessor != nil {
		c.accessor.SetDisabledState(disabled)
	}
}

// updateFromView is the change callback handed to the widget
func (c *Control) updateFromView(values []domain.Value) {
	c.value = slices.Clone(values)
	c.dirty = true
	c.validate()
	c.emit()
}

func (c *Control) validate() {
	c.errs = nil
	for _, v := range c.validators {
		if err := v(c.value); err != nil {
			c.errs = append(c.errs, err)
		}
	}
}

func (c *Control) emit() {
	for _, fn := range c.listeners {
		fn(c.Value())
	}
}
