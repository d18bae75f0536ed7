package views

import (
	"strings"

	"chipselect/internal/forms"
)

// FieldChrome renders the label, hint and error line around a form field.
// It caches what it shows and refreshes the cache each time the field
// reports a state change.
type FieldChrome struct {
	control forms.FieldControl
	label   string
	hint    string
	errorFn func() string
	styles  *Styles

	state       chromeState
	refreshes   int
	detached    bool
	unsubscribe func()
}

type chromeState struct {
	floating   bool
	focused    bool
	errorState bool
	disabled   bool
	required   bool
}

// NewFieldChrome attaches chrome to control and takes an initial snapshot
func NewFieldChrome(control forms.FieldControl, label, hint string, styles *Styles) *FieldChrome {
	if styles == nil {
		styles = NewStyles()
	}
	c := &FieldChrome{
		control: control,
		label:   label,
		hint:    hint,
		styles:  styles,
	}
	c.refresh()
	c.unsubscribe = control.StateChanges().Subscribe(c.refresh, c.detach)
	return c
}

// SetErrorText sets the function that supplies the error line
func (c *FieldChrome) SetErrorText(fn func() string) {
	c.errorFn = fn
	c.refresh()
}

// Refreshes returns how many snapshots have been taken
func (c *FieldChrome) Refreshes() int {
	return c.refreshes
}

// Detached reports whether the field's change stream has completed
func (c *FieldChrome) Detached() bool {
	return c.detached
}

// Close stops listening to the field
func (c *FieldChrome) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// HintID returns the id of the hint line
func (c *FieldChrome) HintID() string {
	return c.control.ID() + "-hint"
}

// ErrorID returns the id of the error line
func (c *FieldChrome) ErrorID() string {
	return c.control.ID() + "-error"
}

func (c *FieldChrome) refresh() {
	c.refreshes++
	c.state = chromeState{
		floating:   c.control.ShouldLabelFloat(),
		focused:    c.control.Focused(),
		errorState: c.control.ErrorState(),
		disabled:   c.control.Disabled(),
		required:   c.control.Required(),
	}

	var ids []string
	if c.hint != "" {
		ids = append(ids, c.HintID())
	}
	if c.state.errorState {
		ids = append(ids, c.ErrorID())
	}
	c.control.SetDescribedByIds(ids)
}

func (c *FieldChrome) detach() {
	c.detached = true
	c.unsubscribe = nil
}

// Render wraps the rendered field body with the label above and the
// hint or error below
func (c *FieldChrome) Render(body string) string {
	var b strings.Builder

	b.WriteString(c.renderLabel())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")

	switch {
	case c.state.errorState:
		text := "Invalid value"
		if c.errorFn != nil {
			if s := c.errorFn(); s != "" {
				text = s
			}
		}
		b.WriteString(c.styles.Error.Render(text))
	case c.hint != "":
		b.WriteString(c.styles.Hint.Render(c.hint))
	}

	return b.String()
}

func (c *FieldChrome) renderLabel() string {
	if !c.state.floating {
		// The placeholder inside the field stands in for the label
		return c.styles.Label.Render(" ")
	}

	style := c.styles.LabelFloating
	switch {
	case c.state.disabled:
		style = c.styles.Dim
	case c.state.errorState:
		style = c.styles.LabelError
	case c.state.focused:
		style = c.styles.LabelFocused
	}

	label := style.Render(c.label)
	if c.state.required {
		label += c.styles.Required.Render(" *")
	}
	return label
}
