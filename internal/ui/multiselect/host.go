package multiselect

import (
	"strings"
)

// AttributeSetter is an element that accepts accessibility attributes
type AttributeSetter interface {
	SetAttribute(name, value string)
}

// Host is the widget's place in the surrounding layout. Contains decides
// whether a focus target belongs to the widget; DescribedBy returns the
// element that carries aria-describedby, or nil if there is none. A nil
// pointer wrapped in a non-nil AttributeSetter is treated as none.
type Host interface {
	Contains(target string) bool
	DescribedBy() AttributeSetter
}

// Element is the default Host: a root id owning every target id prefixed
// with "<id>-", plus one attribute-bearing control element
type Element struct {
	id      string
	control *attributes
}

type attributes struct {
	values map[string]string
}

func (a *attributes) SetAttribute(name, value string) {
	a.values[name] = value
}

// NewElement creates the default host for the widget with the given id
func NewElement(id string) *Element {
	return &Element{
		id:      id,
		control: &attributes{values: make(map[string]string)},
	}
}

// Contains reports whether target is the root or one of its descendants
func (e *Element) Contains(target string) bool {
	if target == "" {
		return false
	}
	return target == e.id || strings.HasPrefix(target, e.id+"-")
}

// DescribedBy returns the control element
func (e *Element) DescribedBy() AttributeSetter {
	if e.control == nil {
		return nil
	}
	return e.control
}

// Attribute returns an attribute of the control element
func (e *Element) Attribute(name string) string {
	if e.control == nil {
		return ""
	}
	return e.control.values[name]
}
