package domain

import (
	"fmt"
	"strconv"
)

// valueKind tells which field of a Value is meaningful
type valueKind uint8

const (
	kindNone valueKind = iota
	kindInt
	kindString
)

// Value is the scalar identifier of an Item (a number or a string).
// Values are comparable with ==; an int and a string never compare equal.
type Value struct {
	kind valueKind
	n    int64
	s    string
}

// IntValue returns a numeric Value
func IntValue(n int64) Value {
	return Value{kind: kindInt, n: n}
}

// StringValue returns a string Value
func StringValue(s string) Value {
	return Value{kind: kindString, s: s}
}

// ValueOf converts a decoded scalar (from TOML, JSON or a literal) into a Value
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case int:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint32:
		return IntValue(int64(x)), nil
	case float64:
		if x != float64(int64(x)) {
			return Value{}, fmt.Errorf("value %v is not an integer", x)
		}
		return IntValue(int64(x)), nil
	case string:
		return StringValue(x), nil
	default:
		return Value{}, fmt.Errorf("unsupported value type %T", v)
	}
}

// ValuesOf converts a slice of decoded scalars, failing on the first bad entry
func ValuesOf(raw []any) ([]Value, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]Value, 0, len(raw))
	for i, r := range raw {
		v, err := ValueOf(r)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// IsZero reports whether v was never assigned
func (v Value) IsZero() bool {
	return v.kind == kindNone
}

// IsInt reports whether v holds a number
func (v Value) IsInt() bool {
	return v.kind == kindInt
}

// Raw returns the underlying int64 or string, or nil for the zero Value
func (v Value) Raw() any {
	switch v.kind {
	case kindInt:
		return v.n
	case kindString:
		return v.s
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.n, 10)
	case kindString:
		return strconv.Quote(v.s)
	default:
		return "<none>"
	}
}

// RawValues maps values to their raw scalars, keeping nil for a nil slice
func RawValues(values []Value) []any {
	if values == nil {
		return nil
	}
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v.Raw()
	}
	return out
}

// Item is a selectable candidate. Items are passed around as *Item and
// compared by pointer: two items with equal fields are still distinct.
type Item struct {
	Value     Value
	ViewValue string
}

// NewItem creates a candidate item
func NewItem(value Value, viewValue string) *Item {
	return &Item{Value: value, ViewValue: viewValue}
}

func (i *Item) String() string {
	return fmt.Sprintf("%s(%s)", i.ViewValue, i.Value)
}
