package vdom

import "fmt"

// Props maps property names to values. The key "children" is reserved.
type Props map[string]Value

// ChildrenKey is the reserved property key carrying fallback children.
const ChildrenKey = "children"

// Value is a property value: String, Number, Bool, Handler, ChildrenProp
// or Absent. A nil Value behaves like Absent.
type Value interface {
	isValue()
}

// String is a text property value and a text child.
type String string

// Number is a numeric property value and a numeric child.
type Number float64

// Bool is a boolean property value. False means the attribute is absent.
type Bool bool

// Handler is an event listener.
type Handler func(Event)

// ChildrenProp carries children through the reserved "children" property.
type ChildrenProp struct {
	Child Child
}

type absent struct{}

// Absent marks a property as explicitly unset.
var Absent Value = absent{}

func (String) isValue()       {}
func (Number) isValue()       {}
func (Bool) isValue()         {}
func (Handler) isValue()      {}
func (ChildrenProp) isValue() {}
func (absent) isValue()       {}

func (String) isChild() {}
func (Number) isChild() {}

// String returns n in shortest decimal form. Large magnitudes are written
// out in full (1e21 is "1000000000000000000000"), never in exponent form.
func (n Number) String() string { return formatNumber(float64(n)) }

// Event is delivered to a Handler when the host fires a listener.
type Event struct {
	Type   string // "click", "input", ...
	Target any    // Host node the listener was registered on
	Detail any
}

// ValueOf converts a plain Go value into a Value. Numbers, strings, bools
// and func() / func(Event) map onto their variants; nil maps to Absent;
// anything else is coerced to its string form.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Absent
	case Value:
		return x
	case string:
		return String(x)
	case bool:
		return Bool(x)
	case int:
		return Number(x)
	case int8:
		return Number(x)
	case int16:
		return Number(x)
	case int32:
		return Number(x)
	case int64:
		return Number(x)
	case uint:
		return Number(x)
	case uint8:
		return Number(x)
	case uint16:
		return Number(x)
	case uint32:
		return Number(x)
	case uint64:
		return Number(x)
	case float32:
		return Number(x)
	case float64:
		return Number(x)
	case func(Event):
		return Handler(x)
	case func():
		return Handler(func(Event) { x() })
	case fmt.Stringer:
		return String(x.String())
	default:
		return String(fmt.Sprint(x))
	}
}

// PropsOf converts an untyped property bag into Props. A "children" entry
// that is a valid child (text, number, element or list) becomes a
// ChildrenProp.
func PropsOf(m map[string]any) Props {
	if m == nil {
		return nil
	}
	p := make(Props, len(m))
	for k, v := range m {
		if k == ChildrenKey {
			if c, err := toChild(v, ""); err == nil {
				p[k] = ChildrenProp{Child: c}
				continue
			}
		}
		p[k] = ValueOf(v)
	}
	return p
}

// propChildren returns the fallback child carried by a "children" prop.
func propChildren(v Value) Child {
	switch c := v.(type) {
	case ChildrenProp:
		return c.Child
	case String:
		return c
	case Number:
		return c
	default:
		return nil
	}
}

// attrString returns the attribute text for v and whether the attribute is
// present at all. Handlers and children carriers are never attributes.
func attrString(v Value) (string, bool) {
	switch x := v.(type) {
	case nil, absent:
		return "", false
	case Bool:
		return "", bool(x)
	case String:
		return string(x), true
	case Number:
		return formatNumber(float64(x)), true
	default:
		return "", false
	}
}

// textOf returns the text of a leaf child.
func textOf(c Child) (string, bool) {
	switch x := c.(type) {
	case String:
		return string(x), true
	case Number:
		return formatNumber(float64(x)), true
	default:
		return "", false
	}
}
