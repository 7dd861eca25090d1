package vdom

import "fmt"

// CreateElement builds an Element from a kind, a property bag and children.
//
// Props may be nil. Children are kept in call order: one child is stored as
// itself, two or more as a Seq, none as nil (falling back to a ChildrenProp
// under the "children" key, which may hold a ChildrenProp, String or
// Number). Accepted children are *Element, String, Number,
// Seq, string, Go numbers, []Child and []any.
func CreateElement(kind Kind, props Props, children ...any) (*Element, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	el := &Element{Kind: kind}
	if len(props) > 0 {
		el.Props = make(Props, len(props))
		for k, v := range props {
			el.Props[k] = v
		}
	}

	switch len(children) {
	case 0:
		el.Children = propChildren(props[ChildrenKey])
	case 1:
		c, err := toChild(children[0], "")
		if err != nil {
			return nil, err
		}
		el.Children = c
	default:
		seq := make(Seq, 0, len(children))
		for i, arg := range children {
			c, err := toChild(arg, fmt.Sprintf("[%d]", i))
			if err != nil {
				return nil, err
			}
			seq = append(seq, c)
		}
		el.Children = seq
	}

	return el, nil
}

// H is shorthand for CreateElement with a HostTag.
func H(tag string, props Props, children ...any) (*Element, error) {
	return CreateElement(HostTag(tag), props, children...)
}

// MustH is like H but panics on error. Intended for literals in tests and
// static trees.
func MustH(tag string, props Props, children ...any) *Element {
	el, err := H(tag, props, children...)
	if err != nil {
		panic(err)
	}
	return el
}

func checkKind(kind Kind) error {
	switch k := kind.(type) {
	case nil:
		return &InvalidKindError{Reason: "kind is required"}
	case HostTag:
		if k == "" {
			return &InvalidKindError{Kind: k, Reason: "empty tag"}
		}
		if !validTagName(string(k)) {
			return &InvalidKindError{Kind: k, Reason: "not a valid element name"}
		}
	case ComponentRef:
		if k.Handle == nil {
			return &InvalidKindError{Kind: k, Reason: "component reference without handle"}
		}
	}
	return nil
}

// toChild converts one factory argument into a Child.
func toChild(arg any, path string) (Child, error) {
	switch v := arg.(type) {
	case nil:
		return nil, &InvalidChildError{Path: path, Reason: "nil child"}
	case *Element:
		if v == nil {
			return nil, &InvalidChildError{Path: path, Value: arg, Reason: "nil element"}
		}
		return v, nil
	case Child:
		return v, nil
	case []Child:
		return Seq(v), nil
	case []any:
		seq := make(Seq, 0, len(v))
		for i, item := range v {
			c, err := toChild(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			seq = append(seq, c)
		}
		return seq, nil
	case string:
		return String(v), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return ValueOf(v).(Number), nil
	default:
		return nil, &InvalidChildError{Path: path, Value: arg, Reason: "not text, number or element"}
	}
}
