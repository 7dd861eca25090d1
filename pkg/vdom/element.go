package vdom

import (
	"strconv"
	"strings"
)

// Kind identifies what an Element describes. It is either a HostTag or a
// ComponentRef; no other implementations exist.
type Kind interface {
	isKind()
	String() string
}

// HostTag names a host element type such as "div" or "a".
type HostTag string

func (HostTag) isKind() {}

// String returns the tag name.
func (t HostTag) String() string { return string(t) }

// ComponentRef is an opaque reference to a component. Mount never invokes
// it and fails with UnsupportedKindError when it meets one.
type ComponentRef struct {
	Name   string
	Handle any
}

func (ComponentRef) isKind() {}

// String returns a printable form of the reference.
func (c ComponentRef) String() string {
	if c.Name == "" {
		return "component"
	}
	return "component " + c.Name
}

// Element is an immutable description of one UI node.
type Element struct {
	Kind     Kind  // What to create
	Props    Props // Attributes and event handlers
	Children Child // nil, a single child, or a Seq of two or more
	Key      string
}

// Tag returns the host tag name, or "" for component elements.
func (e *Element) Tag() string {
	if e == nil {
		return ""
	}
	if t, ok := e.Kind.(HostTag); ok {
		return string(t)
	}
	return ""
}

// Child is one entry of an element's children: *Element, String, Number
// or Seq.
type Child interface {
	isChild()
}

func (*Element) isChild() {}

// Seq is an ordered sequence of children. A Seq nested inside another Seq
// is rejected by Mount.
type Seq []Child

func (Seq) isChild() {}

// Children returns the children of e as a slice, normalizing the
// single-child form. Text leaves are returned as String or Number values.
func Children(e *Element) []Child {
	if e == nil || e.Children == nil {
		return nil
	}
	if s, ok := e.Children.(Seq); ok {
		out := make([]Child, len(s))
		copy(out, s)
		return out
	}
	return []Child{e.Children}
}

// IsEventKey reports whether key names an event binding ("onClick",
// "onclick", "on-hover" is not).
func IsEventKey(key string) bool {
	if len(key) < 3 || !strings.EqualFold(key[:2], "on") {
		return false
	}
	c := key[2]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// EventName returns the host event name for an event key ("onClick" -> "click").
func EventName(key string) string {
	return strings.ToLower(key[2:])
}

// validTagName reports whether tag is usable as a host element name.
func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	c := tag[0]
	if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
		return false
	}
	for i := 1; i < len(tag); i++ {
		c := tag[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == ':', c == '.':
		default:
			return false
		}
	}
	return true
}

// formatNumber renders n the way a host expects numeric text: shortest
// decimal form without exponent.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
