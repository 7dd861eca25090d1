package dom

import (
	"sort"
	"strings"

	"github.com/vango-dev/velem/pkg/vdom"
)

// NodeType is the node type discriminator.
type NodeType uint8

const (
	ElementNode NodeType = iota // <div>, <a>, etc.
	TextNode                    // Character data
	RootNode                    // Mount container without a tag
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	case RootNode:
		return "Root"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute. An empty Value is rendered as a bare attribute.
type Attr struct {
	Name  string
	Value string
}

// Node is a node of the in-memory tree.
type Node struct {
	Type      NodeType
	Tag       string // ElementNode only
	Data      string // TextNode only
	Attrs     []Attr
	Parent    *Node
	Children  []*Node
	listeners map[string][]vdom.Handler
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttr reports whether the named attribute is present.
func (n *Node) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.Children)
}

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.Type == TextNode {
		return n.Data
	}
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Type == TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}

// Walk visits n and its descendants in document order. Returning false
// from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// Events returns the sorted event names with at least one listener.
func (n *Node) Events() []string {
	events := make([]string, 0, len(n.listeners))
	for e := range n.listeners {
		events = append(events, e)
	}
	sort.Strings(events)
	return events
}

// ListenerCount returns the number of listeners registered for event.
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners[event])
}

// Dispatch calls every listener registered on n for event, in registration
// order, and returns how many ran. Events do not bubble.
func (n *Node) Dispatch(event string, detail any) int {
	handlers := n.listeners[event]
	for _, h := range handlers {
		h(vdom.Event{Type: event, Target: n, Detail: detail})
	}
	return len(handlers)
}

// Clear detaches all children of n.
func (n *Node) Clear() {
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = nil
}

// Find returns the first descendant element (or n itself) with tag.
func (n *Node) Find(tag string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if c.Type == ElementNode && c.Tag == tag {
			found = c
			return false
		}
		return true
	})
	return found
}

// ByID returns the first element whose id attribute equals id.
func (n *Node) ByID(id string) *Node {
	var found *Node
	n.Walk(func(c *Node) bool {
		if found != nil {
			return false
		}
		if v, ok := c.Attr("id"); ok && c.Type == ElementNode && v == id {
			found = c
			return false
		}
		return true
	})
	return found
}

func (n *Node) setAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attr{Name: name, Value: value})
}

func (n *Node) addListener(event string, h vdom.Handler) {
	if n.listeners == nil {
		n.listeners = make(map[string][]vdom.Handler)
	}
	n.listeners[event] = append(n.listeners[event], h)
}

func (n *Node) appendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}
